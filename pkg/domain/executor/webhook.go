package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// ErrNoMatchingWorkflow reports a webhook path no workflow listens on.
var ErrNoMatchingWorkflow = errors.New("no workflow matches webhook path")

// WebhookService routes an ingress request to every workflow with a webhook
// node configured for the request path and runs each of them. Workflow status
// is not consulted; a draft workflow's webhook fires like an active one's.
type WebhookService struct {
	workflows domain.WorkflowStore
	executor  *WorkflowExecutor
}

type WebhookServiceDependencies struct {
	Workflows domain.WorkflowStore
	Executor  *WorkflowExecutor
}

func NewWebhookService(deps WebhookServiceDependencies) *WebhookService {
	return &WebhookService{
		workflows: deps.Workflows,
		executor:  deps.Executor,
	}
}

func (s *WebhookService) HandleWebhook(ctx context.Context, path string, payload map[string]any) ([]domain.Execution, error) {
	workflows, err := s.workflows.ListWorkflows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	executions := []domain.Execution{}

	var (
		matched int
		lastErr error
	)

	for _, workflow := range workflows {
		if !workflow.MatchesWebhookPath(path) {
			continue
		}

		matched++

		execution, err := s.executor.Execute(ctx, workflow, payload)
		if err != nil {
			log.Error().
				Err(err).
				Str("workflow_id", workflow.ID).
				Str("path", path).
				Msg("Webhook triggered execution failed")

			lastErr = err

			continue
		}

		executions = append(executions, execution)
	}

	if matched == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingWorkflow, path)
	}

	if len(executions) == 0 {
		return nil, fmt.Errorf("every workflow matching webhook path %s failed to run: %w", path, lastErr)
	}

	return executions, nil
}
