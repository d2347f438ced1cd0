package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/internal/storage/memory"
	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/nodes"
)

type brokenExecutionStore struct{}

func (s *brokenExecutionStore) CreateExecution(ctx context.Context, execution domain.Execution) error {
	return errors.New("store unavailable")
}

func (s *brokenExecutionStore) UpdateExecution(ctx context.Context, execution domain.Execution) error {
	return errors.New("store unavailable")
}

func (s *brokenExecutionStore) GetExecution(ctx context.Context, id string) (domain.Execution, error) {
	return domain.Execution{}, domain.ErrExecutionNotFound
}

func (s *brokenExecutionStore) ListExecutionsByWorkflow(ctx context.Context, workflowID string) ([]domain.Execution, error) {
	return nil, errors.New("store unavailable")
}

func (s *brokenExecutionStore) DeleteExecutionsByWorkflow(ctx context.Context, workflowID string) error {
	return errors.New("store unavailable")
}

func TestWebhookService_HandleWebhook(t *testing.T) {
	registry, err := nodes.NewRegistry()
	require.NoError(t, err)

	store := memory.NewStore()

	workflowExecutor := NewWorkflowExecutor(WorkflowExecutorDependencies{
		Selector:   registry.Selector(),
		Executions: store,
	})

	webhookService := NewWebhookService(WebhookServiceDependencies{
		Workflows: store,
		Executor:  workflowExecutor,
	})

	base := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	webhookWorkflow := func(id string, status domain.WorkflowStatus, path string, createdAt time.Time) domain.Workflow {
		return domain.Workflow{
			ID:        id,
			Status:    status,
			CreatedAt: createdAt,
			Nodes: []domain.Node{
				{ID: "trigger", Type: domain.NodeTypeWebhook, Config: domain.NodeConfig{"path": path}},
				{ID: "notify", Type: domain.NodeTypeSlack},
			},
		}
	}

	ctx := context.Background()

	require.NoError(t, store.CreateWorkflow(ctx, webhookWorkflow("wf-active", domain.WorkflowStatusActive, "orders", base)))
	require.NoError(t, store.CreateWorkflow(ctx, webhookWorkflow("wf-draft", domain.WorkflowStatusDraft, "orders", base.Add(time.Minute))))
	require.NoError(t, store.CreateWorkflow(ctx, webhookWorkflow("wf-other", domain.WorkflowStatusActive, "invoices", base.Add(2*time.Minute))))

	t.Run("runs every matching workflow regardless of status", func(t *testing.T) {
		payload := map[string]any{"method": "POST"}

		executions, err := webhookService.HandleWebhook(ctx, "orders", payload)
		require.NoError(t, err)

		require.Len(t, executions, 2)
		assert.Equal(t, "wf-active", executions[0].WorkflowID)
		assert.Equal(t, "wf-draft", executions[1].WorkflowID)

		for _, execution := range executions {
			assert.Equal(t, domain.ExecutionStatusCompleted, execution.Status)
			require.Len(t, execution.NodeResults, 2)
			assert.Equal(t, payload, execution.NodeResults[0].Data)
		}
	})

	t.Run("draft workflow fires on its own path", func(t *testing.T) {
		require.NoError(t, store.CreateWorkflow(ctx,
			webhookWorkflow("wf-draft-only", domain.WorkflowStatusDraft, "signups", base.Add(3*time.Minute))))

		executions, err := webhookService.HandleWebhook(ctx, "signups", map[string]any{"method": "POST"})
		require.NoError(t, err)

		require.Len(t, executions, 1)
		assert.Equal(t, "wf-draft-only", executions[0].WorkflowID)
	})

	t.Run("no matching workflow is a missing route", func(t *testing.T) {
		_, err := webhookService.HandleWebhook(ctx, "unknown-path", map[string]any{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoMatchingWorkflow)
	})

	t.Run("matches that fail to run are not a missing route", func(t *testing.T) {
		failingService := NewWebhookService(WebhookServiceDependencies{
			Workflows: store,
			Executor: NewWorkflowExecutor(WorkflowExecutorDependencies{
				Selector:   registry.Selector(),
				Executions: &brokenExecutionStore{},
			}),
		})

		_, err := failingService.HandleWebhook(ctx, "orders", map[string]any{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMatchingWorkflow)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}
