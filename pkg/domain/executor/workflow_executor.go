// Package executor runs workflows and tools against the registered handler
// selectors and persists the resulting execution records.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type WorkflowExecutor struct {
	selector   domain.NodeSelector
	executions domain.ExecutionStore
}

type WorkflowExecutorDependencies struct {
	Selector   domain.NodeSelector
	Executions domain.ExecutionStore
}

func NewWorkflowExecutor(deps WorkflowExecutorDependencies) *WorkflowExecutor {
	return &WorkflowExecutor{
		selector:   deps.Selector,
		executions: deps.Executions,
	}
}

// Execute runs every node of the workflow in stored order and returns the
// finished execution record. Node failures are recorded per node and never
// abort the run; the returned error covers persistence problems only. A
// workflow without a trigger node finishes failed with no node results.
func (e *WorkflowExecutor) Execute(ctx context.Context, workflow domain.Workflow, triggerPayload map[string]any) (domain.Execution, error) {
	execution := domain.Execution{
		ID:          uuid.NewString(),
		WorkflowID:  workflow.ID,
		Status:      domain.ExecutionStatusRunning,
		StartedAt:   time.Now().UTC(),
		NodeResults: []domain.NodeResult{},
	}

	if err := e.executions.CreateExecution(ctx, execution); err != nil {
		return domain.Execution{}, fmt.Errorf("failed to create execution: %w", err)
	}

	log.Info().
		Str("execution_id", execution.ID).
		Str("workflow_id", workflow.ID).
		Int("node_count", len(workflow.Nodes)).
		Msg("Starting workflow execution")

	if !workflow.HasTriggerNode() {
		return e.finalize(ctx, execution, domain.ExecutionStatusFailed, domain.ErrNoTriggerNode.Error())
	}

	for _, node := range workflow.Nodes {
		execution.NodeResults = append(execution.NodeResults, e.executeNode(ctx, node, triggerPayload))
	}

	return e.finalize(ctx, execution, domain.ExecutionStatusCompleted, "")
}

func (e *WorkflowExecutor) executeNode(ctx context.Context, node domain.Node, triggerPayload map[string]any) domain.NodeResult {
	result := domain.NodeResult{
		NodeID:    node.ID,
		NodeType:  node.Type,
		Timestamp: time.Now().UTC(),
	}

	nodeExecutor, err := e.selector.Select(ctx, node.Type)
	if err != nil {
		if errors.Is(err, domain.ErrNodeTypeNotFound) {
			result.Status = domain.NodeResultStatusSkipped
			result.Data = map[string]any{
				"message":       fmt.Sprintf("Unknown node type: %s", node.Type),
				"original_data": triggerPayload,
			}

			return result
		}

		result.Status = domain.NodeResultStatusFailed
		result.Error = err.Error()

		return result
	}

	output, err := nodeExecutor.ExecuteNode(ctx, domain.NodeInput{
		Node:           node,
		TriggerPayload: triggerPayload,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("node_id", node.ID).
			Str("node_type", string(node.Type)).
			Msg("Node execution failed")

		result.Status = domain.NodeResultStatusFailed
		result.Error = err.Error()

		return result
	}

	result.Status = output.Status
	result.Data = output.Data

	return result
}

func (e *WorkflowExecutor) finalize(ctx context.Context, execution domain.Execution, status domain.ExecutionStatus, errorMessage string) (domain.Execution, error) {
	completedAt := time.Now().UTC()

	execution.Status = status
	execution.CompletedAt = &completedAt
	execution.Error = errorMessage

	if err := e.executions.UpdateExecution(ctx, execution); err != nil {
		return domain.Execution{}, fmt.Errorf("failed to update execution: %w", err)
	}

	log.Info().
		Str("execution_id", execution.ID).
		Str("status", string(status)).
		Int("result_count", len(execution.NodeResults)).
		Msg("Finished workflow execution")

	return execution, nil
}
