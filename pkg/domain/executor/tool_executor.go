package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type ToolExecutor struct {
	selector       domain.ToolSelector
	toolExecutions domain.ToolExecutionStore
}

type ToolExecutorDependencies struct {
	Selector       domain.ToolSelector
	ToolExecutions domain.ToolExecutionStore
}

func NewToolExecutor(deps ToolExecutorDependencies) *ToolExecutor {
	return &ToolExecutor{
		selector:       deps.Selector,
		toolExecutions: deps.ToolExecutions,
	}
}

// Execute authorizes the caller, dispatches the tool handler and records the
// invocation. Handler failures are recorded as {error: ...} payloads; only an
// authorization rejection or a persistence problem returns an error, and an
// authorization rejection leaves no record behind.
func (e *ToolExecutor) Execute(ctx context.Context, tool domain.Tool, input map[string]any, callerID string) (domain.ToolExecution, error) {
	if !tool.CanBeExecutedBy(callerID) {
		return domain.ToolExecution{}, fmt.Errorf("%w: %s", domain.ErrToolNotExecutable, tool.ID)
	}

	output := e.dispatch(ctx, tool, input)

	execution := domain.ToolExecution{
		ID:        xid.New().String(),
		ToolID:    tool.ID,
		UserID:    callerID,
		Input:     input,
		Output:    output,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.toolExecutions.CreateToolExecution(ctx, execution); err != nil {
		return domain.ToolExecution{}, fmt.Errorf("failed to create tool execution: %w", err)
	}

	log.Info().
		Str("tool_id", tool.ID).
		Str("tool_type", string(tool.Type)).
		Str("execution_id", execution.ID).
		Msg("Executed tool")

	return execution, nil
}

func (e *ToolExecutor) dispatch(ctx context.Context, tool domain.Tool, input map[string]any) map[string]any {
	handler, err := e.selector.Select(ctx, tool.Type)
	if err != nil {
		if errors.Is(err, domain.ErrToolTypeNotFound) {
			return map[string]any{"error": fmt.Sprintf("Unknown tool type: %s", tool.Type)}
		}

		return map[string]any{"error": err.Error()}
	}

	output, err := handler.ExecuteTool(ctx, domain.ToolInput{Tool: tool, Input: input})
	if err != nil {
		log.Error().
			Err(err).
			Str("tool_id", tool.ID).
			Str("tool_type", string(tool.Type)).
			Msg("Tool handler failed")

		return map[string]any{"error": err.Error()}
	}

	return output
}
