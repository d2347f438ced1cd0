package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/internal/storage/memory"
	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/nodes"
)

func newTestWorkflowExecutor(t *testing.T) (*WorkflowExecutor, *memory.Store) {
	t.Helper()

	registry, err := nodes.NewRegistry()
	require.NoError(t, err)

	store := memory.NewStore()

	return NewWorkflowExecutor(WorkflowExecutorDependencies{
		Selector:   registry.Selector(),
		Executions: store,
	}), store
}

func TestWorkflowExecutor_NoTriggerNode(t *testing.T) {
	workflowExecutor, store := newTestWorkflowExecutor(t)

	workflow := domain.Workflow{
		ID: "wf-1",
		Nodes: []domain.Node{
			{ID: "n1", Type: domain.NodeTypeSlack},
			{ID: "n2", Type: domain.NodeTypeEmail},
		},
	}

	execution, err := workflowExecutor.Execute(context.Background(), workflow, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionStatusFailed, execution.Status)
	assert.Equal(t, "no trigger node found in workflow", execution.Error)
	assert.Empty(t, execution.NodeResults)
	require.NotNil(t, execution.CompletedAt)

	stored, err := store.GetExecution(context.Background(), execution.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExecutionStatusFailed, stored.Status)
}

func TestWorkflowExecutor_RunsEveryNodeInOrder(t *testing.T) {
	workflowExecutor, _ := newTestWorkflowExecutor(t)

	workflow := domain.Workflow{
		ID: "wf-2",
		Nodes: []domain.Node{
			{ID: "n1", Type: domain.NodeTypeManual},
			{ID: "n2", Type: domain.NodeTypeSlack, Config: domain.NodeConfig{"channel": "#ops"}},
			{ID: "n3", Type: domain.NodeType("mystery")},
			{ID: "n4", Type: domain.NodeTypeEmail},
		},
		// Connections declare a different order; the executor ignores them.
		Connections: []domain.Connection{
			{FromNodeID: "n4", ToNodeID: "n2"},
		},
	}

	triggerPayload := map[string]any{"source": "test"}

	execution, err := workflowExecutor.Execute(context.Background(), workflow, triggerPayload)
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionStatusCompleted, execution.Status)
	require.Len(t, execution.NodeResults, 4)

	assert.Equal(t, "n1", execution.NodeResults[0].NodeID)
	assert.Equal(t, domain.NodeResultStatusTriggered, execution.NodeResults[0].Status)

	assert.Equal(t, "n2", execution.NodeResults[1].NodeID)
	assert.Equal(t, domain.NodeResultStatusSuccess, execution.NodeResults[1].Status)
	assert.Equal(t, "Sent to Slack channel #ops: Default message from Pi No-Code Builder",
		execution.NodeResults[1].Data["message"])

	assert.Equal(t, "n3", execution.NodeResults[2].NodeID)
	assert.Equal(t, domain.NodeResultStatusSkipped, execution.NodeResults[2].Status)
	assert.Equal(t, "Unknown node type: mystery", execution.NodeResults[2].Data["message"])

	assert.Equal(t, "n4", execution.NodeResults[3].NodeID)
	assert.Equal(t, domain.NodeResultStatusSuccess, execution.NodeResults[3].Status)

	// Every node receives the same trigger payload.
	for _, result := range execution.NodeResults {
		if result.Status == domain.NodeResultStatusSkipped || result.Status == domain.NodeResultStatusSuccess {
			assert.Equal(t, triggerPayload, result.Data["original_data"], "node %s", result.NodeID)
		}
	}
}

type failingNode struct{}

func (n failingNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	return domain.NodeOutput{}, errors.New("boom")
}

func TestWorkflowExecutor_NodeFailureDoesNotAbortRun(t *testing.T) {
	registry, err := nodes.NewRegistry()
	require.NoError(t, err)

	selector := registry.Selector()
	selector.Register(domain.NodeType("flaky"), failingNode{})

	store := memory.NewStore()
	workflowExecutor := NewWorkflowExecutor(WorkflowExecutorDependencies{
		Selector:   selector,
		Executions: store,
	})

	workflow := domain.Workflow{
		ID: "wf-3",
		Nodes: []domain.Node{
			{ID: "n1", Type: domain.NodeTypeManual},
			{ID: "n2", Type: domain.NodeType("flaky")},
			{ID: "n3", Type: domain.NodeTypeNoop},
		},
	}

	execution, err := workflowExecutor.Execute(context.Background(), workflow, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionStatusCompleted, execution.Status)
	require.Len(t, execution.NodeResults, 3)

	assert.Equal(t, domain.NodeResultStatusFailed, execution.NodeResults[1].Status)
	assert.Equal(t, "boom", execution.NodeResults[1].Error)

	assert.Equal(t, domain.NodeResultStatusSuccess, execution.NodeResults[2].Status)
}

func TestWorkflowExecutor_TerminalStatusIsNeverRunning(t *testing.T) {
	workflowExecutor, store := newTestWorkflowExecutor(t)

	workflow := domain.Workflow{
		ID:    "wf-4",
		Nodes: []domain.Node{{ID: "n1", Type: domain.NodeTypeWebhook}},
	}

	execution, err := workflowExecutor.Execute(context.Background(), workflow, map[string]any{})
	require.NoError(t, err)

	assert.NotEqual(t, domain.ExecutionStatusRunning, execution.Status)

	stored, err := store.GetExecution(context.Background(), execution.ID)
	require.NoError(t, err)
	assert.NotEqual(t, domain.ExecutionStatusRunning, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
}
