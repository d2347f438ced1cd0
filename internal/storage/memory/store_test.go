package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestStore_WorkflowCRUD(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	workflow := domain.Workflow{
		ID:        "wf-1",
		UserID:    "user-1",
		Name:      "My workflow",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, store.CreateWorkflow(ctx, workflow))
	assert.Error(t, store.CreateWorkflow(ctx, workflow), "duplicate id")

	got, err := store.GetWorkflow(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "My workflow", got.Name)

	workflow.Name = "Renamed"
	require.NoError(t, store.UpdateWorkflow(ctx, workflow))

	got, err = store.GetWorkflow(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, store.DeleteWorkflow(ctx, "wf-1"))

	_, err = store.GetWorkflow(ctx, "wf-1")
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	assert.ErrorIs(t, store.UpdateWorkflow(ctx, workflow), domain.ErrWorkflowNotFound)
	assert.ErrorIs(t, store.DeleteWorkflow(ctx, "wf-1"), domain.ErrWorkflowNotFound)
}

func TestStore_ListWorkflowsByUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Now().UTC()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateWorkflow(ctx, domain.Workflow{
			ID:        fmt.Sprintf("wf-%d", i),
			UserID:    "alice",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	require.NoError(t, store.CreateWorkflow(ctx, domain.Workflow{
		ID:        "wf-bob",
		UserID:    "bob",
		CreatedAt: base,
	}))

	workflows, err := store.ListWorkflowsByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, workflows, 3)

	// Sorted by creation time.
	assert.Equal(t, "wf-0", workflows[0].ID)
	assert.Equal(t, "wf-2", workflows[2].ID)

	all, err := store.ListWorkflows(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestStore_ExecutionLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	execution := domain.Execution{
		ID:         "exec-1",
		WorkflowID: "wf-1",
		Status:     domain.ExecutionStatusRunning,
		StartedAt:  time.Now().UTC(),
	}

	require.NoError(t, store.CreateExecution(ctx, execution))

	execution.Status = domain.ExecutionStatusCompleted
	require.NoError(t, store.UpdateExecution(ctx, execution))

	got, err := store.GetExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ExecutionStatusCompleted, got.Status)

	listed, err := store.ListExecutionsByWorkflow(ctx, "wf-1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, store.DeleteExecutionsByWorkflow(ctx, "wf-1"))

	listed, err = store.ListExecutionsByWorkflow(ctx, "wf-1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestStore_ToolsAndExecutions(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	published := domain.Tool{ID: "t1", CreatorID: "alice", Published: true, CreatedAt: time.Now().UTC()}
	private := domain.Tool{ID: "t2", CreatorID: "alice", CreatedAt: time.Now().UTC().Add(time.Second)}

	require.NoError(t, store.CreateTool(ctx, published))
	require.NoError(t, store.CreateTool(ctx, private))

	mine, err := store.ListToolsByCreator(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	public, err := store.ListPublishedTools(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "t1", public[0].ID)

	require.NoError(t, store.CreateToolExecution(ctx, domain.ToolExecution{ID: "te1", ToolID: "t1"}))
	require.NoError(t, store.CreateToolExecution(ctx, domain.ToolExecution{ID: "te2", ToolID: "t1"}))

	executions, err := store.ListToolExecutionsByTool(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, executions, 2)

	require.NoError(t, store.DeleteToolExecutionsByTool(ctx, "t1"))

	executions, err = store.ListToolExecutionsByTool(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, executions)
}

func TestStore_UserUpsert(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u1", Username: "alice"}))
	require.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u1", Username: "alice2"}))

	user, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
}

func TestStore_ConcurrentExecutionCreation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_ = store.CreateExecution(ctx, domain.Execution{
				ID:         fmt.Sprintf("exec-%d", i),
				WorkflowID: "wf-1",
			})
		}(i)
	}

	wg.Wait()

	executions, err := store.ListExecutionsByWorkflow(ctx, "wf-1")
	require.NoError(t, err)
	assert.Len(t, executions, 50)
}
