package domain

import "context"

// Store interfaces decouple the engine from its persistence backing. The
// in-memory backing serves tests and single-process deployments, the Mongo
// backing serves production; both are constructed by the process entry point
// and injected, never reached through package-level state.

type WorkflowStore interface {
	CreateWorkflow(ctx context.Context, workflow Workflow) error
	GetWorkflow(ctx context.Context, id string) (Workflow, error)
	ListWorkflows(ctx context.Context) ([]Workflow, error)
	ListWorkflowsByUser(ctx context.Context, userID string) ([]Workflow, error)
	UpdateWorkflow(ctx context.Context, workflow Workflow) error
	DeleteWorkflow(ctx context.Context, id string) error
}

type ExecutionStore interface {
	CreateExecution(ctx context.Context, execution Execution) error
	UpdateExecution(ctx context.Context, execution Execution) error
	GetExecution(ctx context.Context, id string) (Execution, error)
	ListExecutionsByWorkflow(ctx context.Context, workflowID string) ([]Execution, error)
	DeleteExecutionsByWorkflow(ctx context.Context, workflowID string) error
}

type ToolStore interface {
	CreateTool(ctx context.Context, tool Tool) error
	GetTool(ctx context.Context, id string) (Tool, error)
	ListToolsByCreator(ctx context.Context, creatorID string) ([]Tool, error)
	ListPublishedTools(ctx context.Context) ([]Tool, error)
	UpdateTool(ctx context.Context, tool Tool) error
	DeleteTool(ctx context.Context, id string) error
}

type ToolExecutionStore interface {
	CreateToolExecution(ctx context.Context, execution ToolExecution) error
	ListToolExecutionsByTool(ctx context.Context, toolID string) ([]ToolExecution, error)
	DeleteToolExecutionsByTool(ctx context.Context, toolID string) error
}

type UserStore interface {
	UpsertUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
}
