// Package memory provides an in-process store backing for tests and
// single-process deployments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// Store implements every store interface over mutex-guarded maps.
type Store struct {
	mu             sync.RWMutex
	workflows      map[string]domain.Workflow
	executions     map[string]domain.Execution
	tools          map[string]domain.Tool
	toolExecutions map[string]domain.ToolExecution
	users          map[string]domain.User
}

func NewStore() *Store {
	return &Store{
		workflows:      make(map[string]domain.Workflow),
		executions:     make(map[string]domain.Execution),
		tools:          make(map[string]domain.Tool),
		toolExecutions: make(map[string]domain.ToolExecution),
		users:          make(map[string]domain.User),
	}
}

func (s *Store) CreateWorkflow(ctx context.Context, workflow domain.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.workflows[workflow.ID]; exists {
		return fmt.Errorf("workflow %s already exists", workflow.ID)
	}

	s.workflows[workflow.ID] = workflow

	return nil
}

func (s *Store) GetWorkflow(ctx context.Context, id string) (domain.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflow, ok := s.workflows[id]
	if !ok {
		return domain.Workflow{}, domain.ErrWorkflowNotFound
	}

	return workflow, nil
}

func (s *Store) ListWorkflows(ctx context.Context) ([]domain.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflows := make([]domain.Workflow, 0, len(s.workflows))
	for _, workflow := range s.workflows {
		workflows = append(workflows, workflow)
	}

	sortByCreatedAt(workflows, func(w domain.Workflow) int64 { return w.CreatedAt.UnixNano() })

	return workflows, nil
}

func (s *Store) ListWorkflowsByUser(ctx context.Context, userID string) ([]domain.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflows := []domain.Workflow{}
	for _, workflow := range s.workflows {
		if workflow.UserID == userID {
			workflows = append(workflows, workflow)
		}
	}

	sortByCreatedAt(workflows, func(w domain.Workflow) int64 { return w.CreatedAt.UnixNano() })

	return workflows, nil
}

func (s *Store) UpdateWorkflow(ctx context.Context, workflow domain.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[workflow.ID]; !ok {
		return domain.ErrWorkflowNotFound
	}

	s.workflows[workflow.ID] = workflow

	return nil
}

func (s *Store) DeleteWorkflow(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[id]; !ok {
		return domain.ErrWorkflowNotFound
	}

	delete(s.workflows, id)

	return nil
}

func (s *Store) CreateExecution(ctx context.Context, execution domain.Execution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.executions[execution.ID]; exists {
		return fmt.Errorf("execution %s already exists", execution.ID)
	}

	s.executions[execution.ID] = execution

	return nil
}

func (s *Store) UpdateExecution(ctx context.Context, execution domain.Execution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.executions[execution.ID]; !ok {
		return domain.ErrExecutionNotFound
	}

	s.executions[execution.ID] = execution

	return nil
}

func (s *Store) GetExecution(ctx context.Context, id string) (domain.Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	execution, ok := s.executions[id]
	if !ok {
		return domain.Execution{}, domain.ErrExecutionNotFound
	}

	return execution, nil
}

func (s *Store) ListExecutionsByWorkflow(ctx context.Context, workflowID string) ([]domain.Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	executions := []domain.Execution{}
	for _, execution := range s.executions {
		if execution.WorkflowID == workflowID {
			executions = append(executions, execution)
		}
	}

	sortByCreatedAt(executions, func(e domain.Execution) int64 { return e.StartedAt.UnixNano() })

	return executions, nil
}

func (s *Store) DeleteExecutionsByWorkflow(ctx context.Context, workflowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, execution := range s.executions {
		if execution.WorkflowID == workflowID {
			delete(s.executions, id)
		}
	}

	return nil
}

func (s *Store) CreateTool(ctx context.Context, tool domain.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tools[tool.ID]; exists {
		return fmt.Errorf("tool %s already exists", tool.ID)
	}

	s.tools[tool.ID] = tool

	return nil
}

func (s *Store) GetTool(ctx context.Context, id string) (domain.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tool, ok := s.tools[id]
	if !ok {
		return domain.Tool{}, domain.ErrToolNotFound
	}

	return tool, nil
}

func (s *Store) ListToolsByCreator(ctx context.Context, creatorID string) ([]domain.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := []domain.Tool{}
	for _, tool := range s.tools {
		if tool.CreatorID == creatorID {
			tools = append(tools, tool)
		}
	}

	sortByCreatedAt(tools, func(t domain.Tool) int64 { return t.CreatedAt.UnixNano() })

	return tools, nil
}

func (s *Store) ListPublishedTools(ctx context.Context) ([]domain.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := []domain.Tool{}
	for _, tool := range s.tools {
		if tool.Published {
			tools = append(tools, tool)
		}
	}

	sortByCreatedAt(tools, func(t domain.Tool) int64 { return t.CreatedAt.UnixNano() })

	return tools, nil
}

func (s *Store) UpdateTool(ctx context.Context, tool domain.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tools[tool.ID]; !ok {
		return domain.ErrToolNotFound
	}

	s.tools[tool.ID] = tool

	return nil
}

func (s *Store) DeleteTool(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tools[id]; !ok {
		return domain.ErrToolNotFound
	}

	delete(s.tools, id)

	return nil
}

func (s *Store) CreateToolExecution(ctx context.Context, execution domain.ToolExecution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.toolExecutions[execution.ID]; exists {
		return fmt.Errorf("tool execution %s already exists", execution.ID)
	}

	s.toolExecutions[execution.ID] = execution

	return nil
}

func (s *Store) ListToolExecutionsByTool(ctx context.Context, toolID string) ([]domain.ToolExecution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	executions := []domain.ToolExecution{}
	for _, execution := range s.toolExecutions {
		if execution.ToolID == toolID {
			executions = append(executions, execution)
		}
	}

	sortByCreatedAt(executions, func(e domain.ToolExecution) int64 { return e.CreatedAt.UnixNano() })

	return executions, nil
}

func (s *Store) DeleteToolExecutionsByTool(ctx context.Context, toolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, execution := range s.toolExecutions {
		if execution.ToolID == toolID {
			delete(s.toolExecutions, id)
		}
	}

	return nil
}

func (s *Store) UpsertUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user

	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}

func sortByCreatedAt[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
