package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/internal/middlewares"
	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/domain/executor"
	"github.com/pibuilder/pibuilder/pkg/nodes"
)

type WorkflowController struct {
	workflows  domain.WorkflowStore
	executions domain.ExecutionStore
	registry   *nodes.Registry
	executor   *executor.WorkflowExecutor
}

type WorkflowControllerDependencies struct {
	Workflows  domain.WorkflowStore
	Executions domain.ExecutionStore
	Registry   *nodes.Registry
	Executor   *executor.WorkflowExecutor
}

func NewWorkflowController(deps WorkflowControllerDependencies) *WorkflowController {
	return &WorkflowController{
		workflows:  deps.Workflows,
		executions: deps.Executions,
		registry:   deps.Registry,
		executor:   deps.Executor,
	}
}

type workflowRequest struct {
	Name        string                `json:"name"`
	Nodes       []domain.Node         `json:"nodes"`
	Connections []domain.Connection   `json:"connections"`
	Status      domain.WorkflowStatus `json:"status"`
}

// ListNodeDefinitions serves the node type catalog, optionally filtered by
// category.
func (c *WorkflowController) ListNodeDefinitions(ctx fiber.Ctx) error {
	category := ctx.Query("category")
	if category != "" {
		return ctx.JSON(c.registry.DefinitionsByCategory(domain.NodeCategory(category)))
	}

	return ctx.JSON(c.registry.Definitions())
}

func (c *WorkflowController) CreateWorkflow(ctx fiber.Ctx) error {
	var req workflowRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	now := time.Now().UTC()

	workflow := domain.Workflow{
		ID:          xid.New().String(),
		UserID:      middlewares.CallerID(ctx),
		Name:        req.Name,
		Nodes:       req.Nodes,
		Connections: req.Connections,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if workflow.Status == "" {
		workflow.Status = domain.WorkflowStatusDraft
	}

	if err := c.registry.ValidateWorkflowNodes(workflow); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := c.workflows.CreateWorkflow(ctx.RequestCtx(), workflow); err != nil {
		log.Error().Err(err).Msg("Failed to create workflow")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create workflow")
	}

	return ctx.Status(fiber.StatusCreated).JSON(workflow)
}

func (c *WorkflowController) ListWorkflows(ctx fiber.Ctx) error {
	workflows, err := c.workflows.ListWorkflowsByUser(ctx.RequestCtx(), middlewares.CallerID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list workflows")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list workflows")
	}

	return ctx.JSON(workflows)
}

func (c *WorkflowController) GetWorkflow(ctx fiber.Ctx) error {
	workflow, err := c.ownedWorkflow(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(workflow)
}

// UpdateWorkflow replaces the workflow's nodes and connections atomically and
// bumps UpdatedAt.
func (c *WorkflowController) UpdateWorkflow(ctx fiber.Ctx) error {
	workflow, err := c.ownedWorkflow(ctx)
	if err != nil {
		return err
	}

	var req workflowRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name != "" {
		workflow.Name = req.Name
	}

	if req.Status != "" {
		workflow.Status = req.Status
	}

	workflow.Nodes = req.Nodes
	workflow.Connections = req.Connections
	workflow.UpdatedAt = time.Now().UTC()

	if err := c.registry.ValidateWorkflowNodes(workflow); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := c.workflows.UpdateWorkflow(ctx.RequestCtx(), workflow); err != nil {
		log.Error().Err(err).Str("workflow_id", workflow.ID).Msg("Failed to update workflow")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update workflow")
	}

	return ctx.JSON(workflow)
}

// DeleteWorkflow removes the workflow and its execution history.
func (c *WorkflowController) DeleteWorkflow(ctx fiber.Ctx) error {
	workflow, err := c.ownedWorkflow(ctx)
	if err != nil {
		return err
	}

	if err := c.workflows.DeleteWorkflow(ctx.RequestCtx(), workflow.ID); err != nil {
		log.Error().Err(err).Str("workflow_id", workflow.ID).Msg("Failed to delete workflow")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete workflow")
	}

	if err := c.executions.DeleteExecutionsByWorkflow(ctx.RequestCtx(), workflow.ID); err != nil {
		log.Error().Err(err).Str("workflow_id", workflow.ID).Msg("Failed to delete workflow executions")
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// ExecuteWorkflow runs the workflow synchronously with the request body as
// trigger payload and returns the finished execution record.
func (c *WorkflowController) ExecuteWorkflow(ctx fiber.Ctx) error {
	workflow, err := c.ownedWorkflow(ctx)
	if err != nil {
		return err
	}

	triggerPayload := map[string]any{}

	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().Body(&triggerPayload); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	execution, err := c.executor.Execute(ctx.RequestCtx(), workflow, triggerPayload)
	if err != nil {
		log.Error().Err(err).Str("workflow_id", workflow.ID).Msg("Failed to execute workflow")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to execute workflow")
	}

	return ctx.JSON(execution)
}

func (c *WorkflowController) GetExecution(ctx fiber.Ctx) error {
	execution, err := c.executions.GetExecution(ctx.RequestCtx(), ctx.Params("id"))
	if errors.Is(err, domain.ErrExecutionNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Execution not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get execution")
	}

	workflow, err := c.workflows.GetWorkflow(ctx.RequestCtx(), execution.WorkflowID)
	if err != nil || workflow.UserID != middlewares.CallerID(ctx) {
		return fiber.NewError(fiber.StatusNotFound, "Execution not found")
	}

	return ctx.JSON(execution)
}

// ListExecutions returns the caller's executions, optionally restricted to one
// workflow.
func (c *WorkflowController) ListExecutions(ctx fiber.Ctx) error {
	workflowID := ctx.Query("workflow_id")

	if workflowID != "" {
		workflow, err := c.workflows.GetWorkflow(ctx.RequestCtx(), workflowID)
		if err != nil || workflow.UserID != middlewares.CallerID(ctx) {
			return fiber.NewError(fiber.StatusNotFound, "Workflow not found")
		}

		executions, err := c.executions.ListExecutionsByWorkflow(ctx.RequestCtx(), workflowID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to list executions")
		}

		return ctx.JSON(executions)
	}

	workflows, err := c.workflows.ListWorkflowsByUser(ctx.RequestCtx(), middlewares.CallerID(ctx))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list executions")
	}

	executions := []domain.Execution{}

	for _, workflow := range workflows {
		workflowExecutions, err := c.executions.ListExecutionsByWorkflow(ctx.RequestCtx(), workflow.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to list executions")
		}

		executions = append(executions, workflowExecutions...)
	}

	return ctx.JSON(executions)
}

func (c *WorkflowController) ownedWorkflow(ctx fiber.Ctx) (domain.Workflow, error) {
	workflow, err := c.workflows.GetWorkflow(ctx.RequestCtx(), ctx.Params("id"))
	if errors.Is(err, domain.ErrWorkflowNotFound) {
		return domain.Workflow{}, fiber.NewError(fiber.StatusNotFound, "Workflow not found")
	}
	if err != nil {
		return domain.Workflow{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to get workflow")
	}

	if workflow.UserID != middlewares.CallerID(ctx) {
		return domain.Workflow{}, fiber.NewError(fiber.StatusNotFound, "Workflow not found")
	}

	return workflow, nil
}
