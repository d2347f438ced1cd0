package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gosimple/slug"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/internal/middlewares"
	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/domain/executor"
	"github.com/pibuilder/pibuilder/pkg/tools"
)

type ToolController struct {
	tools          domain.ToolStore
	toolExecutions domain.ToolExecutionStore
	registry       *tools.Registry
	executor       *executor.ToolExecutor
}

type ToolControllerDependencies struct {
	Tools          domain.ToolStore
	ToolExecutions domain.ToolExecutionStore
	Registry       *tools.Registry
	Executor       *executor.ToolExecutor
}

func NewToolController(deps ToolControllerDependencies) *ToolController {
	return &ToolController{
		tools:          deps.Tools,
		toolExecutions: deps.ToolExecutions,
		registry:       deps.Registry,
		executor:       deps.Executor,
	}
}

type toolRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        domain.ToolType    `json:"type"`
	Fields      []domain.ToolField `json:"fields"`
}

func (c *ToolController) ListToolDefinitions(ctx fiber.Ctx) error {
	return ctx.JSON(c.registry.Definitions())
}

func (c *ToolController) CreateTool(ctx fiber.Ctx) error {
	var req toolRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tool name is required")
	}

	now := time.Now().UTC()

	tool := domain.Tool{
		ID:          xid.New().String(),
		CreatorID:   middlewares.CallerID(ctx),
		CreatorName: middlewares.CallerUsername(ctx),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Type:        req.Type,
		Fields:      req.Fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.tools.CreateTool(ctx.RequestCtx(), tool); err != nil {
		log.Error().Err(err).Msg("Failed to create tool")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tool")
	}

	return ctx.Status(fiber.StatusCreated).JSON(tool)
}

func (c *ToolController) ListMyTools(ctx fiber.Ctx) error {
	userTools, err := c.tools.ListToolsByCreator(ctx.RequestCtx(), middlewares.CallerID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tools")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tools")
	}

	return ctx.JSON(userTools)
}

func (c *ToolController) ListPublishedTools(ctx fiber.Ctx) error {
	publishedTools, err := c.tools.ListPublishedTools(ctx.RequestCtx())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list published tools")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tools")
	}

	return ctx.JSON(publishedTools)
}

// GetTool serves a tool to its creator or, when published, to anyone.
func (c *ToolController) GetTool(ctx fiber.Ctx) error {
	tool, err := c.tools.GetTool(ctx.RequestCtx(), ctx.Params("id"))
	if errors.Is(err, domain.ErrToolNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Tool not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get tool")
	}

	if !tool.Published && tool.CreatorID != middlewares.CallerID(ctx) {
		return fiber.NewError(fiber.StatusNotFound, "Tool not found")
	}

	return ctx.JSON(tool)
}

func (c *ToolController) UpdateTool(ctx fiber.Ctx) error {
	tool, err := c.ownedTool(ctx)
	if err != nil {
		return err
	}

	var req toolRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name != "" {
		tool.Name = req.Name
		tool.Slug = slug.Make(req.Name)
	}

	if req.Description != "" {
		tool.Description = req.Description
	}

	if req.Type != "" {
		tool.Type = req.Type
	}

	if req.Fields != nil {
		tool.Fields = req.Fields
	}

	tool.UpdatedAt = time.Now().UTC()

	if err := c.tools.UpdateTool(ctx.RequestCtx(), tool); err != nil {
		log.Error().Err(err).Str("tool_id", tool.ID).Msg("Failed to update tool")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update tool")
	}

	return ctx.JSON(tool)
}

// DeleteTool removes the tool and its execution history.
func (c *ToolController) DeleteTool(ctx fiber.Ctx) error {
	tool, err := c.ownedTool(ctx)
	if err != nil {
		return err
	}

	if err := c.tools.DeleteTool(ctx.RequestCtx(), tool.ID); err != nil {
		log.Error().Err(err).Str("tool_id", tool.ID).Msg("Failed to delete tool")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete tool")
	}

	if err := c.toolExecutions.DeleteToolExecutionsByTool(ctx.RequestCtx(), tool.ID); err != nil {
		log.Error().Err(err).Str("tool_id", tool.ID).Msg("Failed to delete tool executions")
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *ToolController) PublishTool(ctx fiber.Ctx) error {
	tool, err := c.ownedTool(ctx)
	if err != nil {
		return err
	}

	tool.Published = true
	tool.UpdatedAt = time.Now().UTC()

	if err := c.tools.UpdateTool(ctx.RequestCtx(), tool); err != nil {
		log.Error().Err(err).Str("tool_id", tool.ID).Msg("Failed to publish tool")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to publish tool")
	}

	return ctx.JSON(tool)
}

// ExecuteTool runs a tool. Published tools are executable by anyone, including
// anonymous callers; unpublished tools only by their creator.
func (c *ToolController) ExecuteTool(ctx fiber.Ctx) error {
	tool, err := c.tools.GetTool(ctx.RequestCtx(), ctx.Params("id"))
	if errors.Is(err, domain.ErrToolNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Tool not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get tool")
	}

	input := map[string]any{}

	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().Body(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	execution, err := c.executor.Execute(ctx.RequestCtx(), tool, input, middlewares.CallerID(ctx))
	if errors.Is(err, domain.ErrToolNotExecutable) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Tool not available for execution",
		})
	}
	if err != nil {
		log.Error().Err(err).Str("tool_id", tool.ID).Msg("Failed to execute tool")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to execute tool")
	}

	return ctx.JSON(fiber.Map{
		"success":      true,
		"output":       execution.Output,
		"execution_id": execution.ID,
	})
}

func (c *ToolController) ListToolExecutions(ctx fiber.Ctx) error {
	tool, err := c.ownedTool(ctx)
	if err != nil {
		return err
	}

	executions, err := c.toolExecutions.ListToolExecutionsByTool(ctx.RequestCtx(), tool.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tool executions")
	}

	return ctx.JSON(executions)
}

func (c *ToolController) ownedTool(ctx fiber.Ctx) (domain.Tool, error) {
	tool, err := c.tools.GetTool(ctx.RequestCtx(), ctx.Params("id"))
	if errors.Is(err, domain.ErrToolNotFound) {
		return domain.Tool{}, fiber.NewError(fiber.StatusNotFound, "Tool not found")
	}
	if err != nil {
		return domain.Tool{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to get tool")
	}

	if tool.CreatorID != middlewares.CallerID(ctx) {
		return domain.Tool{}, fiber.NewError(fiber.StatusNotFound, "Tool not found")
	}

	return tool, nil
}
