package controllers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/pkg/domain/executor"
)

type WebhookController struct {
	webhooks *executor.WebhookService
}

type WebhookControllerDependencies struct {
	Webhooks *executor.WebhookService
}

func NewWebhookController(deps WebhookControllerDependencies) *WebhookController {
	return &WebhookController{
		webhooks: deps.Webhooks,
	}
}

// HandleWebhook runs every workflow with a webhook node configured for the
// request path, whatever its status. The whole request is assembled into one
// trigger payload.
func (c *WebhookController) HandleWebhook(ctx fiber.Ctx) error {
	path := ctx.Params("*")

	payload := map[string]any{
		"method":  ctx.Method(),
		"headers": requestHeaders(ctx),
		"params":  ctx.Queries(),
	}

	if body := ctx.Body(); len(body) > 0 {
		var jsonBody map[string]any
		if err := json.Unmarshal(body, &jsonBody); err == nil {
			payload["json"] = jsonBody
		}
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		formValues := map[string]any{}
		for key, values := range form.Value {
			if len(values) > 0 {
				formValues[key] = values[0]
			}
		}

		payload["form"] = formValues
	}

	executions, err := c.webhooks.HandleWebhook(ctx.RequestCtx(), path, payload)
	if err != nil {
		if errors.Is(err, executor.ErrNoMatchingWorkflow) {
			log.Debug().Err(err).Str("path", path).Msg("Webhook matched no workflow")

			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No workflow registered for this webhook path",
			})
		}

		log.Error().Err(err).Str("path", path).Msg("Webhook executions failed")

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Webhook execution failed",
		})
	}

	executionIDs := make([]string, 0, len(executions))
	for _, execution := range executions {
		executionIDs = append(executionIDs, execution.ID)
	}

	return ctx.JSON(fiber.Map{
		"success":       true,
		"execution_ids": executionIDs,
	})
}

func requestHeaders(ctx fiber.Ctx) map[string]any {
	headers := map[string]any{}

	for key, values := range ctx.GetReqHeaders() {
		headers[strings.ToLower(key)] = strings.Join(values, ", ")
	}

	return headers
}
