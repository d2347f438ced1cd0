package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/pibuilder/pibuilder/internal/auth"
	"github.com/pibuilder/pibuilder/internal/controllers"
	"github.com/pibuilder/pibuilder/internal/middlewares"
	"github.com/pibuilder/pibuilder/internal/version"
)

type HTTPServerDependencies struct {
	Verifier           *auth.PiTokenVerifier
	AuthController     *controllers.AuthController
	WorkflowController *controllers.WorkflowController
	ToolController     *controllers.ToolController
	PaymentController  *controllers.PaymentController
	WebhookController  *controllers.WebhookController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "pibuilder",
	})

	router.Use(cors.New())
	router.Use(logger.New())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "pibuilder",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	requireAuth := middlewares.RequireAuth(deps.Verifier)
	optionalAuth := middlewares.OptionalAuth(deps.Verifier)

	api := router.Group("/api/v1")

	api.Post("/auth/pi", deps.AuthController.Authenticate)

	api.Get("/nodes", deps.WorkflowController.ListNodeDefinitions)
	api.Get("/tool-types", deps.ToolController.ListToolDefinitions)

	workflows := api.Group("/workflows", requireAuth)
	workflows.Post("/", deps.WorkflowController.CreateWorkflow)
	workflows.Get("/", deps.WorkflowController.ListWorkflows)
	workflows.Get("/:id", deps.WorkflowController.GetWorkflow)
	workflows.Put("/:id", deps.WorkflowController.UpdateWorkflow)
	workflows.Delete("/:id", deps.WorkflowController.DeleteWorkflow)
	workflows.Post("/:id/execute", deps.WorkflowController.ExecuteWorkflow)

	api.Get("/executions", deps.WorkflowController.ListExecutions, requireAuth)
	api.Get("/executions/:id", deps.WorkflowController.GetExecution, requireAuth)

	// Tool routes are registered individually because published tools are
	// public: reads and executions authenticate optionally and authorize
	// downstream. The static /published route precedes /:id.
	api.Get("/tools/published", deps.ToolController.ListPublishedTools)
	api.Post("/tools", deps.ToolController.CreateTool, requireAuth)
	api.Get("/tools", deps.ToolController.ListMyTools, requireAuth)
	api.Get("/tools/:id", deps.ToolController.GetTool, optionalAuth)
	api.Put("/tools/:id", deps.ToolController.UpdateTool, requireAuth)
	api.Delete("/tools/:id", deps.ToolController.DeleteTool, requireAuth)
	api.Post("/tools/:id/publish", deps.ToolController.PublishTool, requireAuth)
	api.Get("/tools/:id/executions", deps.ToolController.ListToolExecutions, requireAuth)
	api.Post("/tools/:id/execute", deps.ToolController.ExecuteTool, optionalAuth)

	payments := api.Group("/pi/payments", requireAuth)
	payments.Post("/", deps.PaymentController.CreatePayment)
	payments.Post("/complete", deps.PaymentController.CompletePayment)

	api.All("/webhooks/*", deps.WebhookController.HandleWebhook)

	return router
}
