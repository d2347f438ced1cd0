package cli

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/internal/auth"
	"github.com/pibuilder/pibuilder/internal/controllers"
	"github.com/pibuilder/pibuilder/internal/payments"
	"github.com/pibuilder/pibuilder/internal/server"
	"github.com/pibuilder/pibuilder/internal/storage/memory"
	"github.com/pibuilder/pibuilder/internal/storage/mongo"
	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/domain/executor"
	"github.com/pibuilder/pibuilder/pkg/nodes"
	"github.com/pibuilder/pibuilder/pkg/tools"
)

// stores groups the persistence interfaces one backing satisfies together.
type stores interface {
	domain.WorkflowStore
	domain.ExecutionStore
	domain.ToolStore
	domain.ToolExecutionStore
	domain.UserStore
}

// BuildServerDependencies wires the whole service from configuration: store
// backing, registries, executors, controllers. The returned cleanup function
// releases the store backing and is safe to call once.
func BuildServerDependencies(ctx context.Context, config *Config) (server.HTTPServerDependencies, func(context.Context), error) {
	var (
		store   stores
		cleanup = func(context.Context) {}
	)

	switch config.StorageBackend {
	case StorageBackendMongo:
		mongoStore, err := mongo.NewStore(ctx, config.MongoURI, config.MongoDatabase)
		if err != nil {
			return server.HTTPServerDependencies{}, nil, fmt.Errorf("failed to build mongo store: %w", err)
		}

		store = mongoStore
		cleanup = func(ctx context.Context) { _ = mongoStore.Close(ctx) }
	default:
		store = memory.NewStore()
	}

	nodeRegistry, err := nodes.NewRegistry()
	if err != nil {
		cleanup(ctx)

		return server.HTTPServerDependencies{}, nil, fmt.Errorf("failed to build node registry: %w", err)
	}

	toolRegistry := tools.NewRegistry()

	verifier, err := auth.NewPiTokenVerifier(auth.PiTokenVerifierConfig{
		PublicKeyPEM:    config.PiTokenPublicKey,
		AllowUnverified: config.AllowUnverifiedTokens,
	})
	if err != nil {
		cleanup(ctx)

		return server.HTTPServerDependencies{}, nil, fmt.Errorf("failed to build token verifier: %w", err)
	}

	workflowExecutor := executor.NewWorkflowExecutor(executor.WorkflowExecutorDependencies{
		Selector:   nodeRegistry.Selector(),
		Executions: store,
	})

	toolExecutor := executor.NewToolExecutor(executor.ToolExecutorDependencies{
		Selector:       toolRegistry.Selector(),
		ToolExecutions: store,
	})

	webhookService := executor.NewWebhookService(executor.WebhookServiceDependencies{
		Workflows: store,
		Executor:  workflowExecutor,
	})

	gateway := payments.NewPiClient(payments.PiClientConfig{
		BaseURL: config.PiAPIURL,
		APIKey:  config.PiAPIKey,
	})

	deps := server.HTTPServerDependencies{
		Verifier: verifier,
		AuthController: controllers.NewAuthController(controllers.AuthControllerDependencies{
			Verifier: verifier,
			Users:    store,
		}),
		WorkflowController: controllers.NewWorkflowController(controllers.WorkflowControllerDependencies{
			Workflows:  store,
			Executions: store,
			Registry:   nodeRegistry,
			Executor:   workflowExecutor,
		}),
		ToolController: controllers.NewToolController(controllers.ToolControllerDependencies{
			Tools:          store,
			ToolExecutions: store,
			Registry:       toolRegistry,
			Executor:       toolExecutor,
		}),
		PaymentController: controllers.NewPaymentController(controllers.PaymentControllerDependencies{
			Gateway: gateway,
		}),
		WebhookController: controllers.NewWebhookController(controllers.WebhookControllerDependencies{
			Webhooks: webhookService,
		}),
	}

	return deps, cleanup, nil
}
