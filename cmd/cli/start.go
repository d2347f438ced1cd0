package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pibuilder/pibuilder/internal/server"
)

func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart()
		},
	}
}

func runStart() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	log.Info().
		Str("http_address", config.HTTPAddress).
		Str("storage_backend", config.StorageBackend).
		Msg("Starting pibuilder service")

	deps, cleanup, err := BuildServerDependencies(ctx, config)
	if err != nil {
		return err
	}
	defer cleanup(context.Background())

	app := server.NewHTTPServer(deps)

	if err := app.Listen(config.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")

		return err
	}

	log.Info().Msg("Service stopped")

	return nil
}
