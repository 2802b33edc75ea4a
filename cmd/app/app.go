package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/motus-health/backend/cmd/app/server"
	"github.com/motus-health/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "motus-backend",
		Description: "The Motus therapeutic motion tracking backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS for telemetry event fan-out and Redis for entity caching.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
