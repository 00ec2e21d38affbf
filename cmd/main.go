package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/yungbote/brewery-backend/internal/app"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:  "brewery",
		Usage: "beer distributor order management API",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   "dotenv files to load before reading the environment",
				EnvVars: []string{"BREWERY_ENV_FILE"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply the database schema and exit",
				Action: migrate,
			},
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "brewery: %v\n", err)
		os.Exit(1)
	}
}

func bootstrap(c *cli.Context) (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig(c.StringSlice("env-file")...)
	if err != nil {
		return app.Config{}, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	a, err := app.New(c.Context, cfg, log)
	if err != nil {
		log.Error("Failed to init app", "error", err)
		return err
	}
	defer a.Close()

	if err := a.Run(c.Context); err != nil {
		log.Error("Server failed", "error", err)
		return err
	}
	return nil
}

func migrate(c *cli.Context) error {
	cfg, log, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer log.Sync()
	return app.Migrate(c.Context, cfg, log)
}
