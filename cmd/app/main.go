package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/findvisor/internal"
	pkgconfig "github.com/starford/findvisor/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	found, err := pkgconfig.LoadIfExists(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !found {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default config: %w", err)
		}
	}
	if cmd.Bool("http") {
		cfg.App.HTTP.Enabled = true
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func execLine(ctx context.Context, cmd *cli.Command) error {
	line := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("exec: a command line is required")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Exec(ctx, line, internal.WithConfig(cfg))
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, internal.WithConfig(cfg))
}

func main() {
	cmd := &cli.Command{
		Name:   "findvisor",
		Usage:  "Address book for financial advisors: find clients, reschedule meetings and manage tags",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "http",
				Usage:   "Serve the HTTP API alongside the interactive session",
				Sources: cli.EnvVars("APP_HTTP_ENABLED"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "exec",
				Usage:     "Run a single command line and exit",
				ArgsUsage: "<command line>",
				Action:    execLine,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the MCP tools over stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, internal.ErrCommandFailed) {
			os.Exit(1)
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
