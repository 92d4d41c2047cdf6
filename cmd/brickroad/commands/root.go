package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brickroad/brickroad/internal/pkg/config"
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/spf13/cobra"
)

const appName = "brickroad"

var (
	configPath string
	configs    *models.Config
)

// Execute runs the root command until it finishes or SIGINT/SIGTERM arrives
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Turn-by-turn driving directions between two places",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configs = config.InitConfig(configPath)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config/brickroad.env", "env file loaded when APP_ENV=local")

	root.AddCommand(serveCmd(), directionsCmd())
	return root
}
