package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/cmd/cli/commands"
	"github.com/jakechorley/staffing-planner/internal/config"
	"github.com/jakechorley/staffing-planner/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "staffing",
		Short: "Staffing planner CLI - Minimum-cost weekly workforce plans",
		Long: `A CLI tool that computes minimum-cost staffing plans for weekly labour demand,
trading off hiring costs against the cost of carrying surplus workers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.PlanCmd(app))
	rootCmd.AddCommand(commands.ExampleCmd(app))
	rootCmd.AddCommand(commands.CostsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger and config
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Out = os.Stdout

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Debug("Loading configuration", zap.String("file", config.ConfigFileName(env)))
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.Int("configured_weeks", len(app.Cfg.Demand)),
		zap.String("start_date", app.Cfg.StartDate))

	return nil
}
