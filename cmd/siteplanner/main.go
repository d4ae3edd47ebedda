package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ParixJ/Site-generator/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "siteplanner",
		Short: "Stochastic site layout generator for two-typology building placement",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		strategy string
		count    int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate ranked candidate layouts for a site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(projectPath(args), strategy, count, seed)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "random", "placement strategy: random or column-aligned")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "target building count (default: minimum for the site)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check a site spec without generating layouts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(projectPath(args))
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP server backing the interactive layout viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpec(projectPath(args))
			if err != nil {
				return err
			}

			log, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(s, port, log).Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

func projectPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
