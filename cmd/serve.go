package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/app"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the routing service",
	Long: `Starts the HTTP API with quote, arbitrage, gas, and history endpoints,
plus Prometheus metrics and health probes. Blocks until SIGINT/SIGTERM.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	return application.Run()
}
