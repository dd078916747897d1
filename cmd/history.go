package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the execution history of a running service",
	Long: `Queries a running 'excelsior serve' instance for its execution history
and summary.

Example:
  excelsior history --addr http://localhost:8080`,
	RunE: runHistory,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("addr", "", "Service base URL (default http://localhost:$HTTP_PORT)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = "http://localhost:" + cfg.HTTPPort
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(addr + "/api/history")
	if err != nil {
		return fmt.Errorf("query service at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service returned status %d", resp.StatusCode)
	}

	var body struct {
		Records []struct {
			ID           string  `json:"id"`
			CreatedAt    string  `json:"created_at"`
			Source       string  `json:"source"`
			Target       string  `json:"target"`
			Network      string  `json:"network"`
			Venue        string  `json:"venue"`
			SlippagePct  float64 `json:"slippage_pct"`
			TotalCostUSD float64 `json:"total_cost_usd"`
		} `json:"records"`
		Summary struct {
			TotalExecutions    int     `json:"total_executions"`
			TotalVolume        float64 `json:"total_volume"`
			AverageSlippagePct float64 `json:"average_slippage_pct"`
		} `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode history response: %w", err)
	}

	if len(body.Records) == 0 {
		fmt.Println("No executions recorded yet.")
		return nil
	}

	for _, r := range body.Records {
		fmt.Printf("%s  %s  %s → %s on %s via %s  slippage=%.4f%%  cost=$%.2f\n",
			r.ID[:8], r.CreatedAt, r.Source, r.Target, r.Network, r.Venue, r.SlippagePct, r.TotalCostUSD)
	}

	fmt.Printf("\nExecutions: %d  Volume: %.4f  Avg slippage: %.4f%%\n",
		body.Summary.TotalExecutions, body.Summary.TotalVolume, body.Summary.AverageSlippagePct)

	return nil
}
