package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/modebench/modebench/internal/metrics"
	"github.com/modebench/modebench/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch and display live metrics from a running benchmark server",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("addr", "http://localhost:8080", "benchmark server base URL")
	statsCmd.Flags().Bool("json", false, "print the raw JSON snapshot")
	statsCmd.Flags().Bool("no-color", false, "disable colored output")
	statsCmd.Flags().Duration("timeout", 10*time.Second, "request timeout")
}

func runStats(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	rawJSON, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(strings.TrimRight(addr, "/") + "/metrics/json")
	if err != nil {
		return fmt.Errorf("fetching metrics: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading metrics response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if rawJSON {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(body)))
		return nil
	}

	rep, err := parseReport(body)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(noColor)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(rep))
	return nil
}

// parseReport extracts the snapshot fields from the JSON body.
func parseReport(body []byte) (metrics.Report, error) {
	if !gjson.ValidBytes(body) {
		return metrics.Report{}, fmt.Errorf("invalid JSON snapshot")
	}

	parsed := gjson.ParseBytes(body)
	return metrics.Report{
		Total:    parsed.Get("totalRequests").Int(),
		Success:  parsed.Get("successRequests").Int(),
		Inflight: parsed.Get("inflightRequests").Int(),
		RPS:      parsed.Get("rps").Float(),
		P50:      time.Duration(parsed.Get("p50").Int()),
		P95:      time.Duration(parsed.Get("p95").Int()),
		P99:      time.Duration(parsed.Get("p99").Int()),
	}, nil
}
