package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "modebench",
	Short:   "Benchmark task-execution strategies under blocking workloads",
	Version: version,
	Long: `Modebench runs an HTTP server that executes a simulated blocking
operation through switchable execution strategies (goroutine-per-task or
fixed-size worker pools) and reports live throughput and latency metrics,
making the cost of each strategy directly comparable under load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(statsCmd)
}
