package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clifford/internal/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <n>",
	Short: "Chart gate statistics of many sampled circuits",
	Long:  `Samples --runs circuits of n qubits and writes an HTML page with gate counts, circuit lengths and pair redraws.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := cli.ParseQubits(args[0])
		if err != nil || n == 0 {
			fmt.Printf("Error: qubit count must be a positive integer, got %q\n", args[0])
			os.Exit(1)
		}
		runs, _ := cmd.Flags().GetInt("runs")
		out, _ := cmd.Flags().GetString("out")

		cfg := loadConfig(cmd)
		summary, err := cli.Stats(cmd.Context(), cfg, cli.StatsOptions{Qubits: n, Runs: runs, Output: out})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if out != "-" {
			fmt.Printf("%d runs, mean %.1f gates. Chart: %s\n", summary.Runs, summary.MeanLength(), out)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntP("runs", "r", 100, "Number of circuits to sample")
	statsCmd.Flags().StringP("out", "o", "clifford-stats.html", "HTML output file, or - for stdout")
}
