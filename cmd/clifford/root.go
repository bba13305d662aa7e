package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clifford/internal/cli"
	"github.com/aretw0/clifford/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clifford [n]",
	Short: "Sample random Clifford circuits",
	Long: `clifford samples a uniformly random n-qubit Clifford circuit and prints
its gates, one per line. With n = 0 it reduces the worked example from
van den Berg's paper instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows, _ := cmd.Flags().GetStringSlice("rows")
		if len(args) == 0 && len(rows) == 0 {
			fmt.Println("Error: missing qubit count")
			_ = cmd.Usage()
			os.Exit(1)
		}
		var n int
		if len(args) == 1 {
			var err error
			if n, err = cli.ParseQubits(args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		cfg := loadConfig(cmd)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Execute(ctx, cli.RunOptions{Config: cfg, Qubits: n, Rows: rows}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads --config and applies the persistent flag overrides.
// Errors end the process.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetString("seed")
	}
	if flags.Changed("phrase") {
		cfg.Phrase, _ = flags.GetString("phrase")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("store") {
		cfg.Store.Driver, _ = flags.GetString("store")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "clifford.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("seed", "", "Deterministic seed (decimal or 0x hex)")
	rootCmd.PersistentFlags().String("phrase", "", "Derive the random source from a passphrase")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text, json, qasm, markdown, mermaid)")
	rootCmd.PersistentFlags().String("store", "memory", "Run store (memory, file, redis)")

	rootCmd.Flags().StringSlice("rows", nil, "Canonicalize these rows instead of sampling, e.g. --rows +XZ,+ZI,+X,+Z")
}
