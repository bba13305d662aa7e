package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clifford/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate <n>",
	Aliases: []string{"gen"},
	Short:   "Sample one random n-qubit Clifford circuit",
	Long:    `Same as "clifford <n>". With n = 0 the worked example is reduced instead.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := cli.ParseQubits(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg := loadConfig(cmd)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Execute(ctx, cli.RunOptions{Config: cfg, Qubits: n}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
