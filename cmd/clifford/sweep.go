package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clifford/internal/cli"
	"github.com/aretw0/clifford/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <a> <b>",
	Short: "Canonicalize one anticommuting Pauli pair",
	Long: `Prints the gates that map the pair (a, b) to X and Z on qubit 0,
for example:

  clifford sweep +XYYX +YYYX`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		if err := cli.Sweep(cmd.Context(), cfg, args[0], args[1], os.Stdout, tui.IsTerminal(os.Stdout)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
