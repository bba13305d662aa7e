package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of clifford",
	Run: func(cmd *cobra.Command, args []string) {
		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, clifford.Version)
			return
		}
		fmt.Printf("clifford version %s\n", strings.TrimSpace(clifford.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
