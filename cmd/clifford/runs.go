package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clifford/internal/cli"
	"github.com/aretw0/clifford/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage stored runs",
	Long:  `Inspect runs kept by the file or redis store (see --store and the store section of the config).`,
}

var runsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List stored run IDs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if err := cli.ListRuns(cmd.Context(), cfg, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if err := cli.ShowRun(cmd.Context(), cfg, args[0], os.Stdout, tui.IsTerminal(os.Stdout)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var runsRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a stored run",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if err := cli.DeleteRun(cmd.Context(), cfg, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run '%s' deleted.\n", args[0])
	},
}

func init() {
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsRemoveCmd)
	rootCmd.AddCommand(runsCmd)
}
