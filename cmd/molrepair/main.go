package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmium-bio/molrepair/cmd/molrepair/commands"
	"github.com/osmium-bio/molrepair/config"
	"github.com/osmium-bio/molrepair/logger"
)

var rootCmd = &cobra.Command{
	Use:   "molrepair",
	Short: "molrepair - repair structure graphs against reference topologies",
	Long: `molrepair - graph repair for molecular structures.

molrepair aligns each residue of a structure graph with its curated
reference topology, canonicalizes atom names, rebuilds missing atoms
(topology only, no coordinates), and flags atoms the reference does not
know as modifications.

Available commands:
  repair  - Repair a structure and write the result
  check   - Report missing and extra atoms without modifying anything
  version - Show version information

Examples:
  molrepair repair -f ./forcefield in.json out.json
  molrepair repair -f ./forcefield --permissive in.json
  molrepair check -f ./forcefield in.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		commands.Cfg = cfg

		jsonOutput := cfg.Log.JSON
		if cmd.Flags().Changed("json") {
			jsonOutput, _ = cmd.Flags().GetBool("json")
		}
		verbosity := cfg.Log.Verbosity
		if cmd.Flags().Changed("verbose") {
			verbosity, _ = cmd.Flags().GetCount("verbose")
		}
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "JSON log output")

	rootCmd.AddCommand(commands.RepairCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
