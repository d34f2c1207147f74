package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golca/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "golca",
	Short: "Building assembly takeoff for life-cycle assessment",
	Long: `golca - Go Life-Cycle Assessment Takeoff

A CLI tool that reads a building energy model and classifies every
envelope assembly into the structured records a whole-building
life-cycle assessment needs.

This tool helps LCA practitioners:
  - Identify the construction system of walls, roofs, floors and foundations
  - Decompose insulation into continuous segments with R-values
  - Take off areas, spans, heights and roof pitch from model geometry
  - Characterize windows and doors from construction tags and results

Outputs are reported in IP units (ft², ft, in., h·ft²·°F/Btu).`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golca v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Life-Cycle Assessment Takeoff                        ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Classifies building model assemblies for life-cycle assessment.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Structural layer location and construction system classification")
		fmt.Println("    • Continuous insulation decomposition with material inference")
		fmt.Println("    • Geometric takeoff: area, span, height and pitch")
		fmt.Println("    • Window and door characterization from EnergyPlus results")
		fmt.Println()
		fmt.Println("  Use 'golca --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
