package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mdobak/go-xerrors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golca/internal/assemble"
	"github.com/alexiusacademia/golca/internal/diagram"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
)

var (
	takeoffModel      string
	takeoffResults    string
	takeoffDefaults   string
	takeoffJSON       string
	takeoffChart      bool
	takeoffExportFile string
)

var takeoffCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Classify every envelope assembly of a building model",
	Long: `Classify the walls, roofs, floors, foundation slabs and foundation
walls of a building model and report their construction systems,
insulation and geometric quantities.

Window and door performance values are read from an EnergyPlus results
database (eplusout.sql) or a JSON list of result entries when given.

Examples:
  golca takeoff --model building.json
  golca takeoff -m building.json --results eplusout.sql --json takeoff.json
  golca takeoff -m building.json --chart -o charts/rvalues.png`,
	RunE: runTakeoff,
}

func init() {
	rootCmd.AddCommand(takeoffCmd)

	takeoffCmd.Flags().StringVarP(&takeoffModel, "model", "m", "", "Path to building model JSON file [required]")
	takeoffCmd.MarkFlagRequired("model")

	takeoffCmd.Flags().StringVarP(&takeoffResults, "results", "r", "", "EnergyPlus SQLite results or JSON result entries")
	takeoffCmd.Flags().StringVar(&takeoffDefaults, "defaults", "", "YAML file overriding engineering defaults")
	takeoffCmd.Flags().StringVar(&takeoffJSON, "json", "", "Write the takeoff as JSON to this file (- for stdout)")

	// Chart options
	takeoffCmd.Flags().BoolVar(&takeoffChart, "chart", false, "Show ASCII chart of effective R-values")
	takeoffCmd.Flags().StringVarP(&takeoffExportFile, "output", "o", "", "Export R-value chart to file (png, svg, pdf)")
}

func runTakeoff(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(takeoffResults, takeoffDefaults)
	if err != nil {
		return err
	}
	defer eng.close()

	building, err := model.LoadFromFile(takeoffModel)
	if err != nil {
		return xerrors.New("loading model", err)
	}

	t := eng.assembler.Run(building)
	ordered := t.Ordered()

	if takeoffJSON != "" {
		if err := writeJSON(takeoffJSON, t); err != nil {
			return err
		}
		if takeoffJSON == "-" {
			return nil
		}
	}

	printTakeoff(building, t, ordered)

	if takeoffChart && len(ordered) > 0 {
		fmt.Println("R-VALUE CHART:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.DrawRValueChart(ordered))
		fmt.Println()
		for i, c := range ordered {
			fmt.Printf("  %d = %s\n", i, c.Name)
		}
		fmt.Println()
	}

	if takeoffExportFile != "" {
		if err := diagram.ExportRValueChart(ordered, takeoffExportFile); err != nil {
			return xerrors.New("exporting chart", err)
		}
		fmt.Printf("  Chart exported to: %s\n\n", diagram.OutputPath(takeoffExportFile))
	}
	return nil
}

func printTakeoff(b *model.Building, t assemble.Takeoff, ordered []lca.ClassifiedAssembly) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ASSEMBLY TAKEOFF FOR LIFE-CYCLE ASSESSMENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if b.Name != "" {
		fmt.Printf("  Building: %s\n", b.Name)
	}
	fmt.Printf("  Surfaces: %d\n", len(b.Surfaces))
	fmt.Println()

	fmt.Println("ASSEMBLIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tKind\tSystem\tArea (ft²)\tCI\tR-value\n")
	fmt.Fprintf(w, "  ────\t────\t──────\t──────────\t──\t───────\n")
	for _, c := range ordered {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.1f\t%d\t%.1f\n",
			c.Name, c.Kind, c.System, c.Geometry.Area, len(c.Insulation), c.TotalRValue())
	}
	w.Flush()
	fmt.Println()

	openings := lo.FlatMap(ordered, func(c lca.ClassifiedAssembly, _ int) []lca.ClassifiedSubsurface {
		return c.Subsurfaces
	})
	if len(openings) > 0 {
		fmt.Println("OPENINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tType\tFrame\tGlazing\tArea (ft²)\tU-factor\tSHGC\n")
		fmt.Fprintf(w, "  ────\t────\t─────\t───────\t──────────\t────────\t────\n")
		for _, s := range openings {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.1f\t%.3f\t%.3f\n",
				s.Name, s.Type, s.FrameType, s.GlassLayers, s.Area, s.UFactor, s.SHGC)
		}
		w.Flush()
		fmt.Println()
	}

	if len(t.Spaces) > 0 {
		fmt.Println("SPACES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Space\tAssemblies\tArea (ft²)\n")
		fmt.Fprintf(w, "  ─────\t──────────\t──────────\n")
		for _, s := range t.Spaces {
			fmt.Fprintf(w, "  %s\t%d\t%.1f\n", s.Space, len(s.Assemblies), s.TotalArea)
		}
		w.Flush()
		fmt.Println()
	}

	if len(t.Diagnostics) > 0 {
		fmt.Println("SKIPPED:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, d := range t.Diagnostics {
			fmt.Fprintf(w, "  ⚠ %s\t%s\t%s\n", d.Assembly, d.Kind, d.Reason)
		}
		w.Flush()
		fmt.Println()
	}

	var lines []string
	for _, kind := range assemble.Kinds {
		ofKind := lo.Filter(ordered, func(c lca.ClassifiedAssembly, _ int) bool { return c.Kind == kind })
		if len(ofKind) == 0 {
			continue
		}
		area := lo.SumBy(ofKind, func(c lca.ClassifiedAssembly) float64 { return c.Geometry.Area })
		lines = append(lines, fmt.Sprintf("%-16s %3d  %10.1f ft²", kind, len(ofKind), area))
	}
	lines = append(lines, fmt.Sprintf("%-16s %3d", "SKIPPED", len(t.Diagnostics)))
	fmt.Print(diagram.DrawSummaryBox("TAKEOFF SUMMARY", lines))
	fmt.Println()
}

// writeJSON writes v indented to path, or to stdout for "-".
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return xerrors.New("encoding JSON", err)
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return xerrors.New("writing JSON", err)
	}
	fmt.Printf("  Takeoff written to: %s\n", path)
	return nil
}
