package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golca/internal/diagram"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
)

var (
	inspectModel       string
	inspectAssembly    string
	inspectResults     string
	inspectDefaults    string
	inspectJSON        bool
	inspectShowDiagram bool
	inspectExportFile  string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Classify a single assembly and show its layer stack",
	Long: `Classify one assembly of a building model and print its record:
construction system, structural layer, insulation segments, finishes
and geometry.

Examples:
  golca inspect --model building.json --assembly "South Wall"
  golca inspect -m building.json -a Roof --diagram -o roof.svg`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectModel, "model", "m", "", "Path to building model JSON file [required]")
	inspectCmd.Flags().StringVarP(&inspectAssembly, "assembly", "a", "", "Assembly name [required]")
	inspectCmd.MarkFlagRequired("model")
	inspectCmd.MarkFlagRequired("assembly")

	inspectCmd.Flags().StringVarP(&inspectResults, "results", "r", "", "EnergyPlus SQLite results or JSON result entries")
	inspectCmd.Flags().StringVar(&inspectDefaults, "defaults", "", "YAML file overriding engineering defaults")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the classified record as JSON")

	// Diagram options
	inspectCmd.Flags().BoolVar(&inspectShowDiagram, "diagram", false, "Show ASCII layer stack diagram")
	inspectCmd.Flags().StringVarP(&inspectExportFile, "output", "o", "", "Export layer stack diagram to file (png, svg, pdf)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(inspectResults, inspectDefaults)
	if err != nil {
		return err
	}
	defer eng.close()

	building, err := model.LoadFromFile(inspectModel)
	if err != nil {
		return xerrors.New("loading model", err)
	}

	as, ok := building.Assembly(inspectAssembly)
	if !ok {
		return fmt.Errorf("assembly %q not found in %s", inspectAssembly, inspectModel)
	}
	kind, ok := as.Kind()
	if !ok {
		return fmt.Errorf("assembly %q is a %s surface with %s boundary, which is not part of a takeoff",
			as.Name, as.Type, as.Boundary)
	}

	c, err := eng.assembler.Assemble(as, kind)
	if err != nil {
		return err
	}

	if inspectJSON {
		return writeJSON("-", c)
	}

	printAssembly(c)

	if inspectShowDiagram || inspectExportFile != "" {
		stack, err := as.Stack()
		if err != nil {
			return err
		}
		data := diagram.NewStackDiagramData(stack, c)

		if inspectShowDiagram {
			fmt.Println(diagram.DrawASCIIStackDiagram(data))
		}
		if inspectExportFile != "" {
			if err := diagram.ExportStackDiagram(data, inspectExportFile); err != nil {
				return xerrors.New("exporting diagram", err)
			}
			fmt.Printf("  Diagram exported to: %s\n\n", diagram.OutputPath(inspectExportFile))
		}
	}
	return nil
}

func printAssembly(c lca.ClassifiedAssembly) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s: %s\n", c.Kind, c.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if c.Space != "" {
		fmt.Printf("  Space: %s\n", c.Space)
	}
	fmt.Printf("  System: %s\n", c.System)
	fmt.Printf("  Structural layer: %d\n", c.StructuralIndex)
	fmt.Println()

	fmt.Println("STRUCTURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch {
	case c.Framing != nil:
		f := c.Framing
		fmt.Fprintf(w, "  Framing:\t%s\n", f.Material)
		fmt.Fprintf(w, "  Size:\t%s\n", f.Size)
		fmt.Fprintf(w, "  Spacing:\t%s in. o.c.\n", fmtFloat(f.Spacing, "%.1f"))
		fmt.Fprintf(w, "  Framing fraction:\t%s\n", fmtFloat(f.FramingFraction, "%.3f"))
		fmt.Fprintf(w, "  Cavity depth:\t%s in.\n", fmtFloat(f.CavityThickness, "%.2f"))
		fmt.Fprintf(w, "  Cavity insulation:\t%s R-%.1f\n", f.CavityMaterial, f.CavityRValue)
	case c.Mass != nil:
		m := c.Mass
		fmt.Fprintf(w, "  Material:\t%s\n", m.Material)
		fmt.Fprintf(w, "  Thickness:\t%s in.\n", fmtFloat(m.Thickness, "%.2f"))
		fmt.Fprintf(w, "  f'c:\t%s\n", m.CompressiveStrength)
		fmt.Fprintf(w, "  Reinforcement:\t%s\n", m.Reinforcement)
		if m.InsulationMaterial != "" && m.InsulationMaterial != lca.InsulationNone {
			fmt.Fprintf(w, "  Integral insulation:\t%s\n", m.InsulationMaterial)
			fmt.Fprintf(w, "  Insulation thickness:\t%s in.\n", fmtFloat(m.InsulationThickness, "%.2f"))
			fmt.Fprintf(w, "  Insulation R-value:\t%s\n", fmtFloat(m.CavityRValue, "%.1f"))
		}
	case c.Panel != nil:
		p := c.Panel
		fmt.Fprintf(w, "  Panel thickness:\t%s in.\n", fmtFloat(p.PanelThickness, "%.2f"))
		fmt.Fprintf(w, "  Core:\t%s\n", p.CoreMaterial)
		fmt.Fprintf(w, "  Core thickness:\t%s in.\n", fmtFloat(p.CoreThickness, "%.3f"))
		fmt.Fprintf(w, "  Core R-value:\t%s\n", fmtFloat(p.CoreRValue, "%.1f"))
		if c.System == lca.SystemCLT {
			fmt.Fprintf(w, "  Live load:\t%s psf\n", fmtFloat(p.LiveLoad, "%.0f"))
			fmt.Fprintf(w, "  Plies:\t%s\n", fmtInt(p.Plies))
			fmt.Fprintf(w, "  Span:\t%s ft\n", fmtFloat(p.Span, "%.2f"))
		}
	}
	w.Flush()
	fmt.Println()

	if len(c.Insulation) > 0 {
		fmt.Println("CONTINUOUS INSULATION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Layer\tMaterial\tThickness (in.)\tR-value\tSide\n")
		fmt.Fprintf(w, "  ─────\t────────\t───────────────\t───────\t────\n")
		for _, seg := range c.Insulation {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", seg.Layer, seg.Material,
				fmtFloat(seg.Thickness, "%.2f"), fmtFloat(seg.RValue, "%.1f"), seg.Side)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("FINISHES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Decking:\t%s\n", c.Decking)
	fmt.Fprintf(w, "  Wall finish:\t%s", c.WallFinish)
	if c.WallFinishThickness != nil {
		fmt.Fprintf(w, " (%.3f in.)", *c.WallFinishThickness)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Floor finish:\t%s\n", c.FloorFinish)
	w.Flush()
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	g := c.Geometry
	fmt.Fprintf(w, "  Net area:\t%.2f ft²\n", g.Area)
	fmt.Fprintf(w, "  Span:\t%s ft\n", fmtFloat(g.Span, "%.2f"))
	fmt.Fprintf(w, "  Height:\t%.2f ft\n", g.Height)
	fmt.Fprintf(w, "  Tilt:\t%.1f°\n", g.TiltDegrees)
	if c.Kind == lca.KindRoof {
		fmt.Fprintf(w, "  Pitch:\t%s:12\n", fmtFloat(g.Pitch, "%.2f"))
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("EFFECTIVE R-VALUE", []string{
		fmt.Sprintf("R-%.1f h·ft²·°F/Btu", c.TotalRValue()),
	}))
	fmt.Println()
}

// fmtFloat formats an optional value, printing a dash when absent.
func fmtFloat(v *float64, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v)
}
