package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/thermal"
)

var tagCmd = &cobra.Command{
	Use:   "tag STRING",
	Short: "Show what the tag parser reads from a descriptive string",
	Long: `Run every tag extractor on a construction or material identifier
and print the values found. Useful when authoring model tags.

Examples:
  golca tag "SIPS - R55 - OSB Spline - 10 1/4 in."
  golca tag "Wood Framed - 2x6 - 24 in. OC - R21"`,
	Args: cobra.ExactArgs(1),
	Run:  runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) {
	s := args[0]

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TAG PARSE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Input: %q\n", s)
	fmt.Printf("  Segments: %s\n", strings.Join(tags.Segments(s), " | "))
	fmt.Println()

	fmt.Println("EXTRACTED VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	thickness, hasThickness := tags.Thickness(s)
	rValue, hasR := tags.RValue(s)
	fmt.Fprintf(w, "  Thickness:\t%s\n", found(thickness, hasThickness, "%.3f in."))
	fmt.Fprintf(w, "  R-value:\t%s\n", found(rValue, hasR, "R-%.1f"))
	fmt.Fprintf(w, "  Spacing:\t%s\n", valueOf(tags.Spacing(s))("%.1f in. o.c."))
	fmt.Fprintf(w, "  Live load:\t%s\n", valueOf(tags.LiveLoad(s))("%.0f psf"))
	fmt.Fprintf(w, "  Density:\t%s\n", valueOf(tags.Density(s))("%.1f lb/ft³"))
	if plies, ok := tags.Plies(s); ok {
		fmt.Fprintf(w, "  Plies:\t%d\n", plies)
	} else {
		fmt.Fprintf(w, "  Plies:\t—\n")
	}
	fmt.Fprintf(w, "  Nominal size:\t%s\n", tags.NominalSize(s))
	w.Flush()
	fmt.Println()

	fmt.Println("VOCABULARY MATCHES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Insulation thickness:\t%s\n", valueOf(tags.InsulationThickness.Match(s))("%.3f in."))
	fmt.Fprintf(w, "  Mass thickness:\t%s\n", valueOf(tags.MassThickness.Match(s))("%.2f in."))
	fmt.Fprintf(w, "  Depth code:\t%s\n", valueOf(tags.DepthCode.Match(s))("%.2f in."))
	w.Flush()
	fmt.Println()

	if hasThickness && hasR {
		if rpi, ok := thermal.RPerInch(rValue, thickness); ok {
			fmt.Println("THERMAL:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  R per inch:\t%.2f\n", rpi)
			fmt.Fprintf(w, "  As rigid board:\t%s\n", thermal.RigidBands.Classify(rpi))
			fmt.Fprintf(w, "  As cavity fill:\t%s\n", thermal.CavityBands.Classify(rpi))
			w.Flush()
			fmt.Println()
		}
	}
}

func found(v float64, ok bool, format string) string {
	if !ok {
		return "—"
	}
	return fmt.Sprintf(format, v)
}

// valueOf lets an extractor's (value, ok) result be formatted inline.
func valueOf(v float64, ok bool) func(format string) string {
	return func(format string) string { return found(v, ok, format) }
}
