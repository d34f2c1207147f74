package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/units"
)

// Layer roles in a stack diagram
const (
	RoleStructure  = "structure"
	RoleInsulation = "insulation"
	RoleOther      = ""
)

// LayerData is one layer of a stack diagram.
type LayerData struct {
	Label     string
	Thickness float64 // in., 0 when unknown
	Role      string
	Side      lca.Side
	RValue    *float64
	Material  string
}

// StackDiagramData holds data for drawing an assembly's layer stack,
// exterior first.
type StackDiagramData struct {
	Assembly        string
	Kind            lca.Kind
	System          lca.System
	StructuralIndex int
	Layers          []LayerData
	TotalRValue     float64
}

// NewStackDiagramData combines a layer stack with its classification.
func NewStackDiagramData(stack model.Stack, c lca.ClassifiedAssembly) StackDiagramData {
	data := StackDiagramData{
		Assembly:        c.Name,
		Kind:            c.Kind,
		System:          c.System,
		StructuralIndex: c.StructuralIndex,
		TotalRValue:     c.TotalRValue(),
	}

	segments := make(map[int]lca.InsulationSegment, len(c.Insulation))
	for _, seg := range c.Insulation {
		segments[seg.Layer] = seg
	}

	for i, layer := range stack.Layers() {
		ld := LayerData{Label: layerLabel(layer)}
		if layer.Thickness != nil {
			ld.Thickness = units.MustConvert(*layer.Thickness, units.Meter, units.Inch)
		}
		if side, ok := stack.Side(i, c.StructuralIndex); ok {
			ld.Side = side
		}
		switch seg, ok := segments[i]; {
		case i == c.StructuralIndex:
			ld.Role = RoleStructure
			ld.Material = string(c.System)
		case ok:
			ld.Role = RoleInsulation
			ld.RValue = seg.RValue
			ld.Material = string(seg.Material)
			if seg.Thickness != nil {
				ld.Thickness = *seg.Thickness
			}
		}
		data.Layers = append(data.Layers, ld)
	}
	return data
}

func layerLabel(l model.Layer) string {
	for _, s := range []string{l.Identifier, l.Name, l.Category} {
		if s != "" {
			return s
		}
	}
	return "(untagged)"
}

// DrawASCIIStackDiagram draws the layer stack from exterior (top) to
// interior (bottom). Row heights follow layer thickness.
func DrawASCIIStackDiagram(data StackDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	maxThickness := 0.0
	for _, l := range data.Layers {
		maxThickness = math.Max(maxThickness, l.Thickness)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  LAYER STACK: %s (%s, %s)\n", data.Assembly, data.Kind, data.System))
	sb.WriteString("  ───────────\n")
	sb.WriteString("  EXTERIOR\n")

	for i, l := range data.Layers {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
		} else {
			sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", widthChars)))
		}

		var fill string
		switch l.Role {
		case RoleStructure:
			fill = strings.Repeat("█", widthChars)
		case RoleInsulation:
			fill = strings.Repeat("░", widthChars)
		default:
			fill = strings.Repeat(" ", widthChars)
		}

		rows := rowsFor(l.Thickness, maxThickness)
		for row := 0; row < rows; row++ {
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if row == 0 {
				sb.WriteString(fmt.Sprintf(" %d  %s", i, l.Label))
				if l.Thickness > 0 {
					sb.WriteString(fmt.Sprintf(" [%.3g in.]", l.Thickness))
				}
				switch l.Role {
				case RoleStructure:
					sb.WriteString(" ◄─ structural")
				case RoleInsulation:
					sb.WriteString(fmt.Sprintf(" ◄─ %s", l.Material))
					if l.RValue != nil {
						sb.WriteString(fmt.Sprintf(" R-%.1f", *l.RValue))
					}
					sb.WriteString(fmt.Sprintf(" (%s)", strings.ToLower(string(l.Side))))
				}
			}
			sb.WriteString("\n")
		}
	}
	if len(data.Layers) > 0 {
		sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	}
	sb.WriteString("  INTERIOR\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Structural layer\n")
	sb.WriteString("  ░░░ = Continuous insulation\n")
	sb.WriteString(fmt.Sprintf("  Effective R-value = %.1f\n", data.TotalRValue))

	return sb.String()
}

// rowsFor scales a thickness to between 1 and 4 rows.
func rowsFor(thickness, maxThickness float64) int {
	if thickness <= 0 || maxThickness <= 0 {
		return 1
	}
	return max(1, int(math.Round(4*thickness/maxThickness)))
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, which misaligns ft².
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-len([]rune(s))))
}
