package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/mdobak/go-xerrors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/golca/internal/lca"
)

// unknownThickness is the drawn depth of layers without a thickness, in.
const unknownThickness = 0.5

var (
	structureColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	insulationColor = color.RGBA{R: 255, G: 182, B: 193, A: 255}
	otherColor      = color.Gray{Y: 210}
	cavityColor     = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

// ExportStackDiagram exports an assembly cross section to an image file.
// Layers are drawn top to bottom from exterior to interior, each as deep
// as its thickness.
func ExportStackDiagram(data StackDiagramData, filename string) error {
	if len(data.Layers) == 0 {
		return xerrors.New("no layers to draw")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", data.Assembly, data.System)
	p.X.Label.Text = "Width"
	p.Y.Label.Text = "Depth from exterior (in.)"
	p.X.Min, p.X.Max = 0, 3

	top := 0.0
	for i, l := range data.Layers {
		depth := l.Thickness
		if depth <= 0 {
			depth = unknownThickness
		}
		bottom := top - depth

		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: top},
			{X: 1, Y: top},
			{X: 1, Y: bottom},
			{X: 0, Y: bottom},
		})
		if err != nil {
			return err
		}
		switch l.Role {
		case RoleStructure:
			rect.Color = structureColor
		case RoleInsulation:
			rect.Color = insulationColor
		default:
			rect.Color = otherColor
		}
		rect.LineStyle.Width = vg.Points(1)
		rect.LineStyle.Color = color.Black
		p.Add(rect)

		text := fmt.Sprintf("%d %s", i, l.Label)
		if l.RValue != nil {
			text += fmt.Sprintf(" R-%.1f", *l.RValue)
		}
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: 1.1, Y: (top + bottom) / 2}},
			Labels: []string{text},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)

		top = bottom
	}

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportRValueChart exports a bar chart of assembly R-values with the
// cavity or core share stacked under continuous insulation.
func ExportRValueChart(assemblies []lca.ClassifiedAssembly, filename string) error {
	if len(assemblies) == 0 {
		return xerrors.New("no assemblies to chart")
	}

	cavity := make(plotter.Values, len(assemblies))
	continuous := make(plotter.Values, len(assemblies))
	names := make([]string, len(assemblies))
	for i := range assemblies {
		c := &assemblies[i]
		names[i] = c.Name
		total := c.TotalRValue()
		for _, seg := range c.Insulation {
			if seg.RValue != nil {
				continuous[i] += *seg.RValue
			}
		}
		cavity[i] = total - continuous[i]
	}

	p := plot.New()
	p.Title.Text = "Effective R-value by assembly"
	p.Y.Label.Text = "R-value (h·ft²·°F/Btu)"

	barWidth := vg.Points(20)
	cavityBars, err := plotter.NewBarChart(cavity, barWidth)
	if err != nil {
		return err
	}
	cavityBars.Color = cavityColor
	cavityBars.LineStyle.Width = vg.Length(0)

	continuousBars, err := plotter.NewBarChart(continuous, barWidth)
	if err != nil {
		return err
	}
	continuousBars.Color = insulationColor
	continuousBars.LineStyle.Width = vg.Length(0)
	continuousBars.StackOn(cavityBars)

	p.Add(cavityBars, continuousBars)
	p.Legend.Add("Cavity / core", cavityBars)
	p.Legend.Add("Continuous", continuousBars)
	p.Legend.Top = true
	p.NominalX(names...)

	width := vg.Length(max(8, len(assemblies))) * vg.Inch
	return save(p, width, 6*vg.Inch, filename)
}

// save writes the plot in the format named by the extension, defaulting
// to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return xerrors.New("creating output directory", err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// OutputPath reports the file save writes for filename.
func OutputPath(filename string) string {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return filename
	default:
		return filename + ".png"
	}
}
