package diagram

import (
	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/golca/internal/lca"
)

// DrawRValueChart plots the effective R-value of each assembly, in the
// order given, as an ASCII line chart.
func DrawRValueChart(assemblies []lca.ClassifiedAssembly) string {
	if len(assemblies) == 0 {
		return ""
	}
	series := make([]float64, len(assemblies))
	for i := range assemblies {
		series[i] = assemblies[i].TotalRValue()
	}
	if len(series) == 1 {
		series = append(series, series[0])
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Precision(1),
		asciigraph.LowerBound(0),
		asciigraph.Caption("Effective R-value by assembly"),
	)
}
