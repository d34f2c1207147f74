// Package subsurface characterizes openings embedded in assemblies, such as
// windows and skylights.
package subsurface

import (
	"strings"

	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/results"
	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/units"
)

// Columns names where performance values are looked up.
type Columns struct {
	Table   string
	UFactor string
	SHGC    string
	VT      string
}

// DefaultColumns address the exterior fenestration table of an EnergyPlus
// envelope summary.
var DefaultColumns = Columns{
	Table:   "Exterior Fenestration",
	UFactor: "Glass U-Factor",
	SHGC:    "Glass SHGC",
	VT:      "Glass Visible Transmittance",
}

var frameTypes = tags.Vocabulary[lca.FrameType]{
	{Pattern: "thermal break", Value: lca.FrameAluminumThermalBreak},
	{Pattern: "thermally broken", Value: lca.FrameAluminumThermalBreak},
	{Pattern: "aluminum", Value: lca.FrameAluminum},
	{Pattern: "metal frame", Value: lca.FrameAluminum},
	{Pattern: "vinyl", Value: lca.FrameVinyl},
	{Pattern: "pvc", Value: lca.FrameVinyl},
	{Pattern: "fiberglass", Value: lca.FrameFiberglass},
	{Pattern: "wood", Value: lca.FrameWood},
}

var glassLayers = tags.Vocabulary[lca.GlassLayers]{
	{Pattern: "triple", Value: lca.TriplePane},
	{Pattern: "3 pane", Value: lca.TriplePane},
	{Pattern: "3-pane", Value: lca.TriplePane},
	{Pattern: "double", Value: lca.DoublePane},
	{Pattern: "dbl", Value: lca.DoublePane},
	{Pattern: "2 pane", Value: lca.DoublePane},
	{Pattern: "2-pane", Value: lca.DoublePane},
	{Pattern: "insulated glass", Value: lca.DoublePane},
	{Pattern: "single", Value: lca.SinglePane},
	{Pattern: "sgl", Value: lca.SinglePane},
	{Pattern: "1 pane", Value: lca.SinglePane},
	{Pattern: "1-pane", Value: lca.SinglePane},
	{Pattern: "monolithic", Value: lca.SinglePane},
}

var gasFills = tags.Vocabulary[lca.GasFill]{
	{Pattern: "krypton", Value: lca.GasKrypton},
	{Pattern: "argon", Value: lca.GasArgon},
	{Pattern: "air", Value: lca.GasAir},
}

// Characterizer classifies openings and reads their simulated
// performance from a results store.
type Characterizer struct {
	store   results.Store
	columns Columns
}

// New returns a Characterizer. A nil store yields zero performance values.
func New(store results.Store, columns Columns) *Characterizer {
	if store == nil {
		store = results.NewMapStore()
	}
	return &Characterizer{store: store, columns: columns}
}

// Characterize describes one opening. Missing results default to zero.
func (c *Characterizer) Characterize(s model.Subsurface) lca.ClassifiedSubsurface {
	desc := strings.Join(append([]string{s.Construction}, s.Tags...), " ")
	out := lca.ClassifiedSubsurface{
		Name:        s.Name,
		Type:        s.Type,
		FrameType:   frameTypes.MatchOr(desc, lca.NoneFrameType),
		GlassLayers: glassLayers.MatchOr(desc, lca.NoneGlassLayers),
		GlassType:   glassType(desc),
		GasFill:     gasFills.MatchOr(desc, lca.NoneGasFill),
		Area:        units.MustConvert(geometry.Area(s.Vertices), units.SquareMeter, units.SquareFoot),
		Height:      units.MustConvert(geometry.Height(s.Vertices), units.Meter, units.Foot),
	}
	out.UFactor = c.lookup(s.Name, c.columns.UFactor)
	out.SHGC = c.lookup(s.Name, c.columns.SHGC)
	out.VT = c.lookup(s.Name, c.columns.VT)
	return out
}

func (c *Characterizer) lookup(name, column string) float64 {
	v, _ := c.store.Lookup(name, column, c.columns.Table)
	return v
}

// glassType combines the tint and low-emissivity keywords of an opening.
func glassType(desc string) lca.GlassType {
	lowE := tags.ContainsAny(desc, "low-e", "low e", "lowe")
	tinted := tags.ContainsAny(desc, "tint", "bronze", "grey", "gray", "green", "blue")
	switch {
	case lowE && tinted:
		return lca.GlassLowETinted
	case lowE:
		return lca.GlassLowEClear
	case tags.ContainsAny(desc, "reflective"):
		return lca.GlassReflective
	case tinted:
		return lca.GlassTinted
	case tags.ContainsAny(desc, "clear"):
		return lca.GlassClear
	}
	return lca.NoneGlassType
}
