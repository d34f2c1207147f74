// Package assemble runs the classification of every assembly of a model,
// per assembly kind, and aggregates the results per space.
package assemble

import (
	"log/slog"
	"math"

	"github.com/alexiusacademia/golca/internal/classify"
	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/subsurface"
	"github.com/alexiusacademia/golca/internal/units"
)

// Kinds lists the assembly kinds in reporting order.
var Kinds = []lca.Kind{
	lca.KindWall,
	lca.KindRoof,
	lca.KindFloor,
	lca.KindFoundationSlab,
	lca.KindFoundationWall,
}

// Diagnostic records an assembly that was left out of a takeoff.
type Diagnostic struct {
	Assembly string   `json:"assembly"`
	Kind     lca.Kind `json:"kind"`
	Reason   string   `json:"reason"`
}

// Assembler produces classified assemblies from a model.
type Assembler struct {
	classifier *classify.Classifier
	openings   *subsurface.Characterizer
	span       geometry.SpanFunc
	logger     *slog.Logger
}

// New returns an Assembler. A nil span uses geometry.VertexSpan and a nil
// logger the default logger.
func New(c *classify.Classifier, openings *subsurface.Characterizer, span geometry.SpanFunc, logger *slog.Logger) *Assembler {
	if span == nil {
		span = geometry.VertexSpan
	}
	if logger == nil {
		logger = slog.Default()
	}
	if openings == nil {
		openings = subsurface.New(nil, subsurface.DefaultColumns)
	}
	return &Assembler{classifier: c, openings: openings, span: span, logger: logger}
}

// Walls classifies the above-grade walls of m.
func (a *Assembler) Walls(m model.Model) ([]lca.ClassifiedAssembly, []Diagnostic) {
	return a.Kind(m, lca.KindWall)
}

// Roofs classifies the roofs of m.
func (a *Assembler) Roofs(m model.Model) ([]lca.ClassifiedAssembly, []Diagnostic) {
	return a.Kind(m, lca.KindRoof)
}

// Floors classifies the above-grade floors of m.
func (a *Assembler) Floors(m model.Model) ([]lca.ClassifiedAssembly, []Diagnostic) {
	return a.Kind(m, lca.KindFloor)
}

// FoundationSlabs classifies the ground-contact floors of m.
func (a *Assembler) FoundationSlabs(m model.Model) ([]lca.ClassifiedAssembly, []Diagnostic) {
	return a.Kind(m, lca.KindFoundationSlab)
}

// FoundationWalls classifies the ground-contact walls of m.
func (a *Assembler) FoundationWalls(m model.Model) ([]lca.ClassifiedAssembly, []Diagnostic) {
	return a.Kind(m, lca.KindFoundationWall)
}

// Kind classifies every assembly of one kind. Assemblies that cannot be
// classified are skipped and reported as diagnostics.
func (a *Assembler) Kind(m model.Model, kind lca.Kind) ([]lca.ClassifiedAssembly, []Diagnostic) {
	var out []lca.ClassifiedAssembly
	var diags []Diagnostic
	for _, as := range m.Assemblies(kind) {
		c, err := a.Assemble(as, kind)
		if err != nil {
			a.logger.Warn("skipping assembly",
				slog.String("assembly", as.Name),
				slog.String("kind", string(kind)),
				slog.Any("error", err))
			diags = append(diags, Diagnostic{Assembly: as.Name, Kind: kind, Reason: err.Error()})
			continue
		}
		a.logger.Debug("classified assembly",
			slog.String("assembly", c.Name),
			slog.String("kind", string(kind)),
			slog.String("system", string(c.System)))
		out = append(out, c)
	}
	return out, diags
}

// Assemble classifies one assembly and adds its geometry and openings.
func (a *Assembler) Assemble(as model.Assembly, kind lca.Kind) (lca.ClassifiedAssembly, error) {
	c, err := a.classifier.Classify(as, kind)
	if err != nil {
		return lca.ClassifiedAssembly{}, err
	}

	for _, s := range as.Subsurfaces {
		c.Subsurfaces = append(c.Subsurfaces, a.openings.Characterize(s))
	}
	c.Geometry = a.summarize(as, kind, c.Subsurfaces)

	if c.System == lca.SystemCLT && c.Panel != nil {
		c.Panel.Span = c.Geometry.Span
	}
	return c, nil
}

// summarize derives the takeoff quantities of an assembly in IP units.
// Derived areas are net of the openings.
func (a *Assembler) summarize(as model.Assembly, kind lca.Kind, openings []lca.ClassifiedSubsurface) lca.GeometrySummary {
	var g lca.GeometrySummary

	if as.Area != nil {
		g.Area = units.MustConvert(*as.Area, units.SquareMeter, units.SquareFoot)
	} else {
		g.Area = units.MustConvert(geometry.Area(as.Vertices), units.SquareMeter, units.SquareFoot)
		for _, o := range openings {
			g.Area -= o.Area
		}
		g.Area = math.Max(g.Area, 0)
	}

	g.Height = units.MustConvert(geometry.Height(as.Vertices), units.Meter, units.Foot)
	if span, ok := a.span(as.Vertices); ok {
		g.Span = lca.Float(units.MustConvert(span, units.Meter, units.Foot))
	}

	tilt := geometry.Tilt(as.Vertices)
	if as.Tilt != nil {
		tilt = *as.Tilt
	}
	g.TiltDegrees = geometry.AngleDegrees(tilt)
	if kind == lca.KindRoof {
		g.Pitch = lca.Float(geometry.Pitch(tilt))
	}
	return g
}
