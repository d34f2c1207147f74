package classify

import (
	"strings"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/thermal"
	"github.com/alexiusacademia/golca/internal/units"
)

// boardMaterials resolves board insulation by identifier keyword.
var boardMaterials = tags.Vocabulary[lca.InsulationMaterial]{
	{Pattern: "polyiso", Value: lca.RigidPolyisocyanurate},
	{Pattern: "xps", Value: lca.RigidXPS},
	{Pattern: "extruded", Value: lca.RigidXPS},
	{Pattern: "eps", Value: lca.RigidEPS},
	{Pattern: "expanded", Value: lca.RigidEPS},
}

// isInsulation reports whether a layer is opaque insulation.
func isInsulation(layer model.Layer) bool {
	return !layer.Fenestration && tags.ContainsAny(layer.Category, "insulation")
}

// untagged reports whether a layer carries no descriptive tags at all, so
// only its physical properties can classify it.
func untagged(layer model.Layer) bool {
	return !layer.Fenestration && layer.Composite == nil &&
		strings.TrimSpace(layer.Category) == "" && strings.TrimSpace(layer.Identifier) == ""
}

// decompose returns one continuous segment for each insulation layer
// outside the structural layer, in stack order.
func (c *Classifier) decompose(stack model.Stack, structural int) []lca.InsulationSegment {
	segments := []lca.InsulationSegment{}
	for i := 0; i < stack.Len(); i++ {
		side, ok := stack.Side(i, structural)
		if !ok {
			continue
		}
		layer := stack.Layer(i)
		var seg lca.InsulationSegment
		switch {
		case isInsulation(layer):
			seg, ok = c.segment(layer)
		case untagged(layer):
			seg, ok = c.physicalSegment(layer)
		default:
			ok = false
		}
		if !ok {
			continue
		}
		seg.Layer = i
		seg.Side = side
		segments = append(segments, seg)
	}
	return segments
}

// segment infers thickness, R-value and material of one insulation layer.
// Each value falls back from identifier tags to category rules to physical
// properties; a layer with negligible resistance yields no segment.
func (c *Classifier) segment(layer model.Layer) (lca.InsulationSegment, bool) {
	seg := lca.InsulationSegment{Installation: lca.Continuous}
	id := layer.Identifier
	board := tags.ContainsAny(layer.Category, "board")

	if t, ok := tags.InsulationThickness.Match(id); ok {
		seg.Thickness = lca.Float(t)
	} else if layer.Thickness != nil && *layer.Thickness > 0 {
		seg.Thickness = lca.Float(units.MustConvert(*layer.Thickness, units.Meter, units.Inch))
	}

	seg.RValue = c.rValue(layer, seg.Thickness)

	if board && tags.ContainsAny(id, "compliance") && seg.RValue != nil {
		seg.Thickness = lca.Float(*seg.RValue / c.defaults.ComplianceRPerInch)
	}

	var rpi *float64
	if seg.RValue != nil && seg.Thickness != nil {
		if v, ok := thermal.RPerInch(*seg.RValue, *seg.Thickness); ok {
			rpi = &v
		}
	}
	if rpi != nil && *rpi < thermal.NoInsulation {
		return seg, false
	}

	if board {
		seg.Material = c.boardMaterial(id, rpi)
	} else {
		seg.Material = c.looseMaterial(layer, rpi)
	}
	return seg, true
}

// physicalSegment classifies an untagged layer from its thickness and
// conductivity alone, using the rigid insulation bands.
func (c *Classifier) physicalSegment(layer model.Layer) (lca.InsulationSegment, bool) {
	if layer.Thickness == nil || layer.Conductivity == nil {
		return lca.InsulationSegment{}, false
	}
	r, ok := thermal.RFromConductivity(*layer.Thickness, *layer.Conductivity)
	if !ok {
		return lca.InsulationSegment{}, false
	}
	thickness := units.MustConvert(*layer.Thickness, units.Meter, units.Inch)
	rpi, ok := thermal.RPerInch(r, thickness)
	if !ok || rpi < thermal.NoInsulation {
		return lca.InsulationSegment{}, false
	}
	return lca.InsulationSegment{
		Material:     c.defaults.RigidBands.Classify(rpi),
		Thickness:    lca.Float(thickness),
		RValue:       lca.Float(r),
		Installation: lca.Continuous,
	}, true
}

// rValue infers an R-value from an "R<number>" tag, spray constants or
// the layer's conductivity, in that order.
func (c *Classifier) rValue(layer model.Layer, thickness *float64) *float64 {
	if r, ok := tags.RValue(layer.Identifier); ok {
		return lca.Float(r)
	}
	if tags.ContainsAny(layer.Category, "spray") && thickness != nil {
		density, hasDensity := tags.Density(layer.Identifier)
		rpi := c.defaults.Spray.RPerInch(tags.ContainsAny(layer.Identifier, "urethane"), density, hasDensity)
		return lca.Float(rpi * *thickness)
	}
	if layer.Thickness != nil && layer.Conductivity != nil {
		if r, ok := thermal.RFromConductivity(*layer.Thickness, *layer.Conductivity); ok {
			return lca.Float(r)
		}
	}
	return nil
}

func (c *Classifier) boardMaterial(id string, rpi *float64) lca.InsulationMaterial {
	if m, ok := boardMaterials.Match(id); ok {
		return m
	}
	if rpi != nil {
		return c.defaults.RigidBands.Classify(*rpi)
	}
	return lca.RigidUnknown
}

func (c *Classifier) looseMaterial(layer model.Layer, rpi *float64) lca.InsulationMaterial {
	id := layer.Identifier
	switch {
	case tags.ContainsAny(id, "cellulose", "cellulosic"):
		return lca.LooseFillCellulose
	case tags.ContainsAny(id, "fiberglass", "fibreglass", "glass fiber"):
		if tags.ContainsAny(id, "loose", "blown", "spray") {
			return lca.LooseFillFiberglass
		}
		return lca.BattFiberglass
	case tags.ContainsAny(id, "spray", "foam", "urethane") || tags.ContainsAny(layer.Category, "spray"):
		if density, ok := tags.Density(id); ok {
			if density >= thermal.HighDensitySpray {
				return lca.SprayFoamClosedCell
			}
			return lca.SprayFoamOpenCell
		}
		if rpi != nil {
			return thermal.SprayFoam(*rpi, c.defaults.ClosedCellThreshold)
		}
		return lca.SprayFoamOpenCell
	case tags.ContainsAny(id, "rockwool", "rock wool", "mineral wool"):
		return lca.BattRockwool
	case tags.ContainsAny(id, "batt"):
		return lca.BattFiberglass
	}
	if rpi != nil {
		return c.defaults.RigidBands.Classify(*rpi)
	}
	return lca.UnknownInsulation
}
