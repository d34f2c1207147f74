package classify

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/thermal"
)

// memberWidth is the dressed width in inches of dimension lumber and the
// flange of an equivalent metal section.
const memberWidth = 1.5

func (c *Classifier) framed(kind lca.Kind, layer model.Layer) structure {
	comp := model.Composite{}
	if layer.Composite != nil {
		comp = *layer.Composite
	}
	metal := tags.ContainsAny(layer.Category, "metal framed")

	spec := &lca.FramingSpec{
		Material: FramingMaterial(kind, metal),
		Size:     tags.NominalSize(comp.Size),
	}
	if spec.Size == lca.OtherSize {
		spec.Size = tags.NominalSize(layer.Identifier)
	}

	if spacing, ok := tags.Spacing(comp.Configuration); ok && spacing > 0 {
		spec.Spacing = lca.Float(spacing)
		spec.FramingFraction = lca.Float(memberWidth / spacing)
	}

	if depth, ok := tags.DepthCode.Match(comp.Depth); ok {
		spec.CavityThickness = lca.Float(depth)
	} else if depth, ok := tags.ActualDepth[spec.Size]; ok {
		spec.CavityThickness = lca.Float(depth)
	}

	if comp.CavityRValue != nil {
		spec.CavityRValue = *comp.CavityRValue
	}
	spec.CavityMaterial = c.cavityMaterial(spec.CavityRValue, spec.CavityThickness, layer.Identifier)

	return structure{framing: spec}
}

// cavityMaterial infers the insulation between framing members from its
// R-value, the cavity depth and keywords in the identifier. Without a
// keyword the cavity bands decide, and fiberglass batt is assumed when the
// depth is unknown.
func (c *Classifier) cavityMaterial(rValue float64, depth *float64, identifier string) lca.InsulationMaterial {
	if rValue <= 0 {
		return lca.InsulationNone
	}
	var rpi float64
	known := false
	if depth != nil {
		rpi, known = thermal.RPerInch(rValue, *depth)
	}
	if known && rpi < thermal.NoInsulation {
		return lca.InsulationNone
	}

	switch {
	case tags.ContainsAny(identifier, "cellulose"):
		return lca.LooseFillCellulose
	case tags.ContainsAny(identifier, "rockwool", "rock wool", "mineral wool"):
		return lca.BattRockwool
	case tags.ContainsAny(identifier, "spray", "foam", "spf"):
		if !known {
			return lca.UnknownInsulation
		}
		return thermal.SprayFoam(rpi, c.defaults.ClosedCellThreshold)
	case tags.ContainsAny(identifier, "fiberglass", "fibreglass", "glass fiber"):
		if tags.ContainsAny(identifier, "loose", "blown") {
			return lca.LooseFillFiberglass
		}
		return lca.BattFiberglass
	}
	if known {
		return c.defaults.CavityBands.Classify(rpi)
	}
	return lca.BattFiberglass
}
