package classify

import (
	"strings"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/thermal"
)

type integralInsulation struct {
	material lca.InsulationMaterial
	rPerInch float64
}

// integralInsulations maps core keywords of ICF and insulated panels to a
// material and its R-per-inch.
var integralInsulations = tags.Vocabulary[integralInsulation]{
	{Pattern: "polyiso", Value: integralInsulation{lca.RigidPolyisocyanurate, thermal.PolyisoRPerInch}},
	{Pattern: "polyurethane", Value: integralInsulation{lca.RigidPolyurethane, thermal.PolyurethaneRPerInch}},
	{Pattern: "urethane", Value: integralInsulation{lca.RigidPolyurethane, thermal.PolyurethaneRPerInch}},
	{Pattern: "xps", Value: integralInsulation{lca.RigidXPS, thermal.XPSRPerInch}},
	{Pattern: "extruded", Value: integralInsulation{lca.RigidXPS, thermal.XPSRPerInch}},
	{Pattern: "eps", Value: integralInsulation{lca.RigidEPS, thermal.EPSRPerInch}},
	{Pattern: "expanded", Value: integralInsulation{lca.RigidEPS, thermal.EPSRPerInch}},
}

func (c *Classifier) mass(_ lca.Kind, layer model.Layer) structure {
	spec := &lca.MassSpec{
		Material:            massMaterial(layer),
		CompressiveStrength: c.defaults.CompressiveStrength,
		Reinforcement:       c.defaults.Reinforcement,
		InsulationMaterial:  lca.InsulationNone,
	}
	if spec.Material == lca.SteelSheet {
		spec.CompressiveStrength = ""
		spec.Reinforcement = lca.NoneRebar
	}

	massID := layer.Identifier
	if insulated(layer.Category) {
		massID = c.integral(spec, layer.Identifier)
	}

	if thickness, ok := tags.MassThickness.Match(massID); ok {
		spec.Thickness = lca.Float(thickness)
	} else if thickness, ok := tags.Thickness(massID); ok {
		spec.Thickness = lca.Float(thickness)
	}
	return structure{mass: spec}
}

func insulated(category string) bool {
	return tags.ContainsAny(category, "icf", "insulated concrete form", "sandwich panel", "metal insulated panel")
}

// integral fills the integral insulation of spec from the identifier
// segment naming the insulation, and returns the identifier without that
// segment so its thickness is not mistaken for the mass thickness.
func (c *Classifier) integral(spec *lca.MassSpec, identifier string) string {
	segments := tags.Segments(identifier)
	rest := make([]string, 0, len(segments))
	found := false
	for _, seg := range segments {
		ins, ok := integralInsulations.Match(seg)
		if !ok || found {
			rest = append(rest, seg)
			continue
		}
		found = true
		spec.InsulationMaterial = ins.material
		spec.InsulationRPerInch = lca.Float(ins.rPerInch)
		if thickness, ok := tags.Thickness(seg); ok {
			spec.InsulationThickness = lca.Float(thickness)
			spec.CavityRValue = lca.Float(ins.rPerInch * thickness)
		}
	}
	if !found {
		spec.InsulationMaterial = lca.UnknownInsulation
	}
	return strings.Join(rest, " - ")
}

func massMaterial(layer model.Layer) lca.MassMaterial {
	switch {
	case tags.ContainsAny(layer.Category, "metal insulated panel"):
		return lca.SteelSheet
	case tags.ContainsAny(layer.Category, "masonry units"):
		if tags.ContainsAny(layer.Identifier, "brick") {
			return lca.Brick
		}
		return lca.ConcreteMasonryUnit
	case tags.ContainsAny(layer.Identifier, "lightweight"):
		return lca.LightweightConcrete
	case tags.ContainsAny(layer.Category, "concrete", "icf", "insulated concrete form"):
		return lca.NormalweightConcrete
	}
	return lca.OtherMass
}
