package classify

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
	"github.com/alexiusacademia/golca/internal/thermal"
)

// sips reads panel thickness and core R-value from identifiers such as
// "SIPS - R55 - OSB Spline - 10 1/4 in.".
func (c *Classifier) sips(_ lca.Kind, layer model.Layer) structure {
	spec := &lca.PanelSpec{CoreMaterial: lca.UnknownInsulation}

	if thickness, ok := tags.Thickness(layer.Identifier); ok {
		spec.PanelThickness = lca.Float(thickness)
		if core := thickness - c.defaults.SIPSkinAllowance; core > 0 {
			spec.CoreThickness = lca.Float(core)
		}
	}
	if r, ok := tags.RValue(layer.Identifier); ok {
		spec.CoreRValue = lca.Float(r)
	}

	if spec.CoreRValue != nil && spec.CoreThickness != nil {
		rpi, _ := thermal.RPerInch(*spec.CoreRValue, *spec.CoreThickness)
		spec.CoreMaterial = c.defaults.RigidBands.Classify(rpi)
	}
	return structure{panel: spec}
}
