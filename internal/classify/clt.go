package classify

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
)

// clt reads the loading of a cross-laminated timber panel from identifiers
// such as "CLT - 5-ply - 6.875 in. - 40 psf". The span is filled in from
// the assembly geometry.
func (c *Classifier) clt(_ lca.Kind, layer model.Layer) structure {
	spec := &lca.PanelSpec{CoreMaterial: lca.InsulationNone}
	if thickness, ok := tags.Thickness(layer.Identifier); ok {
		spec.PanelThickness = lca.Float(thickness)
	}
	if load, ok := tags.LiveLoad(layer.Identifier); ok {
		spec.LiveLoad = lca.Float(load)
	}
	if plies, ok := tags.Plies(layer.Identifier); ok {
		spec.Plies = lca.Int(plies)
	}
	return structure{panel: spec}
}
