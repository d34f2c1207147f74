package classify

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
)

// structure is the system-specific part of a classification.
type structure struct {
	system  lca.System
	framing *lca.FramingSpec
	mass    *lca.MassSpec
	panel   *lca.PanelSpec
}

// systemRule pairs a category predicate with the handler for the system it
// selects.
type systemRule struct {
	system  lca.System
	matches func(category string) bool
	handle  func(c *Classifier, kind lca.Kind, layer model.Layer) structure
}

func contains(keywords ...string) func(string) bool {
	return func(category string) bool {
		return tags.ContainsAny(category, keywords...)
	}
}

// systemRules is evaluated in order; the first matching rule wins.
var systemRules = []systemRule{
	{lca.SystemWoodFramed, contains("wood framed"), (*Classifier).framed},
	{lca.SystemMetalFramed, contains("metal framed"), (*Classifier).framed},
	{lca.SystemSIPs, contains("sips"), (*Classifier).sips},
	{lca.SystemConcrete, func(c string) bool {
		return tags.ContainsAny(c, "concrete") && !tags.ContainsAny(c, "sandwich panel")
	}, (*Classifier).mass},
	{lca.SystemMasonry, contains("masonry units"), (*Classifier).mass},
	{lca.SystemICF, contains("icf", "insulated concrete form"), (*Classifier).mass},
	{lca.SystemConcreteSandwichPanel, contains("concrete sandwich panel"), (*Classifier).mass},
	{lca.SystemMetalInsulatedPanel, contains("metal insulated panel"), (*Classifier).mass},
	{lca.SystemCLT, contains("clt", "cross-laminated timber", "cross laminated timber", "woods"), (*Classifier).clt},
}

// system selects the construction system of the structural layer and
// derives its sub-specification.
func (c *Classifier) system(kind lca.Kind, layer model.Layer) structure {
	for _, rule := range systemRules {
		if rule.matches(layer.Category) {
			s := rule.handle(c, kind, layer)
			s.system = rule.system
			return s
		}
	}
	return structure{
		system: lca.SystemOther,
		framing: &lca.FramingSpec{
			Material:       lca.OtherMaterial,
			Size:           lca.OtherSize,
			CavityMaterial: lca.InsulationNone,
		},
	}
}

// framingMaterials names framing members by assembly kind and metal-ness.
var framingMaterials = map[lca.Kind][2]lca.FramingMaterial{
	lca.KindWall:           {lca.WoodStud, lca.MetalStud},
	lca.KindFoundationWall: {lca.WoodStud, lca.MetalStud},
	lca.KindRoof:           {lca.WoodRafter, lca.MetalRafter},
	lca.KindFloor:          {lca.WoodJoist, lca.MetalJoist},
	lca.KindFoundationSlab: {lca.WoodJoist, lca.MetalJoist},
}

// FramingMaterial returns the framing member for an assembly kind.
func FramingMaterial(kind lca.Kind, metal bool) lca.FramingMaterial {
	pair, ok := framingMaterials[kind]
	if !ok {
		return lca.OtherMaterial
	}
	if metal {
		return pair[1]
	}
	return pair[0]
}
