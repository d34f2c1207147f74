package classify

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
)

func r(v float64) *float64 { return &v }

func assembly(name string, layers ...model.Layer) model.Assembly {
	return model.Assembly{
		Name:   name,
		Layers: layers,
		Vertices: []geometry.Point{
			{X: 0, Y: 0, Z: 3}, {X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 3},
		},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		grade      Grade
		want       int
		wantOK     bool
	}{
		{"framed wall", []string{"Siding", "Wood Framed", "Finish Materials"}, AboveGrade, 1, true},
		{"first match wins", []string{"Concrete", "Wood Framed"}, AboveGrade, 0, true},
		{"roofing is not structural", []string{"Roofing", "Insulation Board", "Roof Deck"}, AboveGrade, 2, true},
		{"untagged layers skipped", []string{"", "", "Masonry Units"}, AboveGrade, 2, true},
		{"nothing structural", []string{"Roofing", "Insulation Board", "Finish Materials"}, AboveGrade, 0, false},
		{"empty categories", []string{"", ""}, AboveGrade, 0, false},
		{"below grade wall ignores framing", []string{"Wood Framed", "Concrete"}, BelowGradeWall, 1, true},
		{"below grade wall accepts CLT", []string{"Insulation Board", "CLT"}, BelowGradeWall, 1, true},
		{"below grade floor only concrete", []string{"Masonry Units", "Concrete"}, BelowGradeFloor, 1, true},
		{"below grade floor without concrete", []string{"Wood Framed", "SIPS"}, BelowGradeFloor, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers := make([]model.Layer, len(tt.categories))
			for i, c := range tt.categories {
				layers[i] = model.Layer{Category: c}
			}
			stack, err := model.NewStack(layers, "")
			if err != nil {
				t.Fatal(err)
			}
			got, ok := Locate(stack, tt.grade)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Locate() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLocateSingleMatch(t *testing.T) {
	// Exactly one structural layer anywhere in the stack is always found.
	for pos := 0; pos < 5; pos++ {
		layers := []model.Layer{
			{Category: "Siding"}, {Category: "Insulation Board"}, {Category: "Finish Materials"},
			{Category: "Membrane"}, {Category: ""},
		}
		layers = append(layers[:pos], append([]model.Layer{{Category: "Metal Framed"}}, layers[pos:]...)...)
		stack, _ := model.NewStack(layers, "")
		if got, ok := Locate(stack, AboveGrade); !ok || got != pos {
			t.Errorf("Locate() = %d, %v; want %d", got, ok, pos)
		}
	}
}

func TestFramedScenario(t *testing.T) {
	c := New(NewDefaults())
	framed := model.Layer{
		Category:   "Wood Framed",
		Identifier: "2x6",
		Composite:  &model.Composite{Configuration: "Wall16inOC", CavityRValue: r(19)},
	}

	for kind, material := range map[lca.Kind]lca.FramingMaterial{
		lca.KindWall:  lca.WoodStud,
		lca.KindRoof:  lca.WoodRafter,
		lca.KindFloor: lca.WoodJoist,
	} {
		t.Run(string(kind), func(t *testing.T) {
			got, err := c.Classify(assembly("A", framed), kind)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got.System != lca.SystemWoodFramed {
				t.Errorf("System = %v", got.System)
			}
			f := got.Framing
			if f == nil {
				t.Fatal("Framing not set")
			}
			if f.Material != material {
				t.Errorf("Material = %v, want %v", f.Material, material)
			}
			if f.Size != lca.Size2x6 {
				t.Errorf("Size = %v, want _2X6", f.Size)
			}
			if f.Spacing == nil || *f.Spacing != 16 {
				t.Errorf("Spacing = %v, want 16", f.Spacing)
			}
			if f.FramingFraction == nil || !approx(*f.FramingFraction, 1.5/16) {
				t.Errorf("FramingFraction = %v", f.FramingFraction)
			}
			if f.CavityThickness == nil || *f.CavityThickness != 5.5 {
				t.Errorf("CavityThickness = %v, want 5.5", f.CavityThickness)
			}
			if f.CavityRValue != 19 {
				t.Errorf("CavityRValue = %v, want 19", f.CavityRValue)
			}
			if f.CavityMaterial != lca.BattFiberglass {
				t.Errorf("CavityMaterial = %v, want BATT_FIBERGLASS", f.CavityMaterial)
			}
			if got.Mass != nil || got.Panel != nil {
				t.Error("framed system carries another sub-object")
			}
		})
	}
}

func TestFramedCavity(t *testing.T) {
	c := New(NewDefaults())
	tests := []struct {
		name  string
		layer model.Layer
		depth *float64
		want  lca.InsulationMaterial
	}{
		{"no cavity value", model.Layer{Category: "Wood Framed", Identifier: "2x4"}, r(3.5), lca.InsulationNone},
		{"depth code", model.Layer{Category: "Metal Framed", Composite: &model.Composite{Depth: "3_5In", CavityRValue: r(11)}}, r(3.5), lca.BattFiberglass},
		{"band above fiberglass", model.Layer{Category: "Wood Framed", Identifier: "2x4", Composite: &model.Composite{CavityRValue: r(15)}}, r(3.5), lca.BattRockwool},
		{"band at closed cell", model.Layer{Category: "Wood Framed", Identifier: "2x6", Composite: &model.Composite{CavityRValue: r(27.5)}}, r(5.5), lca.SprayFoamClosedCell},
		{"cellulose", model.Layer{Category: "Wood Framed", Identifier: "2x6 Cellulose", Composite: &model.Composite{CavityRValue: r(20)}}, r(5.5), lca.LooseFillCellulose},
		{"mineral wool", model.Layer{Category: "Wood Framed", Identifier: "2x6 Mineral Wool", Composite: &model.Composite{CavityRValue: r(23)}}, r(5.5), lca.BattRockwool},
		{"closed cell spray", model.Layer{Category: "Wood Framed", Identifier: "2x4 Spray Foam", Composite: &model.Composite{CavityRValue: r(21)}}, r(3.5), lca.SprayFoamClosedCell},
		{"open cell spray", model.Layer{Category: "Wood Framed", Identifier: "2x4 Spray Foam", Composite: &model.Composite{CavityRValue: r(13)}}, r(3.5), lca.SprayFoamOpenCell},
		{"blown fiberglass", model.Layer{Category: "Wood Framed", Identifier: "2x6 Blown Fiberglass", Composite: &model.Composite{CavityRValue: r(21)}}, r(5.5), lca.LooseFillFiberglass},
		{"negligible", model.Layer{Category: "Wood Framed", Identifier: "2x6", Composite: &model.Composite{CavityRValue: r(0.1)}}, r(5.5), lca.InsulationNone},
		{"unknown size", model.Layer{Category: "Wood Framed", Identifier: "Advanced framing", Composite: &model.Composite{CavityRValue: r(19)}}, nil, lca.BattFiberglass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(assembly("A", tt.layer), lca.KindWall)
			if err != nil {
				t.Fatal(err)
			}
			if got.Framing.CavityMaterial != tt.want {
				t.Errorf("CavityMaterial = %v, want %v", got.Framing.CavityMaterial, tt.want)
			}
			if !reflect.DeepEqual(got.Framing.CavityThickness, tt.depth) {
				t.Errorf("CavityThickness = %v, want %v", got.Framing.CavityThickness, tt.depth)
			}
		})
	}
}

func TestSIPs(t *testing.T) {
	c := New(NewDefaults())

	t.Run("scenario", func(t *testing.T) {
		got, err := c.Classify(assembly("SIP", model.Layer{
			Category: "SIPS", Identifier: "SIPS - R55 - OSB Spline - 10 1/4 in.",
		}), lca.KindRoof)
		if err != nil {
			t.Fatal(err)
		}
		p := got.Panel
		if got.System != lca.SystemSIPs || p == nil {
			t.Fatalf("System = %v, Panel = %v", got.System, p)
		}
		if p.PanelThickness == nil || *p.PanelThickness != 10.25 {
			t.Errorf("PanelThickness = %v", p.PanelThickness)
		}
		if p.CoreThickness == nil || *p.CoreThickness != 9.375 {
			t.Errorf("CoreThickness = %v, want 9.375", p.CoreThickness)
		}
		if p.CoreRValue == nil || *p.CoreRValue != 55 {
			t.Errorf("CoreRValue = %v, want 55", p.CoreRValue)
		}
		if p.CoreMaterial != lca.RigidPolyisocyanurate {
			t.Errorf("CoreMaterial = %v, want RIGID_POLYISOCYANURATE", p.CoreMaterial)
		}
	})

	// Core thickness is 10 in. so the R-value is the R-per-inch.
	boundaries := []struct {
		id   string
		want lca.InsulationMaterial
	}{
		{"SIPS - R0.5 - 10 7/8 in.", lca.InsulationNone},
		{"SIPS - R40 - 10 7/8 in.", lca.RigidEPS},
		{"SIPS - R45 - 10 7/8 in.", lca.RigidXPS},
		{"SIPS - R52.5 - 10 7/8 in.", lca.RigidPolyisocyanurate},
		{"SIPS - R70 - 10 7/8 in.", lca.RigidUnknown},
		{"SIPS - OSB Spline - 10 7/8 in.", lca.UnknownInsulation},
	}
	for _, tt := range boundaries {
		t.Run(tt.id, func(t *testing.T) {
			got, err := c.Classify(assembly("SIP", model.Layer{Category: "SIPS", Identifier: tt.id}), lca.KindWall)
			if err != nil {
				t.Fatal(err)
			}
			if got.Panel.CoreMaterial != tt.want {
				t.Errorf("CoreMaterial = %v, want %v", got.Panel.CoreMaterial, tt.want)
			}
		})
	}

	t.Run("unparseable thickness stays missing", func(t *testing.T) {
		got, _ := c.Classify(assembly("SIP", model.Layer{Category: "SIPS", Identifier: "SIPS - R24"}), lca.KindWall)
		if got.Panel.PanelThickness != nil || got.Panel.CoreThickness != nil {
			t.Errorf("thickness = %v, %v; want missing", got.Panel.PanelThickness, got.Panel.CoreThickness)
		}
	})
}

func TestMass(t *testing.T) {
	c := New(NewDefaults())
	tests := []struct {
		name       string
		layer      model.Layer
		system     lca.System
		material   lca.MassMaterial
		thickness  *float64
		insulation lca.InsulationMaterial
		cavityR    *float64
	}{
		{
			"concrete", model.Layer{Category: "Concrete", Identifier: "8 in. Normalweight Concrete Wall"},
			lca.SystemConcrete, lca.NormalweightConcrete, r(8), lca.InsulationNone, nil,
		},
		{
			"lightweight concrete", model.Layer{Category: "Concrete", Identifier: "6 in. Lightweight Concrete Floor"},
			lca.SystemConcrete, lca.LightweightConcrete, r(6), lca.InsulationNone, nil,
		},
		{
			"cmu", model.Layer{Category: "Masonry Units", Identifier: "8 in. CMU Partially Grouted"},
			lca.SystemMasonry, lca.ConcreteMasonryUnit, r(8), lca.InsulationNone, nil,
		},
		{
			"icf", model.Layer{Category: "ICF", Identifier: "ICF - 6 in. Concrete - 2 1/2 in. EPS"},
			lca.SystemICF, lca.NormalweightConcrete, r(6), lca.RigidEPS, r(10),
		},
		{
			"sandwich panel", model.Layer{Category: "Concrete Sandwich Panel", Identifier: "Sandwich Panel - 8 in. Concrete - 2 in. XPS"},
			lca.SystemConcreteSandwichPanel, lca.NormalweightConcrete, r(8), lca.RigidXPS, r(10),
		},
		{
			"metal panel", model.Layer{Category: "Metal Insulated Panel", Identifier: "Metal Insulated Panel - 3 in. Polyiso"},
			lca.SystemMetalInsulatedPanel, lca.SteelSheet, nil, lca.RigidPolyisocyanurate, r(18),
		},
		{
			"untagged icf core", model.Layer{Category: "ICF", Identifier: "ICF - 8 in. Concrete"},
			lca.SystemICF, lca.NormalweightConcrete, r(8), lca.UnknownInsulation, nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(assembly("M", tt.layer), lca.KindWall)
			if err != nil {
				t.Fatal(err)
			}
			m := got.Mass
			if got.System != tt.system || m == nil {
				t.Fatalf("System = %v, Mass = %v", got.System, m)
			}
			if m.Material != tt.material {
				t.Errorf("Material = %v, want %v", m.Material, tt.material)
			}
			if !reflect.DeepEqual(m.Thickness, tt.thickness) {
				t.Errorf("Thickness = %v, want %v", m.Thickness, tt.thickness)
			}
			if m.InsulationMaterial != tt.insulation {
				t.Errorf("InsulationMaterial = %v, want %v", m.InsulationMaterial, tt.insulation)
			}
			if !reflect.DeepEqual(m.CavityRValue, tt.cavityR) {
				t.Errorf("CavityRValue = %v, want %v", m.CavityRValue, tt.cavityR)
			}
		})
	}

	t.Run("named defaults", func(t *testing.T) {
		d := NewDefaults()
		d.CompressiveStrength = lca.Fc4000To5000
		d.Reinforcement = lca.RebarNo5
		got, _ := New(d).Classify(assembly("M", model.Layer{Category: "Concrete", Identifier: "8 in. Concrete"}), lca.KindWall)
		if got.Mass.CompressiveStrength != lca.Fc4000To5000 || got.Mass.Reinforcement != lca.RebarNo5 {
			t.Errorf("defaults not applied: %+v", got.Mass)
		}
	})
}

func TestCLTAndOther(t *testing.T) {
	c := New(NewDefaults())

	got, err := c.Classify(assembly("CLT", model.Layer{Category: "CLT", Identifier: "CLT - 5-ply - 6.875 in. - 40 psf"}), lca.KindFloor)
	if err != nil {
		t.Fatal(err)
	}
	p := got.Panel
	if got.System != lca.SystemCLT || p == nil {
		t.Fatalf("System = %v, Panel = %v", got.System, p)
	}
	if p.PanelThickness == nil || *p.PanelThickness != 6.875 {
		t.Errorf("PanelThickness = %v", p.PanelThickness)
	}
	if p.LiveLoad == nil || *p.LiveLoad != 40 {
		t.Errorf("LiveLoad = %v", p.LiveLoad)
	}
	if p.Plies == nil || *p.Plies != 5 {
		t.Errorf("Plies = %v", p.Plies)
	}
	if p.CoreMaterial != lca.InsulationNone || got.Framing != nil {
		t.Errorf("CLT carries insulation or framing: %+v", got)
	}

	got, err = c.Classify(assembly("CW", model.Layer{Category: "Curtain Wall", Identifier: "Spandrel"}), lca.KindWall)
	if err != nil {
		t.Fatal(err)
	}
	if got.System != lca.SystemOther || got.Framing == nil || got.Framing.Material != lca.OtherMaterial {
		t.Errorf("other system = %v, %+v", got.System, got.Framing)
	}
	if got.TotalRValue() != 0 {
		t.Errorf("TotalRValue() = %v, want 0", got.TotalRValue())
	}
}

func TestMissingStructuralLayer(t *testing.T) {
	c := New(NewDefaults())
	_, err := c.Classify(assembly("Membrane", model.Layer{Category: "Roofing"}), lca.KindRoof)
	if !errors.Is(err, ErrMissingStructuralLayer) {
		t.Errorf("Classify() error = %v, want ErrMissingStructuralLayer", err)
	}

	_, err = c.Classify(assembly("Empty"), lca.KindWall)
	if err == nil {
		t.Error("Classify() accepted an empty stack")
	}
}

func TestIdempotence(t *testing.T) {
	c := New(NewDefaults())
	a := roofAssembly()
	first, err := c.Classify(a, lca.KindRoof)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := c.Classify(a, lca.KindRoof)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classifications differ:\n%+v\n%+v", first, second)
	}
}

func roofAssembly() model.Assembly {
	return assembly("Roof",
		model.Layer{Category: "Roofing", Identifier: "Roofing Membrane"},
		model.Layer{Category: "Insulation Board", Identifier: "Polyiso 3 in. R-20"},
		model.Layer{Category: "Sheathing", Identifier: "Plywood - 5/8 in."},
		model.Layer{
			Category: "Wood Framed", Identifier: "2x10",
			Composite: &model.Composite{Configuration: "Roof24inOC", Depth: "9_25In", CavityRValue: r(30)},
		},
		model.Layer{Category: "Finish Materials", Identifier: "Gypsum Board - 1/2 in."},
	)
}
