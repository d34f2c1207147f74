package assemble_test

import (
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alexiusacademia/golca/internal/assemble"
	"github.com/alexiusacademia/golca/internal/classify"
	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/results"
	"github.com/alexiusacademia/golca/internal/subsurface"
	"github.com/alexiusacademia/golca/internal/units"
)

const sqft = units.FeetPerMeter * units.FeetPerMeter

func r(v float64) *float64 { return &v }

func testBuilding() *model.Building {
	return &model.Building{
		Name:   "Test House",
		Spaces: []model.Space{{Name: "Living"}, {Name: "Garage"}},
		Surfaces: []model.Assembly{
			{
				Name: "North Wall", Type: model.SurfaceWall, Boundary: model.Ambient, Space: "Living",
				Layers: []model.Layer{
					{Category: "Insulation Board", Identifier: "XPS - 1 in. R5"},
					{
						Category: "Wood Framed", Identifier: "2x6",
						Composite: &model.Composite{Configuration: "Wall16inOC", CavityRValue: r(19)},
					},
					{Category: "Finish Materials", Identifier: "Gypsum Board - 1/2 in."},
				},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 3}},
				Subsurfaces: []model.Subsurface{{
					Name: "Window 1", Type: "FixedWindow", Construction: "Double Pane Clear Air Vinyl",
					Vertices: []geometry.Point{{X: 1, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 2}},
				}},
			},
			{
				Name: "Interior Partition", Type: model.SurfaceWall, Boundary: model.Adjacent, Space: "Living",
				Layers:   []model.Layer{{Category: "Wood Framed", Identifier: "2x4"}},
				Vertices: []geometry.Point{{X: 2, Y: 0, Z: 3}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 5, Z: 0}, {X: 2, Y: 5, Z: 3}},
			},
			{
				Name: "Roof", Type: model.SurfaceRoof, Boundary: model.Ambient, Space: "Living",
				Layers: []model.Layer{
					{Category: "Roofing", Identifier: "Roofing Membrane"},
					{Category: "SIPS", Identifier: "SIPS - R55 - OSB Spline - 10 1/4 in."},
				},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 4, Y: 0, Z: 3}, {X: 4, Y: 5, Z: 3}, {X: 0, Y: 5, Z: 3}},
				Subsurfaces: []model.Subsurface{{
					Name: "Skylight 1", Type: "Skylight",
					Vertices: []geometry.Point{{X: 1, Y: 1, Z: 3}, {X: 2, Y: 1, Z: 3}, {X: 2, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 3}},
				}},
			},
			{
				Name: "Slab", Type: model.SurfaceFloor, Boundary: model.Ground, Space: "Living",
				Layers: []model.Layer{
					{Category: "Concrete", Identifier: "4 in. Normalweight Concrete Floor"},
					{Category: "Finish Materials", Identifier: "Carpet"},
				},
				Vertices: []geometry.Point{{X: 0, Y: 5, Z: 0}, {X: 4, Y: 5, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}},
			},
			{
				Name: "Basement Wall", Type: model.SurfaceWall, Boundary: model.Ground, Space: "Garage",
				Layers: []model.Layer{
					{Category: "Wood Framed", Identifier: "2x4"},
					{Category: "Concrete", Identifier: "8 in. Normalweight Concrete Wall"},
				},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -2}, {X: 6, Y: 0, Z: -2}, {X: 6, Y: 0, Z: 0}},
			},
			{
				Name: "Garage Ceiling", Type: model.SurfaceFloor, Boundary: model.Adiabatic, Space: "Garage",
				Layers: []model.Layer{{
					Category: "Wood Framed", Identifier: "2x10",
					Composite: &model.Composite{Configuration: "Floor24inOC", CavityRValue: r(30)},
				}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 0, Y: 6, Z: 3}, {X: 6, Y: 6, Z: 3}, {X: 6, Y: 0, Z: 3}},
			},
			{
				Name: "Membrane Roof", Type: model.SurfaceRoof, Boundary: model.Ambient, Space: "Garage",
				Layers:   []model.Layer{{Category: "Roofing", Identifier: "EPDM"}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 6, Y: 0, Z: 3}, {X: 6, Y: 6, Z: 3}, {X: 0, Y: 6, Z: 3}},
			},
		},
	}
}

var _ = Describe("Assembler", func() {
	var (
		building  *model.Building
		store     *results.MapStore
		assembler *assemble.Assembler
	)

	BeforeEach(func() {
		building = testBuilding()
		Expect(building.Validate()).To(Succeed())

		store = results.NewMapStore(
			results.Entry{Table: "Exterior Fenestration", Column: "Glass U-Factor", Row: "SKYLIGHT 1", Value: 2.1},
			results.Entry{Table: "Exterior Fenestration", Column: "Glass SHGC", Row: "SKYLIGHT 1", Value: 0.3},
			results.Entry{Table: "Exterior Fenestration", Column: "Glass Visible Transmittance", Row: "SKYLIGHT 1", Value: 0.5},
		)
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
		assembler = assemble.New(
			classify.New(classify.NewDefaults()),
			subsurface.New(store, subsurface.DefaultColumns),
			geometry.VertexSpan,
			logger,
		)
	})

	Describe("per-kind assemblers", func() {
		It("classifies above-grade walls only", func() {
			walls, diags := assembler.Walls(building)
			Expect(diags).To(BeEmpty())
			Expect(walls).To(HaveLen(1))
			Expect(walls[0].Name).To(Equal("North Wall"))
			Expect(walls[0].Framing.Material).To(Equal(lca.WoodStud))
			Expect(walls[0].WallFinish).To(Equal(lca.GypsumBoard))
		})

		It("derives wall geometry net of openings", func() {
			walls, _ := assembler.Walls(building)
			g := walls[0].Geometry
			Expect(g.Area).To(BeNumerically("~", 11*sqft, 1e-9))
			Expect(g.Height).To(BeNumerically("~", 3*units.FeetPerMeter, 1e-9))
			Expect(g.Span).NotTo(BeNil())
			Expect(*g.Span).To(BeNumerically("~", 4*units.FeetPerMeter, 1e-9))
			Expect(g.TiltDegrees).To(BeNumerically("~", 90, 1e-6))
			Expect(g.Pitch).To(BeNil())
		})

		It("characterizes embedded openings", func() {
			walls, _ := assembler.Walls(building)
			Expect(walls[0].Subsurfaces).To(HaveLen(1))
			w := walls[0].Subsurfaces[0]
			Expect(w.GlassLayers).To(Equal(lca.DoublePane))
			Expect(w.FrameType).To(Equal(lca.FrameVinyl))
			Expect(w.GasFill).To(Equal(lca.GasAir))
			Expect(w.UFactor).To(BeZero())
		})

		It("classifies roofs with pitch and skylight performance", func() {
			roofs, diags := assembler.Roofs(building)
			Expect(roofs).To(HaveLen(1))
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Assembly).To(Equal("Membrane Roof"))
			Expect(diags[0].Kind).To(Equal(lca.KindRoof))

			roof := roofs[0]
			Expect(roof.System).To(Equal(lca.SystemSIPs))
			Expect(roof.Panel.CoreMaterial).To(Equal(lca.RigidPolyisocyanurate))
			Expect(*roof.Geometry.Pitch).To(BeNumerically("~", 0, 1e-9))
			Expect(*roof.Geometry.Span).To(BeNumerically("~", math.Sqrt(41)*units.FeetPerMeter, 1e-9))

			Expect(roof.Subsurfaces).To(HaveLen(1))
			s := roof.Subsurfaces[0]
			Expect(s.UFactor).To(Equal(2.1))
			Expect(s.SHGC).To(Equal(0.3))
			Expect(s.VT).To(Equal(0.5))
			Expect(s.FrameType).To(Equal(lca.NoneFrameType))
		})

		It("uses the below-grade keyword sets for foundations", func() {
			slabs, _ := assembler.FoundationSlabs(building)
			Expect(slabs).To(HaveLen(1))
			Expect(slabs[0].System).To(Equal(lca.SystemConcrete))
			Expect(*slabs[0].Mass.Thickness).To(Equal(4.0))
			Expect(slabs[0].FloorFinish).To(Equal(lca.Carpet))

			walls, _ := assembler.FoundationWalls(building)
			Expect(walls).To(HaveLen(1))
			Expect(walls[0].StructuralIndex).To(Equal(1))
			Expect(walls[0].System).To(Equal(lca.SystemConcrete))
		})

		It("classifies floors with joists", func() {
			floors, _ := assembler.Floors(building)
			Expect(floors).To(HaveLen(1))
			Expect(floors[0].Framing.Material).To(Equal(lca.WoodJoist))
			Expect(*floors[0].Framing.Spacing).To(Equal(24.0))
		})
	})

	Describe("Run", func() {
		It("keys every classified assembly by name and reports skips", func() {
			t := assembler.Run(building)
			Expect(t.Assemblies).To(HaveLen(5))
			Expect(t.Assemblies).To(HaveKey("North Wall"))
			Expect(t.Assemblies).NotTo(HaveKey("Interior Partition"))
			Expect(t.Diagnostics).To(HaveLen(1))
			Expect(t.Diagnostics[0].Reason).To(ContainSubstring("no structural layer"))
		})

		It("orders assemblies by kind then name", func() {
			t := assembler.Run(building)
			Expect(t.Names()).To(Equal([]string{
				"North Wall", "Roof", "Garage Ceiling", "Slab", "Basement Wall",
			}))
			Expect(t.Ordered()[1].Kind).To(Equal(lca.KindRoof))
		})

		It("aggregates per space", func() {
			t := assembler.Run(building)
			Expect(t.Spaces).To(HaveLen(2))

			garage, living := t.Spaces[0], t.Spaces[1]
			Expect(garage.Space).To(Equal("Garage"))
			Expect(garage.Assemblies).To(ConsistOf("Basement Wall", "Garage Ceiling"))
			Expect(garage.TotalArea).To(BeNumerically("~", (12+36)*sqft, 1e-9))

			Expect(living.Space).To(Equal("Living"))
			Expect(living.Assemblies).To(ConsistOf("North Wall", "Roof", "Slab"))
			Expect(living.TotalArea).To(BeNumerically("~", (11+19+20)*sqft, 1e-9))
			Expect(living.AreaByKind[lca.KindRoof]).To(BeNumerically("~", 19*sqft, 1e-9))
			Expect(living.AreaBySystem[lca.SystemWoodFramed]).To(BeNumerically("~", 11*sqft, 1e-9))
		})

		It("is deterministic", func() {
			Expect(assembler.Run(building)).To(Equal(assembler.Run(building)))
		})
	})

	Describe("Assemble", func() {
		It("carries the geometric span onto CLT panels", func() {
			floor := model.Assembly{
				Name: "CLT Floor", Type: model.SurfaceFloor, Boundary: model.Adjacent,
				Layers:   []model.Layer{{Category: "CLT", Identifier: "CLT - 5-ply - 6.875 in. - 40 psf"}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 0, Y: 3, Z: 3}, {X: 4, Y: 3, Z: 3}, {X: 4, Y: 0, Z: 3}},
			}
			c, err := assembler.Assemble(floor, lca.KindFloor)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Panel.Span).NotTo(BeNil())
			Expect(*c.Panel.Span).To(BeNumerically("~", 5*units.FeetPerMeter, 1e-9))
		})

		It("derives pitch from sloped vertices", func() {
			roof := model.Assembly{
				Name: "Pitched", Type: model.SurfaceRoof, Boundary: model.Ambient,
				Layers:   []model.Layer{{Category: "Wood Framed", Identifier: "2x8"}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 3}, {X: 4, Y: 0, Z: 3}, {X: 4, Y: 2, Z: 4}, {X: 0, Y: 2, Z: 4}},
			}
			c, err := assembler.Assemble(roof, lca.KindRoof)
			Expect(err).NotTo(HaveOccurred())
			Expect(*c.Geometry.Pitch).To(BeNumerically("~", 6, 1e-9))
			Expect(c.Framing.Material).To(Equal(lca.WoodRafter))
		})

		It("reports an undefined span as missing", func() {
			wall := model.Assembly{
				Name: "Odd", Type: model.SurfaceWall, Boundary: model.Ambient,
				Layers:   []model.Layer{{Category: "Masonry Units", Identifier: "8 in. CMU"}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 2}},
			}
			c, err := assembler.Assemble(wall, lca.KindWall)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Geometry.Span).To(BeNil())
		})

		It("uses the configured span method", func() {
			bbox := assemble.New(classify.New(classify.NewDefaults()), nil, geometry.SpanMethod("bbox"), nil)
			wall := model.Assembly{
				Name: "Odd", Type: model.SurfaceWall, Boundary: model.Ambient,
				Layers:   []model.Layer{{Category: "Masonry Units", Identifier: "8 in. CMU"}},
				Vertices: []geometry.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 2}},
			}
			c, err := bbox.Assemble(wall, lca.KindWall)
			Expect(err).NotTo(HaveOccurred())
			Expect(*c.Geometry.Span).To(BeNumerically("~", 2*units.FeetPerMeter, 1e-9))
		})

		It("prefers the model's own area and tilt", func() {
			wall := building.Surfaces[0]
			wall.Area = r(10)
			wall.Tilt = r(math.Pi / 2)
			c, err := assembler.Assemble(wall, lca.KindWall)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Geometry.Area).To(BeNumerically("~", 10*sqft, 1e-9))
		})
	})
})
