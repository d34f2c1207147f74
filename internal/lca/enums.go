package lca

// Kind is the kind of planar assembly being classified.
type Kind string

const (
	KindWall           Kind = "WALL"
	KindRoof           Kind = "ROOF"
	KindFloor          Kind = "FLOOR"
	KindFoundationSlab Kind = "FOUNDATION_SLAB"
	KindFoundationWall Kind = "FOUNDATION_WALL"
)

// System is the construction system of the structural layer.
type System string

const (
	SystemWoodFramed            System = "WOOD_FRAMED"
	SystemMetalFramed           System = "METAL_FRAMED"
	SystemSIPs                  System = "SIPS"
	SystemConcrete              System = "CONCRETE"
	SystemMasonry               System = "MASONRY"
	SystemICF                   System = "ICF"
	SystemConcreteSandwichPanel System = "CONCRETE_SANDWICH_PANEL"
	SystemMetalInsulatedPanel   System = "METAL_INSULATED_PANEL"
	SystemCLT                   System = "CLT"
	SystemOther                 System = "OTHER_SYSTEM"
)

// FramingMaterial names the framing member of a framed system.
type FramingMaterial string

const (
	WoodStud      FramingMaterial = "WOOD_STUD"
	MetalStud     FramingMaterial = "METAL_STUD"
	WoodRafter    FramingMaterial = "WOOD_RAFTER"
	MetalRafter   FramingMaterial = "METAL_RAFTER"
	WoodJoist     FramingMaterial = "WOOD_JOIST"
	MetalJoist    FramingMaterial = "METAL_JOIST"
	OtherMaterial FramingMaterial = "OTHER_MATERIAL"
)

// Size is a nominal lumber size.
type Size string

const (
	Size2x3   Size = "_2X3"
	Size2x4   Size = "_2X4"
	Size2x6   Size = "_2X6"
	Size2x8   Size = "_2X8"
	Size2x10  Size = "_2X10"
	Size2x12  Size = "_2X12"
	OtherSize Size = "OTHER_SIZE"
)

// InsulationMaterial identifies an insulation product family.
type InsulationMaterial string

const (
	InsulationNone        InsulationMaterial = "NONE"
	BattFiberglass        InsulationMaterial = "BATT_FIBERGLASS"
	BattRockwool          InsulationMaterial = "BATT_ROCKWOOL"
	LooseFillCellulose    InsulationMaterial = "LOOSE_FILL_CELLULOSE"
	LooseFillFiberglass   InsulationMaterial = "LOOSE_FILL_FIBERGLASS"
	SprayFoamOpenCell     InsulationMaterial = "SPRAY_FOAM_OPEN_CELL"
	SprayFoamClosedCell   InsulationMaterial = "SPRAY_FOAM_CLOSED_CELL"
	RigidEPS              InsulationMaterial = "RIGID_EPS"
	RigidXPS              InsulationMaterial = "RIGID_XPS"
	RigidPolyisocyanurate InsulationMaterial = "RIGID_POLYISOCYANURATE"
	RigidPolyurethane     InsulationMaterial = "RIGID_POLYURETHANE"
	RigidUnknown          InsulationMaterial = "RIGID_UNKNOWN"
	UnknownInsulation     InsulationMaterial = "UNKNOWN_INSULATION"
)

// Installation is how an insulation segment is installed.
type Installation string

const (
	Cavity     Installation = "CAVITY"
	Continuous Installation = "CONTINUOUS"
)

// Side locates a layer relative to the structural layer.
type Side string

const (
	Interior Side = "INTERIOR"
	Exterior Side = "EXTERIOR"
)

// MassMaterial is the primary material of a mass system.
type MassMaterial string

const (
	NormalweightConcrete MassMaterial = "NORMALWEIGHT_CONCRETE"
	LightweightConcrete  MassMaterial = "LIGHTWEIGHT_CONCRETE"
	ConcreteMasonryUnit  MassMaterial = "CONCRETE_MASONRY_UNIT"
	Brick                MassMaterial = "BRICK"
	SteelSheet           MassMaterial = "STEEL_SHEET"
	OtherMass            MassMaterial = "OTHER_MASS"
)

// CompressiveStrength is a concrete strength class.
type CompressiveStrength string

const (
	FcUnder2500  CompressiveStrength = "FC_UNDER_2500_PSI"
	Fc2500To3000 CompressiveStrength = "FC_2500_3000_PSI"
	Fc3000To4000 CompressiveStrength = "FC_3000_4000_PSI"
	Fc4000To5000 CompressiveStrength = "FC_4000_5000_PSI"
	Fc5000To6000 CompressiveStrength = "FC_5000_6000_PSI"
	FcOver6000   CompressiveStrength = "FC_OVER_6000_PSI"
)

// Reinforcement is a rebar size class.
type Reinforcement string

const (
	RebarNo3  Reinforcement = "REBAR_NO_3"
	RebarNo4  Reinforcement = "REBAR_NO_4"
	RebarNo5  Reinforcement = "REBAR_NO_5"
	RebarNo6  Reinforcement = "REBAR_NO_6"
	NoneRebar Reinforcement = "NONE_REBAR"
)

// Decking is the deck or sheathing type of a roof or floor.
type Decking string

const (
	WoodDecking  Decking = "WOOD_DECKING"
	MetalDecking Decking = "METAL_DECKING"
	NoneDecking  Decking = "NONE_DECKING"
)

// WallFinish is the interior finish of a wall.
type WallFinish string

const (
	GypsumBoard    WallFinish = "GYPSUM_BOARD"
	Plaster        WallFinish = "PLASTER"
	WoodPaneling   WallFinish = "WOOD_PANELING"
	NoneWallFinish WallFinish = "NONE_WALL_FINISH"
)

// FloorFinish is the walking surface of a floor.
type FloorFinish string

const (
	Hardwood        FloorFinish = "HARDWOOD"
	Carpet          FloorFinish = "CARPET"
	Vinyl           FloorFinish = "VINYL"
	Tile            FloorFinish = "TILE"
	NoneFloorFinish FloorFinish = "NONE_FLOOR_FINISH"
)

// FrameType is the frame material of an opening.
type FrameType string

const (
	FrameAluminum             FrameType = "ALUMINUM"
	FrameAluminumThermalBreak FrameType = "ALUMINUM_THERMAL_BREAK"
	FrameVinyl                FrameType = "VINYL"
	FrameWood                 FrameType = "WOOD"
	FrameFiberglass           FrameType = "FIBERGLASS"
	NoneFrameType             FrameType = "NONE_FRAME_TYPE"
)

// GlassLayers is the pane count of an opening.
type GlassLayers string

const (
	SinglePane      GlassLayers = "SINGLE_PANE"
	DoublePane      GlassLayers = "DOUBLE_PANE"
	TriplePane      GlassLayers = "TRIPLE_PANE"
	NoneGlassLayers GlassLayers = "NONE_GLASS_LAYERS"
)

// GlassType combines tint and low-emissivity coating.
type GlassType string

const (
	GlassClear      GlassType = "CLEAR"
	GlassTinted     GlassType = "TINTED"
	GlassLowEClear  GlassType = "LOW_E_CLEAR"
	GlassLowETinted GlassType = "LOW_E_TINTED"
	GlassReflective GlassType = "REFLECTIVE"
	NoneGlassType   GlassType = "NONE_GLASS_TYPE"
)

// GasFill is the gap fill of insulated glazing.
type GasFill string

const (
	GasAir      GasFill = "AIR"
	GasArgon    GasFill = "ARGON"
	GasKrypton  GasFill = "KRYPTON"
	NoneGasFill GasFill = "NONE_GAS_FILL"
)
