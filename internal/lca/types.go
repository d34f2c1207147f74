// Package lca defines the classified records a takeoff produces for
// downstream life-cycle assessment.
package lca

// ClassifiedAssembly is the normalized description of one assembly.
// Exactly one of Framing, Mass or Panel is set, matching System. Other
// systems carry an OTHER_MATERIAL framing spec with no cavity insulation.
type ClassifiedAssembly struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Space  string `json:"space,omitempty"`
	System System `json:"system"`

	// Index of the structural layer in the exterior→interior stack
	StructuralIndex int `json:"structural_index"`

	Framing *FramingSpec `json:"framing,omitempty"`
	Mass    *MassSpec    `json:"mass,omitempty"`
	Panel   *PanelSpec   `json:"panel,omitempty"`

	Insulation []InsulationSegment `json:"insulation"`

	Decking             Decking     `json:"decking"`
	WallFinish          WallFinish  `json:"wall_finish"`
	WallFinishThickness *float64    `json:"wall_finish_thickness,omitempty"` // in.
	FloorFinish         FloorFinish `json:"floor_finish"`

	Geometry    GeometrySummary        `json:"geometry"`
	Subsurfaces []ClassifiedSubsurface `json:"subsurfaces,omitempty"`
}

// FramingSpec describes a wood or metal framed system.
type FramingSpec struct {
	Material        FramingMaterial    `json:"material"`
	Size            Size               `json:"size"`
	Spacing         *float64           `json:"spacing"`          // in. on center
	FramingFraction *float64           `json:"framing_fraction"` // member width / spacing
	CavityThickness *float64           `json:"cavity_thickness"` // in.
	CavityRValue    float64            `json:"cavity_r_value"`
	CavityMaterial  InsulationMaterial `json:"cavity_material"`
}

// MassSpec describes concrete, masonry and insulated mass panels.
type MassSpec struct {
	Material            MassMaterial        `json:"material"`
	Thickness           *float64            `json:"thickness"` // in.
	CompressiveStrength CompressiveStrength `json:"compressive_strength,omitempty"`
	Reinforcement       Reinforcement       `json:"reinforcement"`

	// Integral insulation of ICF, sandwich and metal insulated panels
	InsulationMaterial  InsulationMaterial `json:"insulation_material"`
	InsulationThickness *float64           `json:"insulation_thickness"` // in.
	InsulationRPerInch  *float64           `json:"insulation_r_per_inch"`
	CavityRValue        *float64           `json:"cavity_r_value"`
}

// PanelSpec describes engineered panels: SIPs and cross-laminated timber.
type PanelSpec struct {
	CoreMaterial   InsulationMaterial `json:"core_material"`
	PanelThickness *float64           `json:"panel_thickness"` // in.
	CoreThickness  *float64           `json:"core_thickness"`  // in.
	CoreRValue     *float64           `json:"core_r_value"`

	// Loading, CLT only
	LiveLoad *float64 `json:"live_load,omitempty"` // psf
	Plies    *int     `json:"plies,omitempty"`
	Span     *float64 `json:"span,omitempty"` // ft
}

// InsulationSegment is one insulation layer outside the structural layer.
type InsulationSegment struct {
	Layer        int                `json:"layer"`
	Material     InsulationMaterial `json:"material"`
	Thickness    *float64           `json:"thickness"` // in.
	RValue       *float64           `json:"r_value"`
	Installation Installation       `json:"installation"`
	Side         Side               `json:"side"`
}

// GeometrySummary holds the takeoff quantities of the assembly polygon.
type GeometrySummary struct {
	Area        float64  `json:"area"`   // ft²
	Span        *float64 `json:"span"`   // ft, nil when the polygon defines none
	Height      float64  `json:"height"` // ft
	Pitch       *float64 `json:"pitch"`  // rise per 12, roofs only
	TiltDegrees float64  `json:"tilt_degrees"`
}

// ClassifiedSubsurface describes an opening embedded in an assembly.
type ClassifiedSubsurface struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	FrameType   FrameType   `json:"frame_type"`
	GlassLayers GlassLayers `json:"glass_layers"`
	GlassType   GlassType   `json:"glass_type"`
	GasFill     GasFill     `json:"gas_fill"`
	Area        float64     `json:"area"`   // ft²
	Height      float64     `json:"height"` // ft
	UFactor     float64     `json:"u_factor"`
	SHGC        float64     `json:"shgc"`
	VT          float64     `json:"visible_transmittance"`
}

// TotalRValue sums the known R-values of the assembly: continuous segments
// plus cavity or core insulation of the structural layer.
func (c *ClassifiedAssembly) TotalRValue() float64 {
	var total float64
	for _, seg := range c.Insulation {
		if seg.RValue != nil {
			total += *seg.RValue
		}
	}
	switch {
	case c.Framing != nil:
		total += c.Framing.CavityRValue
	case c.Mass != nil && c.Mass.CavityRValue != nil:
		total += *c.Mass.CavityRValue
	case c.Panel != nil && c.Panel.CoreRValue != nil:
		total += *c.Panel.CoreRValue
	}
	return total
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
