// Package model holds the building model consumed by a takeoff: spaces,
// planar assemblies, their layer stacks and embedded openings.
package model

import (
	"fmt"

	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/lca"
)

// Boundary is the outside boundary condition of an assembly.
type Boundary string

const (
	Ambient   Boundary = "ambient"
	Ground    Boundary = "ground"
	Adjacent  Boundary = "interior"
	Adiabatic Boundary = "adiabatic"
)

// SurfaceType is the geometric type of a surface in the source model.
type SurfaceType string

const (
	SurfaceWall        SurfaceType = "wall"
	SurfaceRoof        SurfaceType = "roof"
	SurfaceFloor       SurfaceType = "floor"
	SurfaceRoofCeiling SurfaceType = "roofceiling"
)

// Building is a complete model as loaded from a model file.
type Building struct {
	Name   string  `json:"name"`
	Spaces []Space `json:"spaces"`
	// Surfaces lists every assembly of the model in source order
	Surfaces []Assembly `json:"assemblies"`
}

// Space is a thermal space containing assemblies.
type Space struct {
	Name      string  `json:"name"`
	Story     string  `json:"story,omitempty"`
	FloorArea float64 `json:"floor_area,omitempty"` // m²
}

// Assembly is one planar building element with its construction.
type Assembly struct {
	Name         string           `json:"name"`
	Type         SurfaceType      `json:"type"`
	Boundary     Boundary         `json:"boundary"`
	Space        string           `json:"space,omitempty"`
	Construction string           `json:"construction,omitempty"`
	LayerOrder   Order            `json:"layer_order,omitempty"`
	Layers       []Layer          `json:"layers"`
	Vertices     []geometry.Point `json:"vertices"`
	// Tilt in radians; derived from the vertices when absent
	Tilt *float64 `json:"tilt,omitempty"`
	// Net area in m²; derived from the vertices when absent
	Area        *float64     `json:"area,omitempty"`
	Subsurfaces []Subsurface `json:"subsurfaces,omitempty"`
}

// Layer is one material in a construction, listed exterior first.
type Layer struct {
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`
	Identifier string `json:"identifier,omitempty"`

	// Physical properties, SI
	Thickness    *float64 `json:"thickness,omitempty"`    // m
	Conductivity *float64 `json:"conductivity,omitempty"` // W/m·K

	// Fenestration materials never carry insulation
	Fenestration bool `json:"fenestration,omitempty"`

	Composite *Composite `json:"composite,omitempty"`
}

// Composite holds the sub-tags of a layer that encodes a whole framed
// assembly (framing plus cavity insulation).
type Composite struct {
	Material      string   `json:"material,omitempty"`
	Configuration string   `json:"configuration,omitempty"`
	Depth         string   `json:"depth,omitempty"`
	Size          string   `json:"size,omitempty"`
	CavityRValue  *float64 `json:"cavity_r_value,omitempty"`
}

// Subsurface is an opening embedded in an assembly.
type Subsurface struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Construction string           `json:"construction,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	Vertices     []geometry.Point `json:"vertices"`
}

// Kind maps the assembly's surface type and boundary to the kind used by
// the takeoff. ok is false for surfaces no assembler handles, such as
// interior walls.
func (a *Assembly) Kind() (lca.Kind, bool) {
	switch a.Type {
	case SurfaceWall:
		switch a.Boundary {
		case Ambient:
			return lca.KindWall, true
		case Ground:
			return lca.KindFoundationWall, true
		}
	case SurfaceRoof, SurfaceRoofCeiling:
		if a.Boundary == Ambient {
			return lca.KindRoof, true
		}
	case SurfaceFloor:
		switch a.Boundary {
		case Ground:
			return lca.KindFoundationSlab, true
		case Ambient, Adjacent, Adiabatic:
			return lca.KindFloor, true
		}
	}
	return "", false
}

// Stack returns the validated layer stack of the assembly.
func (a *Assembly) Stack() (Stack, error) {
	return NewStack(a.Layers, a.LayerOrder)
}

// Validate checks that the building can be traversed.
func (b *Building) Validate() error {
	spaces := make(map[string]bool, len(b.Spaces))
	for _, s := range b.Spaces {
		if s.Name == "" {
			return &ValidationError{"space name must not be empty"}
		}
		spaces[s.Name] = true
	}
	names := make(map[string]bool, len(b.Surfaces))
	for i, a := range b.Surfaces {
		if a.Name == "" {
			return &ValidationError{fmt.Sprintf("assembly %d has no name", i+1)}
		}
		if names[a.Name] {
			return &ValidationError{fmt.Sprintf("duplicate assembly name %q", a.Name)}
		}
		names[a.Name] = true
		if len(a.Vertices) < 3 {
			return &ValidationError{fmt.Sprintf("assembly %q must have at least 3 vertices", a.Name)}
		}
		if a.Space != "" && !spaces[a.Space] {
			return &ValidationError{fmt.Sprintf("assembly %q references unknown space %q", a.Name, a.Space)}
		}
		for _, s := range a.Subsurfaces {
			if len(s.Vertices) < 3 {
				return &ValidationError{fmt.Sprintf("subsurface %q must have at least 3 vertices", s.Name)}
			}
		}
	}
	return nil
}

// ValidationError represents a model validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
