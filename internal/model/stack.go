package model

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/golca/internal/lca"
)

// Order declares how a layer list is ordered in the source model.
type Order string

const (
	// ExteriorToInterior is the default order of building model constructions.
	ExteriorToInterior Order = "exterior_to_interior"
	InteriorToExterior Order = "interior_to_exterior"
)

// Stack is a non-empty layer stack ordered exterior to interior. Indices
// into a Stack are positions counted from the exterior face, so a lower
// index is always further outside.
type Stack struct {
	layers []Layer
}

// NewStack validates layers listed in the given order and returns them as
// an exterior-to-interior stack. An empty order means ExteriorToInterior.
func NewStack(layers []Layer, order Order) (Stack, error) {
	if len(layers) == 0 {
		return Stack{}, &ValidationError{"layer stack must not be empty"}
	}
	switch order {
	case "", ExteriorToInterior:
		return Stack{layers: slices.Clone(layers)}, nil
	case InteriorToExterior:
		reversed := slices.Clone(layers)
		slices.Reverse(reversed)
		return Stack{layers: reversed}, nil
	default:
		return Stack{}, &ValidationError{fmt.Sprintf("unknown layer order %q", order)}
	}
}

// Len returns the number of layers.
func (s Stack) Len() int {
	return len(s.layers)
}

// Layer returns the layer at position i from the exterior.
func (s Stack) Layer(i int) Layer {
	return s.layers[i]
}

// Layers returns a copy of the layers, exterior first.
func (s Stack) Layers() []Layer {
	return slices.Clone(s.layers)
}

// Side locates layer i relative to the structural layer. ok is false for
// the structural layer itself.
func (s Stack) Side(i, structural int) (side lca.Side, ok bool) {
	switch {
	case i < structural:
		return lca.Exterior, true
	case i > structural:
		return lca.Interior, true
	default:
		return "", false
	}
}
