// Package classify turns an assembly's layer stack into an enumerated
// construction description: structural layer, construction system,
// insulation segments and finishes.
package classify

import (
	"github.com/mdobak/go-xerrors"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
)

// ErrMissingStructuralLayer is returned when no layer of an assembly
// qualifies as structural. Callers skip the assembly.
var ErrMissingStructuralLayer = xerrors.Message("no structural layer")

// Classifier classifies layer stacks with a fixed set of defaults. It holds
// no mutable state and may be shared.
type Classifier struct {
	defaults Defaults
}

// New returns a Classifier using d.
func New(d Defaults) *Classifier {
	return &Classifier{defaults: d}
}

// Defaults returns the defaults the classifier was built with.
func (c *Classifier) Defaults() Defaults {
	return c.defaults
}

// Classify describes the construction of an assembly of the given kind.
// Geometry and subsurfaces are left for the caller.
func (c *Classifier) Classify(a model.Assembly, kind lca.Kind) (lca.ClassifiedAssembly, error) {
	stack, err := a.Stack()
	if err != nil {
		return lca.ClassifiedAssembly{}, xerrors.New(a.Name, err)
	}

	structural, ok := Locate(stack, GradeOf(kind))
	if !ok {
		return lca.ClassifiedAssembly{}, xerrors.New(a.Name, ErrMissingStructuralLayer)
	}

	s := c.system(kind, stack.Layer(structural))
	out := lca.ClassifiedAssembly{
		Name:            a.Name,
		Kind:            kind,
		Space:           a.Space,
		System:          s.system,
		StructuralIndex: structural,
		Framing:         s.framing,
		Mass:            s.mass,
		Panel:           s.panel,
		Insulation:      c.decompose(stack, structural),
	}
	c.finishes(&out, stack, structural)
	return out, nil
}
