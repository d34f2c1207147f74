package model

import (
	"encoding/json"
	"os"

	"github.com/mdobak/go-xerrors"
	"github.com/samber/lo"

	"github.com/alexiusacademia/golca/internal/lca"
)

// Model is the traversal interface the assemblers consume.
type Model interface {
	// Assemblies returns the assemblies of the given kind, in model order.
	Assemblies(kind lca.Kind) []Assembly
	// Space returns the named space.
	Space(name string) (Space, bool)
}

// LoadFromFile loads and validates a building model from a JSON file
func LoadFromFile(filepath string) (*Building, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, xerrors.New("reading model file", err)
	}

	var building Building
	if err := json.Unmarshal(data, &building); err != nil {
		return nil, xerrors.New("decoding model file", err)
	}

	if err := building.Validate(); err != nil {
		return nil, err
	}

	return &building, nil
}

// Assemblies implements Model.
func (b *Building) Assemblies(kind lca.Kind) []Assembly {
	return lo.Filter(b.Surfaces, func(a Assembly, _ int) bool {
		k, ok := a.Kind()
		return ok && k == kind
	})
}

// Space implements Model.
func (b *Building) Space(name string) (Space, bool) {
	return lo.Find(b.Spaces, func(s Space) bool {
		return s.Name == name
	})
}

// Assembly returns the named assembly.
func (b *Building) Assembly(name string) (Assembly, bool) {
	return lo.Find(b.Surfaces, func(a Assembly) bool {
		return a.Name == name
	})
}
