package assemble

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
)

// SpaceSummary aggregates the classified assemblies of one space.
type SpaceSummary struct {
	Space        string                 `json:"space"`
	Assemblies   []string               `json:"assemblies"`
	TotalArea    float64                `json:"total_area"` // ft²
	AreaByKind   map[lca.Kind]float64   `json:"area_by_kind"`
	AreaBySystem map[lca.System]float64 `json:"area_by_system"`
}

// Takeoff is the result of one run over a model.
type Takeoff struct {
	Assemblies  map[string]lca.ClassifiedAssembly `json:"assemblies"`
	Spaces      []SpaceSummary                    `json:"spaces"`
	Diagnostics []Diagnostic                      `json:"diagnostics"`
}

// Run classifies every assembly kind of m and aggregates per space.
func (a *Assembler) Run(m model.Model) Takeoff {
	t := Takeoff{
		Assemblies:  map[string]lca.ClassifiedAssembly{},
		Diagnostics: []Diagnostic{},
	}
	var all []lca.ClassifiedAssembly
	for _, kind := range Kinds {
		classified, diags := a.Kind(m, kind)
		for _, c := range classified {
			t.Assemblies[c.Name] = c
		}
		all = append(all, classified...)
		t.Diagnostics = append(t.Diagnostics, diags...)
	}
	t.Spaces = Summarize(all)

	a.logger.Info("takeoff complete",
		"assemblies", len(t.Assemblies),
		"spaces", len(t.Spaces),
		"skipped", len(t.Diagnostics))
	return t
}

// Summarize groups classified assemblies by space, in space name order.
// Assemblies without a space are left out.
func Summarize(classified []lca.ClassifiedAssembly) []SpaceSummary {
	bySpace := lo.GroupBy(
		lo.Filter(classified, func(c lca.ClassifiedAssembly, _ int) bool { return c.Space != "" }),
		func(c lca.ClassifiedAssembly) string { return c.Space },
	)

	names := lo.Keys(bySpace)
	slices.Sort(names)

	summaries := make([]SpaceSummary, 0, len(names))
	for _, name := range names {
		group := bySpace[name]
		summary := SpaceSummary{
			Space: name,
			Assemblies: lo.Map(group, func(c lca.ClassifiedAssembly, _ int) string {
				return c.Name
			}),
			TotalArea:    lo.SumBy(group, func(c lca.ClassifiedAssembly) float64 { return c.Geometry.Area }),
			AreaByKind:   map[lca.Kind]float64{},
			AreaBySystem: map[lca.System]float64{},
		}
		for kind, byKind := range lo.GroupBy(group, func(c lca.ClassifiedAssembly) lca.Kind { return c.Kind }) {
			summary.AreaByKind[kind] = lo.SumBy(byKind, func(c lca.ClassifiedAssembly) float64 { return c.Geometry.Area })
		}
		for system, bySystem := range lo.GroupBy(group, func(c lca.ClassifiedAssembly) lca.System { return c.System }) {
			summary.AreaBySystem[system] = lo.SumBy(bySystem, func(c lca.ClassifiedAssembly) float64 { return c.Geometry.Area })
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Names returns the classified assembly names in kind order, then name
// order.
func (t Takeoff) Names() []string {
	names := lo.Keys(t.Assemblies)
	slices.SortFunc(names, func(x, y string) int {
		kx := slices.Index(Kinds, t.Assemblies[x].Kind)
		ky := slices.Index(Kinds, t.Assemblies[y].Kind)
		if kx != ky {
			return kx - ky
		}
		return cmp.Compare(x, y)
	})
	return names
}

// Ordered returns the classified assemblies in Names order.
func (t Takeoff) Ordered() []lca.ClassifiedAssembly {
	return lo.Map(t.Names(), func(name string, _ int) lca.ClassifiedAssembly {
		return t.Assemblies[name]
	})
}
