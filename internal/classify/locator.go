package classify

import (
	"strings"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
)

// Grade selects the keyword set used to find the structural layer.
type Grade int

const (
	AboveGrade Grade = iota
	BelowGradeWall
	BelowGradeFloor
)

var (
	aboveGradeKeywords = []string{
		"wall", "concrete", "framed", "ceiling", "sips", "masonry units",
		"floor", "clt", "woods", "cross-laminated timber", "cross laminated timber",
		"icf", "metal insulated panel",
	}
	belowGradeWallKeywords = []string{
		"concrete", "sips", "masonry units", "clt", "woods",
		"cross-laminated timber", "cross laminated timber", "icf",
	}
	belowGradeFloorKeywords = []string{"concrete"}
)

// GradeOf returns the grade at which assemblies of kind are located.
func GradeOf(kind lca.Kind) Grade {
	switch kind {
	case lca.KindFoundationWall:
		return BelowGradeWall
	case lca.KindFoundationSlab:
		return BelowGradeFloor
	default:
		return AboveGrade
	}
}

// Locate returns the index of the structural layer: the first layer, from
// the exterior, whose category matches the grade's keywords. Layers without
// a category never match.
func Locate(stack model.Stack, grade Grade) (int, bool) {
	for i := 0; i < stack.Len(); i++ {
		if isStructural(stack.Layer(i).Category, grade) {
			return i, true
		}
	}
	return 0, false
}

func isStructural(category string, grade Grade) bool {
	if strings.TrimSpace(category) == "" {
		return false
	}
	switch grade {
	case BelowGradeWall:
		return tags.ContainsAny(category, belowGradeWallKeywords...)
	case BelowGradeFloor:
		return tags.ContainsAny(category, belowGradeFloorKeywords...)
	}
	if tags.ContainsAny(category, aboveGradeKeywords...) {
		return true
	}
	// Roofing membranes are not structural
	lower := strings.ToLower(category)
	return strings.Contains(lower, "roof") && !strings.Contains(lower, "roofing")
}
