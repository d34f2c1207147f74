package classify

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/model"
	"github.com/alexiusacademia/golca/internal/tags"
)

var deckings = tags.Vocabulary[lca.Decking]{
	{Pattern: "metal deck", Value: lca.MetalDecking},
	{Pattern: "steel deck", Value: lca.MetalDecking},
	{Pattern: "plywood", Value: lca.WoodDecking},
	{Pattern: "osb", Value: lca.WoodDecking},
	{Pattern: "wood deck", Value: lca.WoodDecking},
	{Pattern: "wood sheathing", Value: lca.WoodDecking},
	{Pattern: "wood", Value: lca.WoodDecking},
}

type wallFinish struct {
	finish    lca.WallFinish
	thickness float64
}

// wallFinishes lists gypsum thicknesses before the bare product name.
var wallFinishes = tags.Vocabulary[wallFinish]{
	{Pattern: "Gypsum Board - 1 in.", Value: wallFinish{lca.GypsumBoard, 1}},
	{Pattern: "Gypsum Board - 3/4 in.", Value: wallFinish{lca.GypsumBoard, 0.75}},
	{Pattern: "Gypsum Board - 5/8 in.", Value: wallFinish{lca.GypsumBoard, 0.625}},
	{Pattern: "Gypsum Board - 1/2 in.", Value: wallFinish{lca.GypsumBoard, 0.5}},
	{Pattern: "Gypsum Board - 3/8 in.", Value: wallFinish{lca.GypsumBoard, 0.375}},
	{Pattern: "Gypsum Board", Value: wallFinish{lca.GypsumBoard, 0}},
	{Pattern: "Gypsum", Value: wallFinish{lca.GypsumBoard, 0}},
	{Pattern: "Plaster", Value: wallFinish{lca.Plaster, 0}},
	{Pattern: "Paneling", Value: wallFinish{lca.WoodPaneling, 0}},
}

var floorFinishes = tags.Vocabulary[lca.FloorFinish]{
	{Pattern: "carpet", Value: lca.Carpet},
	{Pattern: "vinyl", Value: lca.Vinyl},
	{Pattern: "linoleum", Value: lca.Vinyl},
	{Pattern: "tile", Value: lca.Tile},
	{Pattern: "terrazzo", Value: lca.Tile},
	{Pattern: "hardwood", Value: lca.Hardwood},
}

// finishes scans the layers that are neither structural nor insulation.
// Decking comes from any such layer; wall and floor finishes only from
// layers on the interior side.
func (c *Classifier) finishes(out *lca.ClassifiedAssembly, stack model.Stack, structural int) {
	out.Decking = lca.NoneDecking
	out.WallFinish = lca.NoneWallFinish
	out.FloorFinish = lca.NoneFloorFinish

	for i := 0; i < stack.Len(); i++ {
		side, ok := stack.Side(i, structural)
		if !ok {
			continue
		}
		layer := stack.Layer(i)
		if isInsulation(layer) || layer.Fenestration {
			continue
		}

		if out.Decking == lca.NoneDecking && (out.Kind == lca.KindRoof || out.Kind == lca.KindFloor) {
			out.Decking = deckings.MatchOr(layer.Identifier, lca.NoneDecking)
		}
		if side != lca.Interior {
			continue
		}

		switch out.Kind {
		case lca.KindWall, lca.KindFoundationWall:
			if out.WallFinish != lca.NoneWallFinish {
				continue
			}
			if f, ok := wallFinishes.Match(layer.Identifier); ok {
				out.WallFinish = f.finish
				if f.thickness > 0 {
					out.WallFinishThickness = lca.Float(f.thickness)
				}
			}
		case lca.KindFloor, lca.KindFoundationSlab:
			if out.FloorFinish == lca.NoneFloorFinish {
				out.FloorFinish = floorFinish(layer)
			}
		}
	}
}

// floorFinish classifies a walking surface: hardwood from wood or board
// categories, the rest from finish-material identifiers.
func floorFinish(layer model.Layer) lca.FloorFinish {
	if f, ok := floorFinishes.Match(layer.Identifier); ok {
		return f
	}
	if tags.ContainsAny(layer.Category, "woods", "wood", "board") &&
		!tags.ContainsAny(layer.Identifier, "gypsum", "plywood", "osb") {
		return lca.Hardwood
	}
	return lca.NoneFloorFinish
}
