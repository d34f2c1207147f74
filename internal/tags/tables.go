package tags

// InsulationThickness resolves insulation board and batt thicknesses from
// identifiers. Mixed fractions come first, then decimals, then two-digit
// whole inches, then simple fractions, then single-digit whole inches:
// "2 in." would otherwise match "12 in.", "1/2 in." and "2 1/2 in.".
var InsulationThickness = Vocabulary[float64]{
	{"11 1/4 in.", 11.25},
	{"9 1/4 in.", 9.25},
	{"7 1/4 in.", 7.25},
	{"5 1/2 in.", 5.5},
	{"3 1/2 in.", 3.5},
	{"3 1/4 in.", 3.25},
	{"2 3/4 in.", 2.75},
	{"2 1/2 in.", 2.5},
	{"1 3/4 in.", 1.75},
	{"1 1/2 in.", 1.5},
	{"1 1/4 in.", 1.25},
	{"5.5 in.", 5.5},
	{"4.5 in.", 4.5},
	{"3.5 in.", 3.5},
	{"2.5 in.", 2.5},
	{"1.5 in.", 1.5},
	{"16 in.", 16},
	{"15 in.", 15},
	{"14 in.", 14},
	{"12 in.", 12},
	{"11 in.", 11},
	{"10 in.", 10},
	{"1/8 in.", 0.125},
	{"1/4 in.", 0.25},
	{"3/8 in.", 0.375},
	{"1/2 in.", 0.5},
	{"5/8 in.", 0.625},
	{"3/4 in.", 0.75},
	{"7/8 in.", 0.875},
	{"9 in.", 9},
	{"8 in.", 8},
	{"7 in.", 7},
	{"6 in.", 6},
	{"5 in.", 5},
	{"4 in.", 4},
	{"3 in.", 3},
	{"2 in.", 2},
	{"1 in.", 1},
}

// MassThickness resolves the nominal thickness of concrete and masonry
// layers. Actual CMU dimensions precede whole inches.
var MassThickness = Vocabulary[float64]{
	{"11 5/8 in.", 11.625},
	{"9 5/8 in.", 9.625},
	{"7 5/8 in.", 7.625},
	{"5 5/8 in.", 5.625},
	{"3 5/8 in.", 3.625},
	{"16 in.", 16},
	{"14 in.", 14},
	{"12 in.", 12},
	{"10 in.", 10},
	{"8 in.", 8},
	{"6 in.", 6},
	{"4 in.", 4},
}

// DepthCode resolves the composite framing depth sub-tag to a cavity depth
// in inches.
var DepthCode = Vocabulary[float64]{
	{"11_25In", 11.25},
	{"9_25In", 9.25},
	{"7_25In", 7.25},
	{"5_5In", 5.5},
	{"3_5In", 3.5},
}
