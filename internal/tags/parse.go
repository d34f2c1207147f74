// Package tags extracts engineering values from the free-form descriptive
// strings attached to materials and constructions.
//
// Every extractor returns ok=false for input it cannot read; none of them
// fail.
package tags

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/golca/internal/lca"
)

const inchUnit = `\s*(?:in\b\.?|inch(?:es)?\b|")`

var (
	mixedInches    = regexp.MustCompile(`(?i)(\d+)\s+(\d+)\s*/\s*(\d+)` + inchUnit)
	fractionInches = regexp.MustCompile(`(?i)(\d+)\s*/\s*(\d+)` + inchUnit)
	decimalInches  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)` + inchUnit)

	rValuePattern   = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])r\s*-?\s*(\d+(?:\.\d+)?)`)
	numberPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	liveLoadPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*psf`)
	pliesPattern    = regexp.MustCompile(`(?i)(\d+)\s*-?\s*ply`)
	densityPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lb\s*/\s*ft\s*\^?3|pcf)`)
	sizePattern     = regexp.MustCompile(`(?i)(?:^|[^0-9.])2\s*x\s*(12|10|8|6|4|3)(?:[^0-9]|$)`)
)

// Thickness extracts a dimension in inches. Mixed fractions ("10 1/4 in."),
// simple fractions ("3/4 in.") and decimals ("2.5 in.") are recognised, in
// that order.
func Thickness(s string) (float64, bool) {
	if m := mixedInches.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		if frac, ok := fraction(m[2], m[3]); ok {
			return whole + frac, true
		}
	}
	if m := fractionInches.FindStringSubmatch(s); m != nil {
		if frac, ok := fraction(m[1], m[2]); ok {
			return frac, true
		}
	}
	if m := decimalInches.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}

func fraction(num, den string) (float64, bool) {
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// RValue extracts an "R<number>" token such as "R55", "R-19" or "R 13".
func RValue(s string) (float64, bool) {
	m := rValuePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	return v, err == nil
}

// Spacing extracts the first number of an on-center spacing field, e.g. 16
// from "Wall16inOC" or 24 from "24 in. o.c.".
func Spacing(s string) (float64, bool) {
	return firstNumber(s)
}

// LiveLoad extracts a live load in psf.
func LiveLoad(s string) (float64, bool) {
	return submatchFloat(liveLoadPattern, s)
}

// Density extracts a density in lb/ft³.
func Density(s string) (float64, bool) {
	return submatchFloat(densityPattern, s)
}

// Plies extracts the ply count of a laminated panel.
func Plies(s string) (int, bool) {
	m := pliesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}

// NominalSize extracts a paired-dimension lumber size. Unrecognised codes
// yield lca.OtherSize.
func NominalSize(s string) lca.Size {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return lca.OtherSize
	}
	switch m[1] {
	case "3":
		return lca.Size2x3
	case "4":
		return lca.Size2x4
	case "6":
		return lca.Size2x6
	case "8":
		return lca.Size2x8
	case "10":
		return lca.Size2x10
	case "12":
		return lca.Size2x12
	}
	return lca.OtherSize
}

// ActualDepth is the dressed depth in inches of a nominal lumber size.
var ActualDepth = map[lca.Size]float64{
	lca.Size2x3:  2.5,
	lca.Size2x4:  3.5,
	lca.Size2x6:  5.5,
	lca.Size2x8:  7.25,
	lca.Size2x10: 9.25,
	lca.Size2x12: 11.25,
}

func firstNumber(s string) (float64, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

func submatchFloat(re *regexp.Regexp, s string) (float64, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	return v, err == nil
}

// Segments splits a standards-style identifier such as
// "SIPS - R55 - OSB Spline - 10 1/4 in." at its " - " separators.
func Segments(s string) []string {
	var out []string
	for _, part := range strings.Split(s, " - ") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
