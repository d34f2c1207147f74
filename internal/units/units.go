// Package units converts between the SI quantities found in building models
// and the IP quantities reported in a takeoff.
package units

import (
	"strings"

	"github.com/mdobak/go-xerrors"
)

// Unit names accepted by Convert.
const (
	Meter         = "m"
	Foot          = "ft"
	Inch          = "in"
	SquareMeter   = "m^2"
	SquareFoot    = "ft^2"
	RSI           = "m^2*K/W"
	RIP           = "ft^2*h*R/Btu"
	WPerMK        = "W/m*K"
	BtuInPerHFt2F = "Btu*in/h*ft^2*R"
	Radian        = "rad"
	Degree        = "deg"
)

// Exact or standard factors.
const (
	FeetPerMeter  = 3.28083989501312
	InchesPerFoot = 12.0
	// RSIToRIP converts m²·K/W to h·ft²·°F/Btu, to the precision building
	// energy tools report R-values with.
	RSIToRIP = 5.678
	// DegreesPerRadian is truncated the way building tools usually print it.
	DegreesPerRadian = 57.295779513
)

type conversion struct {
	from, to string
}

var factors = map[conversion]float64{
	{Meter, Foot}:             FeetPerMeter,
	{Meter, Inch}:             FeetPerMeter * InchesPerFoot,
	{Foot, Inch}:              InchesPerFoot,
	{SquareMeter, SquareFoot}: FeetPerMeter * FeetPerMeter,
	{RSI, RIP}:                RSIToRIP,
	{WPerMK, BtuInPerHFt2F}:   6.933471799,
	{Radian, Degree}:          DegreesPerRadian,
}

// ErrUnknownConversion is returned for unit pairs outside the table.
var ErrUnknownConversion = xerrors.Message("unknown unit conversion")

// Convert converts value between two units. Conversions are available in
// both directions for every pair in the table.
func Convert(value float64, from, to string) (float64, error) {
	from, to = normalize(from), normalize(to)
	if from == to {
		return value, nil
	}
	if f, ok := factors[conversion{from, to}]; ok {
		return value * f, nil
	}
	if f, ok := factors[conversion{to, from}]; ok {
		return value / f, nil
	}
	return 0, xerrors.New(ErrUnknownConversion, from+" -> "+to)
}

// MustConvert is Convert for pairs known to be in the table.
func MustConvert(value float64, from, to string) float64 {
	v, err := Convert(value, from, to)
	if err != nil {
		panic(err)
	}
	return v
}

func normalize(u string) string {
	return strings.ReplaceAll(strings.TrimSpace(u), " ", "")
}
