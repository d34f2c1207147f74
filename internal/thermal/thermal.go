// Package thermal holds the insulation constants and R-per-inch material
// bands used to infer insulation products from numeric R-values.
package thermal

import (
	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/units"
)

// Insulation constants (h·ft²·°F/Btu per inch unless noted)
const (
	// NoInsulation is the R-per-inch below which a layer carries no
	// insulation at all.
	NoInsulation = 0.1

	// ClosedCellThreshold splits spray foam into open and closed cell.
	ClosedCellThreshold = 5.0

	// HighDensitySpray is the density in lb/ft³ from which spray urethane
	// counts as high density.
	HighDensitySpray = 3.0

	// Spray-applied insulation by density
	SprayUrethaneHighDensity = 6.3 // 3.0 lb/ft³ urethane
	SprayUrethaneLowDensity  = 3.7 // 0.5 lb/ft³ urethane
	SprayCellulosicOrGlass   = 3.7

	// ComplianceRPerInch is the nominal R-per-inch of code-compliance board
	// insulation, whose thickness is derived from its R-value.
	ComplianceRPerInch = 5.0

	// Integral insulation of ICF and insulated panels
	XPSRPerInch          = 5.0
	EPSRPerInch          = 4.0
	PolyurethaneRPerInch = 6.0
	PolyisoRPerInch      = 6.0
)

// Band assigns Material to R-per-inch values from Min up to the next
// band's Min.
type Band struct {
	Min      float64                `yaml:"min"`
	Material lca.InsulationMaterial `yaml:"material"`
}

// Bands is a list of bands in ascending Min order. Each boundary belongs
// to the band above it.
type Bands []Band

// RigidBands classify board and panel-core insulation.
var RigidBands = Bands{
	{NoInsulation, lca.RigidEPS},
	{4.5, lca.RigidXPS},
	{5.25, lca.RigidPolyisocyanurate},
	{7, lca.RigidUnknown},
}

// CavityBands classify fibrous and foamed insulation installed between
// framing when nothing but its properties is known.
var CavityBands = Bands{
	{NoInsulation, lca.BattFiberglass},
	{3.6, lca.BattRockwool},
	{ClosedCellThreshold, lca.SprayFoamClosedCell},
}

// Classify returns the material of the band containing rPerInch. Values
// below the first band, and NaN, yield lca.InsulationNone.
func (b Bands) Classify(rPerInch float64) lca.InsulationMaterial {
	material := lca.InsulationNone
	for _, band := range b {
		if rPerInch >= band.Min {
			material = band.Material
		}
	}
	return material
}

// Valid reports whether the bands are in strictly ascending order.
func (b Bands) Valid() bool {
	for i := 1; i < len(b); i++ {
		if b[i].Min <= b[i-1].Min {
			return false
		}
	}
	return true
}

// RPerInch divides an R-value by its thickness in inches.
func RPerInch(rValue, thickness float64) (float64, bool) {
	if thickness <= 0 {
		return 0, false
	}
	return rValue / thickness, true
}

// RFromConductivity computes an IP R-value from an SI thickness (m) and
// conductivity (W/m·K).
func RFromConductivity(thickness, conductivity float64) (float64, bool) {
	if thickness <= 0 || conductivity <= 0 {
		return 0, false
	}
	return thickness / conductivity * units.RSIToRIP, true
}

// Spray holds the R-per-inch of spray-applied insulation by product.
type Spray struct {
	UrethaneHighDensity float64 `yaml:"urethane_high_density"`
	UrethaneLowDensity  float64 `yaml:"urethane_low_density"`
	CellulosicOrGlass   float64 `yaml:"cellulosic_or_glass"`
}

// DefaultSpray is the spray table used unless configured otherwise.
var DefaultSpray = Spray{
	UrethaneHighDensity: SprayUrethaneHighDensity,
	UrethaneLowDensity:  SprayUrethaneLowDensity,
	CellulosicOrGlass:   SprayCellulosicOrGlass,
}

// RPerInch returns the R-per-inch of a spray-applied product from its
// identifier keywords and density. Urethane without a recognised density is
// treated as low density.
func (s Spray) RPerInch(urethane bool, density float64, hasDensity bool) float64 {
	if !urethane {
		return s.CellulosicOrGlass
	}
	if hasDensity && density >= HighDensitySpray {
		return s.UrethaneHighDensity
	}
	return s.UrethaneLowDensity
}

// SprayFoam splits spray foam into open and closed cell at threshold.
func SprayFoam(rPerInch, threshold float64) lca.InsulationMaterial {
	if rPerInch >= threshold {
		return lca.SprayFoamClosedCell
	}
	return lca.SprayFoamOpenCell
}
