package classify

import (
	"fmt"

	"github.com/alexiusacademia/golca/internal/lca"
	"github.com/alexiusacademia/golca/internal/thermal"
)

// Defaults holds the engineering values assumed where a model cannot
// supply real data. They may be overridden from a YAML file.
type Defaults struct {
	// Mass systems
	CompressiveStrength lca.CompressiveStrength `yaml:"compressive_strength"`
	Reinforcement       lca.Reinforcement       `yaml:"reinforcement"`

	// SIPSkinAllowance is the combined thickness of both SIP facings in
	// inches, subtracted from the panel thickness to get the core.
	SIPSkinAllowance float64 `yaml:"sip_skin_allowance"`

	ComplianceRPerInch  float64       `yaml:"compliance_r_per_inch"`
	ClosedCellThreshold float64       `yaml:"closed_cell_threshold"`
	Spray               thermal.Spray `yaml:"spray"`
	RigidBands          thermal.Bands `yaml:"rigid_bands"`
	CavityBands         thermal.Bands `yaml:"cavity_bands"`
}

// NewDefaults returns the built-in defaults.
func NewDefaults() Defaults {
	return Defaults{
		CompressiveStrength: lca.Fc3000To4000,
		Reinforcement:       lca.RebarNo4,
		SIPSkinAllowance:    0.875,
		ComplianceRPerInch:  thermal.ComplianceRPerInch,
		ClosedCellThreshold: thermal.ClosedCellThreshold,
		Spray:               thermal.DefaultSpray,
		RigidBands:          append(thermal.Bands(nil), thermal.RigidBands...),
		CavityBands:         append(thermal.Bands(nil), thermal.CavityBands...),
	}
}

// Validate checks that the defaults can drive a classification
func (d *Defaults) Validate() error {
	if d.SIPSkinAllowance < 0 {
		return &ValidationError{"SIP skin allowance must not be negative"}
	}
	if d.ComplianceRPerInch <= 0 {
		return &ValidationError{"compliance R-per-inch must be positive"}
	}
	if d.ClosedCellThreshold <= 0 {
		return &ValidationError{"closed cell threshold must be positive"}
	}
	if d.Spray.UrethaneHighDensity <= 0 || d.Spray.UrethaneLowDensity <= 0 || d.Spray.CellulosicOrGlass <= 0 {
		return &ValidationError{"spray R-per-inch values must be positive"}
	}
	if len(d.RigidBands) == 0 || !d.RigidBands.Valid() {
		return &ValidationError{"rigid bands must be non-empty and ascending"}
	}
	if len(d.CavityBands) == 0 || !d.CavityBands.Valid() {
		return &ValidationError{"cavity bands must be non-empty and ascending"}
	}
	if d.CompressiveStrength == "" {
		return &ValidationError{"compressive strength must be set"}
	}
	if d.Reinforcement == "" {
		return &ValidationError{fmt.Sprintf("reinforcement must be set, e.g. %s", lca.RebarNo4)}
	}
	return nil
}

// ValidationError represents an invalid set of defaults
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
