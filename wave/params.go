// SPDX-License-Identifier: MIT

package wave

import (
	"fmt"
	"math"
)

// Reference parameters: 1 mm slit spacing, 500 nm light, screen 1 m away,
// 2 cm wide, sampled at 100 points.
const (
	DefaultSlitDistance   = 0.001
	DefaultWavelength     = 500e-9
	DefaultScreenDistance = 1.0
	DefaultScreenWidth    = 0.02
	DefaultNumPoints      = 100

	minNumPoints = 2
)

// Params describes the two-slit geometry. All lengths share one unit (metres
// in the reference setup).
type Params struct {
	SlitDistance   float64 // d, centre-to-centre slit spacing
	Wavelength     float64 // λ
	ScreenDistance float64 // L, perpendicular source-line → screen distance
	ScreenWidth    float64 // w, sampled span is [-w/2, +w/2]
	NumPoints      int     // N, number of screen samples
}

// DefaultParams returns the reference parameters.
func DefaultParams() Params {
	return Params{
		SlitDistance:   DefaultSlitDistance,
		Wavelength:     DefaultWavelength,
		ScreenDistance: DefaultScreenDistance,
		ScreenWidth:    DefaultScreenWidth,
		NumPoints:      DefaultNumPoints,
	}
}

// Validate reports the first parameter outside the physical domain.
func (p Params) Validate() error {
	if err := positive("SlitDistance", p.SlitDistance); err != nil {
		return err
	}
	if err := positive("Wavelength", p.Wavelength); err != nil {
		return err
	}
	if err := positive("ScreenDistance", p.ScreenDistance); err != nil {
		return err
	}
	if math.IsNaN(p.ScreenWidth) || math.IsInf(p.ScreenWidth, 0) || p.ScreenWidth < 0 {
		return fmt.Errorf("ScreenWidth=%g must be finite and >= 0: %w", p.ScreenWidth, ErrDomain)
	}
	if p.NumPoints < minNumPoints {
		return fmt.Errorf("NumPoints=%d must be >= %d: %w", p.NumPoints, minNumPoints, ErrDomain)
	}

	return nil
}

// WaveNumber returns k = 2π/λ.
func (p Params) WaveNumber() float64 { return 2 * math.Pi / p.Wavelength }

// FringeSpacing returns the small-angle bright-fringe spacing λL/d.
func (p Params) FringeSpacing() float64 { return p.Wavelength * p.ScreenDistance / p.SlitDistance }

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s=%g must be finite and > 0: %w", name, v, ErrDomain)
	}

	return nil
}
