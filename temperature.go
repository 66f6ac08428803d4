/*
Copyright © 2026 the PostFlux authors.
This file is part of PostFlux.

PostFlux is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PostFlux is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PostFlux.  If not, see <http://www.gnu.org/licenses/>.
*/

package postflux

import (
	"fmt"

	"github.com/gonum/floats"
)

// RangeConfig holds the parameters for choosing an integration
// temperature range.
type RangeConfig struct {
	// Top is the upper end of the range [eV].
	Top float64

	// Points is the number of grid points.
	Points int

	// RefTemperature [eV] and RefDensity [m-3] are the reference
	// condition at which the first ionisation potential is looked up.
	// They are only used for that lookup.
	RefTemperature float64
	RefDensity     float64
}

// DefaultRangeConfig returns the range parameters used by Post: a top
// temperature of 1000 eV and 25 grid points, with the first ionisation
// potential evaluated at 10 eV and 1e19 m-3.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		Top:            1000,
		Points:         25,
		RefTemperature: 10,
		RefDensity:     1e19,
	}
}

// TemperatureRange chooses the temperature grid to integrate over for a
// species. We expect recombination at around half the first ionisation
// energy, so the grid runs logarithmically from there up to cfg.Top.
func TemperatureRange(ad AtomicData, cfg RangeConfig) ([]float64, error) {
	firstIon, err := ad.IonisationPotential(0, cfg.RefTemperature, cfg.RefDensity)
	if err != nil {
		return nil, fmt.Errorf("postflux: first ionisation potential: %w", err)
	}
	if firstIon <= 0 {
		return nil, fmt.Errorf("postflux: first ionisation potential must be positive, got %g eV", firstIon)
	}
	lower := firstIon / 2
	if cfg.Top <= lower {
		return nil, fmt.Errorf("postflux: top temperature %g eV must exceed half the first ionisation potential (%g eV)",
			cfg.Top, lower)
	}
	if cfg.Points < 2 {
		return nil, fmt.Errorf("postflux: temperature range needs at least 2 points, got %d", cfg.Points)
	}
	return floats.LogSpan(make([]float64, cfg.Points), lower, cfg.Top), nil
}
