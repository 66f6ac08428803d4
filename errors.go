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
	"errors"
	"fmt"
	"math"
)

// Input validation errors.
var (
	// ErrTemperatureGrid indicates a temperature grid that is not
	// strictly ascending and positive, or has fewer than two points.
	ErrTemperatureGrid = errors.New("postflux: temperature grid must be strictly ascending, positive and have at least 2 points")

	// ErrDensity indicates a non-positive electron density.
	ErrDensity = errors.New("postflux: electron density must be positive")

	// ErrResidenceTime indicates a non-positive or NaN residence time.
	ErrResidenceTime = errors.New("postflux: impurity residence time must be positive")

	// ErrPowerChannel indicates an unrecognized power channel name.
	ErrPowerChannel = errors.New("postflux: unrecognized power channel")

	// ErrPowerLength indicates a specific power array that is not
	// aligned with the temperature grid.
	ErrPowerLength = errors.New("postflux: specific power length does not match temperature grid")
)

// Pipeline stages reported by SolverError.
const (
	StageEquilibrium = "equilibrium"
	StageDiffusion   = "diffusion"
	StageRadiation   = "radiation"
	StageCooling     = "cooling"
)

// A SolverError is a failure inside one of the injected numerical
// collaborators. Stage records which part of the pipeline the failure
// came from, since the equilibrium and diffusion branches have
// different failure characteristics.
type SolverError struct {
	Stage string
	Err   error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("postflux: %s solver: %v", e.Stage, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// validTemperatures checks that a temperature grid is usable for the
// integral: square root and logarithm operations are undefined on
// non-positive values, and the cumulative trapezoid requires strictly
// ascending samples.
func validTemperatures(temperature []float64) error {
	if len(temperature) < 2 {
		return fmt.Errorf("%w: got %d points", ErrTemperatureGrid, len(temperature))
	}
	// NaN compares false against everything, so the ascending check
	// below cannot catch it; non-finite samples are rejected up front.
	for i, T := range temperature {
		if math.IsNaN(T) || math.IsInf(T, 0) {
			return fmt.Errorf("%w: T[%d] = %g eV is not finite", ErrTemperatureGrid, i, T)
		}
	}
	if temperature[0] <= 0 {
		return fmt.Errorf("%w: T[0] = %g eV", ErrTemperatureGrid, temperature[0])
	}
	for i := 1; i < len(temperature); i++ {
		if temperature[i] <= temperature[i-1] {
			return fmt.Errorf("%w: T[%d] = %g eV follows T[%d] = %g eV",
				ErrTemperatureGrid, i, temperature[i], i-1, temperature[i-1])
		}
	}
	return nil
}
