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
	"math"

	"github.com/gonum/floats"
)

// Defaults for the diffusion branch time grid. There is no stated
// convergence criterion for this discretization; it reproduces the
// choice in Post's calculation.
const (
	defaultTimeFloor      = 1e-7 // s
	defaultTimePoints     = 40
	defaultTimeSpanFactor = 10 // multiple of tau at the last sample
)

// An Integrator computes the cumulative power loss integral
//
//	∫_{T[0]}^{T} Lz(Te) √Te dTe
//
// for one impurity species. Lz is given in W m3 so the result has
// units of W m3 eV^1/2. The integral is anchored at T[0], the
// temperature where recombination is expected to set in, not at zero.
//
// An Integrator holds no state across calls; independent calls may run
// concurrently as long as the collaborators tolerate concurrent reads.
type Integrator struct {
	// Equilibrium solves for the stage distribution in collisional
	// radiative equilibrium. It is used when tau is infinite.
	Equilibrium EquilibriumSolver

	// Diffusion advances the stage rate equations for a finite
	// residence time. It is used when tau is finite.
	Diffusion DiffusionSolver

	// Radiation evaluates the specific radiated power of an
	// equilibrium distribution. The equilibrium branch always reads
	// its total channel.
	Radiation PowerModel

	// Cooling evaluates the specific electron cooling power of a
	// time-evolved distribution. The diffusion branch reads the
	// caller's channel from it.
	Cooling PowerModel

	// TimeFloor [s], TimePoints and TimeSpanFactor control the
	// diffusion branch time grid: TimePoints samples spaced
	// logarithmically from TimeFloor to TimeSpanFactor*tau and then
	// shifted so the first sample is exactly zero. Zero values select
	// the defaults 1e-7 s, 40 and 10.
	TimeFloor      float64
	TimePoints     int
	TimeSpanFactor float64
}

// Integrate computes the cumulative integral of Lz(T)·√T over the
// temperature grid [eV] at electron density ne [m-3]. An infinite tau
// (TauInf) selects the collisional radiative equilibrium solver; a
// finite tau [s] selects the time-dependent solver, evaluated at the
// last sample of the time grid. The power channel is only honored in
// the finite tau case; in equilibrium the net ionisation vanishes and
// the total channel is always used.
//
// The result is aligned with the temperature grid and its first
// element is always zero.
func (in *Integrator) Integrate(temperature []float64, ne, tau float64, ch PowerChannel) ([]float64, error) {
	if err := validTemperatures(temperature); err != nil {
		return nil, err
	}
	if !(ne > 0) {
		return nil, fmt.Errorf("%w: got %g m-3", ErrDensity, ne)
	}
	switch ch {
	case ChannelTotal, ChannelRadTotal:
	default:
		return nil, fmt.Errorf("%w: %q (valid options are %q and %q)",
			ErrPowerChannel, ch, ChannelTotal, ChannelRadTotal)
	}

	var lz []float64
	if math.IsInf(tau, 1) {
		if in.Equilibrium == nil || in.Radiation == nil {
			return nil, fmt.Errorf("postflux: no equilibrium solver or radiation model configured")
		}
		y, err := in.Equilibrium.StageDistribution(temperature, ne)
		if err != nil {
			return nil, &SolverError{Stage: StageEquilibrium, Err: err}
		}
		lz, err = in.Radiation.SpecificPower(y, ChannelTotal)
		if err != nil {
			return nil, &SolverError{Stage: StageRadiation, Err: err}
		}
	} else {
		if in.Diffusion == nil || in.Cooling == nil {
			return nil, fmt.Errorf("postflux: no diffusion solver or cooling model configured")
		}
		times, err := in.times(tau)
		if err != nil {
			return nil, err
		}
		yy, err := in.Diffusion.Solve(times, temperature, ne, tau)
		if err != nil {
			return nil, &SolverError{Stage: StageDiffusion, Err: err}
		}
		if len(yy) == 0 {
			return nil, &SolverError{Stage: StageDiffusion, Err: fmt.Errorf("no stage distributions returned")}
		}
		lz, err = in.Cooling.SpecificPower(yy[len(yy)-1], ch)
		if err != nil {
			return nil, &SolverError{Stage: StageCooling, Err: err}
		}
	}
	if len(lz) != len(temperature) {
		return nil, fmt.Errorf("%w: %d power values for %d temperatures",
			ErrPowerLength, len(lz), len(temperature))
	}

	integrand := make([]float64, len(temperature))
	for i, T := range temperature {
		integrand[i] = lz[i] * math.Sqrt(T)
	}
	return cumTrapz(temperature, integrand), nil
}

// times builds the diffusion branch time grid for residence time tau.
func (in *Integrator) times(tau float64) ([]float64, error) {
	if !(tau > 0) {
		return nil, fmt.Errorf("%w: got %g s", ErrResidenceTime, tau)
	}
	floor := in.TimeFloor
	if floor <= 0 {
		floor = defaultTimeFloor
	}
	n := in.TimePoints
	if n == 0 {
		n = defaultTimePoints
	}
	if n < 2 {
		return nil, fmt.Errorf("postflux: time grid needs at least 2 points, got %d", n)
	}
	span := in.TimeSpanFactor
	if span <= 0 {
		span = defaultTimeSpanFactor
	}
	if span*tau <= floor {
		return nil, fmt.Errorf("%w: %g s gives a time grid no longer than its floor %g s",
			ErrResidenceTime, tau, floor)
	}
	t := floats.LogSpan(make([]float64, n), floor, span*tau)
	floats.AddConst(-t[0], t)
	return t, nil
}

// cumTrapz returns the cumulative trapezoidal integral of f over the
// sample points x, anchored so the first element is zero.
func cumTrapz(x, f []float64) []float64 {
	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = out[i-1] + 0.5*(x[i]-x[i-1])*(f[i]+f[i-1])
	}
	return out
}
