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

// Package postflux calculates the right-hand side of the heat-flux-limited
// upstream temperature relation (Equation 2) in:
//
// Post, D. (1995). Calculations of Energy Losses due to Atomic Processes
// in Tokamaks with Applications to the ITER Divertor. Journal of Nuclear
// Materials 220-222.
//
// Given the atomic data for an impurity species, a background electron
// density, and an impurity residence time, the package integrates the
// species' specific cooling power over temperature and scales the result
// by the parallel thermal conductivity to give the conductive heat flux
// term as a function of upstream temperature.
//
// Note that compared to Kallenbach et al. (2013), "Impurity seeding for
// tokamak power exhaust: from present devices via ITER to DEMO", the Post
// calculation ignores the lowered conductivity due to higher Z_eff, which
// ends up lowering the total radiated power.
//
// The ionisation balance itself is not solved here. The equilibrium and
// time-dependent rate equation solvers and the radiated power models are
// external numerical engines injected through the interfaces below;
// package species/simpleatom provides an analytic stand-in.
package postflux

import "math"

// TauInf is the impurity residence time that signals instantaneous
// collisional radiative equilibrium.
var TauInf = math.Inf(1)

// PowerChannel selects a component of a species' specific cooling power.
type PowerChannel string

const (
	// ChannelTotal is all electron cooling power, including the energy
	// spent ionising.
	ChannelTotal PowerChannel = "total"

	// ChannelRadTotal is the radiated power only.
	ChannelRadTotal PowerChannel = "rad_total"
)

// AtomicData provides access to the atomic coefficient data for one
// impurity species. The data is read-only during a calculation and may
// be shared between concurrent calculations.
type AtomicData interface {
	// IonisationPotential returns the ionisation energy [eV] of the
	// given charge stage at the given electron temperature [eV] and
	// electron density [m-3].
	IonisationPotential(stage int, temperature, density float64) (float64, error)
}

// A Distribution is an ionisation stage distribution resolved over a
// temperature grid. It is produced by a solver and consumed by a
// PowerModel; this package does not look inside it beyond checking
// which grid it is aligned to.
type Distribution interface {
	// Temperatures returns the temperature grid [eV] the distribution
	// is defined on.
	Temperatures() []float64
}

// An EquilibriumSolver computes the ionisation stage distribution of a
// species in collisional radiative equilibrium.
type EquilibriumSolver interface {
	// StageDistribution returns the equilibrium distribution at each
	// temperature [eV] in the grid for electron density ne [m-3].
	StageDistribution(temperature []float64, ne float64) (Distribution, error)
}

// A DiffusionSolver advances the ionisation stage rate equations in
// time for a species with a finite residence time.
type DiffusionSolver interface {
	// Solve integrates the rate equations over the given time grid [s]
	// for the full temperature grid [eV], electron density ne [m-3]
	// and residence time tau [s], returning one distribution per time
	// sample in order.
	Solve(times, temperature []float64, ne, tau float64) ([]Distribution, error)
}

// A PowerModel evaluates the specific cooling power of an ionisation
// stage distribution.
type PowerModel interface {
	// SpecificPower returns Lz [W m3] for the requested channel,
	// aligned with the distribution's temperature grid.
	SpecificPower(d Distribution, ch PowerChannel) ([]float64, error)
}
