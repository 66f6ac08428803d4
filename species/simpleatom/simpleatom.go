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

// Package simpleatom contains a simplified analytic atomic model for a
// hydrogen-like impurity species. It fulfils the collaborator
// interfaces of github.com/plasmamodel/postflux without any tabulated
// rate coefficients, which makes it useful as a fast stand-in for a
// full collisional radiative dataset and as a test double.
package simpleatom

import (
	"fmt"
	"math"

	"github.com/plasmamodel/postflux"
)

// A Species is an analytic two-stage impurity model. The ionisation
// balance is reduced to a single bound-electron fraction per
// temperature which drops from 1 to 0 around half the first ionisation
// energy, the same heuristic the temperature range selection is built
// on.
type Species struct {
	// FirstIon is the first ionisation energy [eV].
	FirstIon float64

	// PeakPower sets the magnitude of the specific radiated power
	// [W m3].
	PeakPower float64

	// Width is the temperature width [eV] of the ionisation
	// transition.
	Width float64

	// TauIonise is the intrinsic ionisation timescale [s] used by the
	// relaxation model in Solve.
	TauIonise float64
}

// New returns a neon-like species.
func New() *Species {
	return &Species{
		FirstIon:  21.6,
		PeakPower: 1e-31,
		Width:     3,
		TauIonise: 1e-3,
	}
}

// NewIntegrator returns an integrator with all collaborators wired to
// this species.
func (s *Species) NewIntegrator() postflux.Integrator {
	return postflux.Integrator{
		Equilibrium: s,
		Diffusion:   s,
		Radiation:   Radiation{s},
		Cooling:     Cooling{s},
	}
}

// IonisationPotential returns the hydrogenic estimate
// FirstIon·(stage+1)². The temperature and density arguments are
// accepted for interface compatibility; the estimate does not depend
// on them.
func (s *Species) IonisationPotential(stage int, temperature, density float64) (float64, error) {
	if stage < 0 {
		return 0, fmt.Errorf("simpleatom: negative charge stage %d", stage)
	}
	z := float64(stage + 1)
	return s.FirstIon * (z * z), nil
}

// A Balance is the two-stage ionisation state of a Species over a
// temperature grid: the bound-electron fraction at each temperature,
// plus the equilibrium fraction it is relaxing toward.
type Balance struct {
	T []float64

	// Bound is the bound-electron fraction per temperature, in [0, 1].
	Bound []float64

	// Equilibrium is the bound fraction in collisional radiative
	// equilibrium. Bound never falls below it.
	Equilibrium []float64
}

// Temperatures returns the temperature grid [eV] the balance is
// defined on.
func (b *Balance) Temperatures() []float64 { return b.T }

// equilibriumBound is the equilibrium bound-electron fraction at
// temperature T [eV]: a logistic drop centered at half the first
// ionisation energy, where ionisation and recombination balance.
func (s *Species) equilibriumBound(T float64) float64 {
	return 1 / (1 + math.Exp((T-s.FirstIon/2)/s.Width))
}

// StageDistribution returns the collisional radiative equilibrium
// balance at each temperature in the grid. The density dependence of
// the real balance is dropped by this model; ne is only validated.
func (s *Species) StageDistribution(temperature []float64, ne float64) (postflux.Distribution, error) {
	if !(ne > 0) {
		return nil, fmt.Errorf("simpleatom: electron density must be positive, got %g m-3", ne)
	}
	b := &Balance{
		T:           append([]float64(nil), temperature...),
		Bound:       make([]float64, len(temperature)),
		Equilibrium: make([]float64, len(temperature)),
	}
	for i, T := range temperature {
		b.Bound[i] = s.equilibriumBound(T)
		b.Equilibrium[i] = b.Bound[i]
	}
	return b, nil
}

// Solve relaxes the balance from a fully bound initial state toward
// equilibrium. Residence losses replenish neutrals at rate 1/tau while
// ionisation burns them off at rate 1/TauIonise, so the bound fraction
// follows
//
//	b(t) = b∞ + (1-b∞)·exp(-t·(1/TauIonise + 1/tau))
//
// with the stationary point b∞ = (beq·tau + TauIonise)/(tau + TauIonise).
// As tau grows, b∞ approaches the equilibrium fraction beq.
func (s *Species) Solve(times, temperature []float64, ne, tau float64) ([]postflux.Distribution, error) {
	if !(ne > 0) {
		return nil, fmt.Errorf("simpleatom: electron density must be positive, got %g m-3", ne)
	}
	if !(tau > 0) || math.IsInf(tau, 1) {
		return nil, fmt.Errorf("simpleatom: residence time must be positive and finite, got %g s", tau)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("simpleatom: empty time grid")
	}
	rate := 1/s.TauIonise + 1/tau
	out := make([]postflux.Distribution, len(times))
	for k, t := range times {
		if t < 0 {
			return nil, fmt.Errorf("simpleatom: negative time sample %g s", t)
		}
		b := &Balance{
			T:           append([]float64(nil), temperature...),
			Bound:       make([]float64, len(temperature)),
			Equilibrium: make([]float64, len(temperature)),
		}
		decay := math.Exp(-t * rate)
		for i, T := range temperature {
			beq := s.equilibriumBound(T)
			binf := (beq*tau + s.TauIonise) / (tau + s.TauIonise)
			b.Bound[i] = binf + (1-binf)*decay
			b.Equilibrium[i] = beq
		}
		out[k] = b
	}
	return out, nil
}

// radiated is the specific radiated power [W m3] of a balance at grid
// index i: line radiation from bound electrons with a soft high
// temperature rolloff.
func (s *Species) radiated(b *Balance, i int) float64 {
	T := b.T[i]
	return s.PeakPower * b.Bound[i] * T / (T + s.FirstIon)
}

// ionising is the power [W m3] spent ionising at grid index i. It is
// proportional to the departure from equilibrium, so it vanishes once
// the balance has relaxed.
func (s *Species) ionising(b *Balance, i int) float64 {
	return 0.5 * s.PeakPower * (b.Bound[i] - b.Equilibrium[i])
}

// Radiation evaluates the specific radiated power of an equilibrium
// balance. Both channels report the radiated power: in equilibrium the
// net ionisation vanishes.
type Radiation struct {
	S *Species
}

// SpecificPower returns Lz [W m3] aligned with the balance's
// temperature grid.
func (r Radiation) SpecificPower(d postflux.Distribution, ch postflux.PowerChannel) ([]float64, error) {
	b, err := balanceOf(d, ch)
	if err != nil {
		return nil, err
	}
	lz := make([]float64, len(b.T))
	for i := range b.T {
		lz[i] = r.S.radiated(b, i)
	}
	return lz, nil
}

// Cooling evaluates the specific electron cooling power of a
// time-evolved balance. The total channel adds the power spent
// ionising on top of the radiated power; the rad_total channel reports
// the radiated power only.
type Cooling struct {
	S *Species
}

// SpecificPower returns Lz [W m3] aligned with the balance's
// temperature grid.
func (c Cooling) SpecificPower(d postflux.Distribution, ch postflux.PowerChannel) ([]float64, error) {
	b, err := balanceOf(d, ch)
	if err != nil {
		return nil, err
	}
	lz := make([]float64, len(b.T))
	for i := range b.T {
		lz[i] = c.S.radiated(b, i)
		if ch == postflux.ChannelTotal {
			lz[i] += c.S.ionising(b, i)
		}
	}
	return lz, nil
}

// balanceOf checks that a distribution was produced by this package
// and that the channel is one this model knows about.
func balanceOf(d postflux.Distribution, ch postflux.PowerChannel) (*Balance, error) {
	switch ch {
	case postflux.ChannelTotal, postflux.ChannelRadTotal:
	default:
		return nil, fmt.Errorf("simpleatom: invalid power channel %q; valid options are %q and %q",
			ch, postflux.ChannelTotal, postflux.ChannelRadTotal)
	}
	b, ok := d.(*Balance)
	if !ok {
		return nil, fmt.Errorf("simpleatom: unsupported distribution type %T", d)
	}
	return b, nil
}
