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

package simpleatom

import (
	"fmt"
	"math"

	"github.com/plasmamodel/postflux"
)

// Flat is a degenerate species whose specific power is the constant C
// at every temperature, in every channel and in both regimes. The
// power loss integral then has the closed form
//
//	∫_{T0}^{T} C·√Te dTe = C·(2/3)·(T^3/2 - T0^3/2)
//
// which makes it useful for checking quadrature against an exact
// answer.
type Flat struct {
	// C is the specific power [W m3].
	C float64

	// FirstIon is the first ionisation energy [eV] reported for stage
	// 0, for use with the temperature range selection.
	FirstIon float64
}

// Integral returns the closed form value of the power loss integral
// from t0 up to t.
func (f Flat) Integral(t0, t float64) float64 {
	return f.C * (2.0 / 3.0) * (math.Pow(t, 1.5) - math.Pow(t0, 1.5))
}

// NewIntegrator returns an integrator with all collaborators wired to
// this species.
func (f Flat) NewIntegrator() postflux.Integrator {
	return postflux.Integrator{
		Equilibrium: f,
		Diffusion:   f,
		Radiation:   f,
		Cooling:     f,
	}
}

// IonisationPotential returns FirstIon for any stage and condition.
func (f Flat) IonisationPotential(stage int, temperature, density float64) (float64, error) {
	if stage < 0 {
		return 0, fmt.Errorf("simpleatom: negative charge stage %d", stage)
	}
	return f.FirstIon, nil
}

type flatBalance struct {
	t []float64
}

func (b flatBalance) Temperatures() []float64 { return b.t }

// StageDistribution returns a placeholder balance; Flat's power does
// not depend on the ionisation state.
func (f Flat) StageDistribution(temperature []float64, ne float64) (postflux.Distribution, error) {
	if !(ne > 0) {
		return nil, fmt.Errorf("simpleatom: electron density must be positive, got %g m-3", ne)
	}
	return flatBalance{t: append([]float64(nil), temperature...)}, nil
}

// Solve returns the same placeholder balance at every time sample.
func (f Flat) Solve(times, temperature []float64, ne, tau float64) ([]postflux.Distribution, error) {
	if !(ne > 0) {
		return nil, fmt.Errorf("simpleatom: electron density must be positive, got %g m-3", ne)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("simpleatom: empty time grid")
	}
	out := make([]postflux.Distribution, len(times))
	for k := range times {
		out[k] = flatBalance{t: append([]float64(nil), temperature...)}
	}
	return out, nil
}

// SpecificPower returns C at every temperature for either channel.
func (f Flat) SpecificPower(d postflux.Distribution, ch postflux.PowerChannel) ([]float64, error) {
	switch ch {
	case postflux.ChannelTotal, postflux.ChannelRadTotal:
	default:
		return nil, fmt.Errorf("simpleatom: invalid power channel %q; valid options are %q and %q",
			ch, postflux.ChannelTotal, postflux.ChannelRadTotal)
	}
	b, ok := d.(flatBalance)
	if !ok {
		return nil, fmt.Errorf("simpleatom: unsupported distribution type %T", d)
	}
	lz := make([]float64, len(b.t))
	for i := range lz {
		lz[i] = f.C
	}
	return lz, nil
}
