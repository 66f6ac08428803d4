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
)

// defaultKappa0 is the normalized parallel thermal conductivity Post
// appears to use: kappa_0 = 31000/ln(Λ) with ln(Λ) = 9.92.
const defaultKappa0 = 3125

// ergBridge converts the integral from the W m3 convention to the
// erg cm3 s-1 convention of Post's formula; 1 erg cm3 s-1 = 1e-13 W m3.
const ergBridge = 1e13

// Post evaluates the right-hand side of Post's equation (2) for one
// impurity species.
type Post struct {
	Integrator

	// Kappa0 is the normalized parallel thermal conductivity
	// coefficient. The zero value selects Post's 3125.
	Kappa0 float64
}

// RHS returns the scaled conductive heat flux term at each upstream
// temperature in the grid [eV], for electron density ne [m-3] and
// residence time tau [s] (TauInf for equilibrium). The result is
// non-negative and, for non-negative Lz, non-decreasing in T.
func (p *Post) RHS(temperature []float64, ne, tau float64, ch PowerChannel) ([]float64, error) {
	kappa0 := p.Kappa0
	if kappa0 == 0 {
		kappa0 = defaultKappa0
	}
	if kappa0 < 0 {
		return nil, fmt.Errorf("postflux: kappa0 must be non-negative, got %g (zero selects the default %g)", kappa0, float64(defaultKappa0))
	}
	lzint, err := p.Integrate(temperature, ne, tau, ch)
	if err != nil {
		return nil, err
	}
	kappaFactor := math.Sqrt(kappa0/defaultKappa0) * 2.5e5
	rhs := make([]float64, len(temperature))
	for i, T := range temperature {
		if lzint[i] < 0 {
			return nil, fmt.Errorf("postflux: cumulative integral is negative (%g) at T = %g eV; specific power must be non-negative",
				lzint[i], T)
		}
		rhs[i] = kappaFactor * math.Sqrt(T*T*(lzint[i]*ergBridge))
	}
	return rhs, nil
}
