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
	"math"
	"testing"

	"github.com/gonum/floats"

	"github.com/plasmamodel/postflux"
)

// The model must satisfy every collaborator contract of the pipeline.
var (
	_ postflux.AtomicData        = &Species{}
	_ postflux.EquilibriumSolver = &Species{}
	_ postflux.DiffusionSolver   = &Species{}
	_ postflux.PowerModel        = Radiation{}
	_ postflux.PowerModel        = Cooling{}

	_ postflux.AtomicData        = Flat{}
	_ postflux.EquilibriumSolver = Flat{}
	_ postflux.DiffusionSolver   = Flat{}
	_ postflux.PowerModel        = Flat{}
)

const ne = 1e19 // m-3

func testTemperatures() []float64 {
	return floats.LogSpan(make([]float64, 30), 2, 1000)
}

// Test the hydrogenic scaling of the ionisation potential.
func TestIonisationPotential(t *testing.T) {
	s := New()
	for stage, want := range []float64{s.FirstIon, 4 * s.FirstIon, 9 * s.FirstIon} {
		have, err := s.IonisationPotential(stage, 10, ne)
		if err != nil {
			t.Fatal(err)
		}
		if have != want {
			t.Errorf("stage %d: have %g eV, want %g eV", stage, have, want)
		}
	}
	if _, err := s.IonisationPotential(-1, 10, ne); err == nil {
		t.Error("no error for a negative charge stage")
	}
}

// Test that the equilibrium bound fraction is a proper fraction,
// decreases with temperature, and crosses over around half the first
// ionisation energy.
func TestEquilibriumBalance(t *testing.T) {
	s := New()
	temps := testTemperatures()
	d, err := s.StageDistribution(temps, ne)
	if err != nil {
		t.Fatal(err)
	}
	b := d.(*Balance)

	for i, f := range b.Bound {
		if f < 0 || f > 1 {
			t.Errorf("bound fraction %g at %g eV is outside [0, 1]", f, temps[i])
		}
		if i > 0 && f > b.Bound[i-1] {
			t.Errorf("bound fraction increases with temperature at %g eV", temps[i])
		}
	}
	if b.Bound[0] < 0.9 {
		t.Errorf("bound fraction at %g eV is %g; the species should still be neutral", temps[0], b.Bound[0])
	}
	last := len(temps) - 1
	if b.Bound[last] > 0.1 {
		t.Errorf("bound fraction at %g eV is %g; the species should be stripped", temps[last], b.Bound[last])
	}

	if _, err := s.StageDistribution(temps, 0); err == nil {
		t.Error("no error for zero electron density")
	}
}

// Test that Solve starts fully bound, relaxes monotonically toward the
// equilibrium fraction, and never undershoots it.
func TestSolveRelaxation(t *testing.T) {
	s := New()
	temps := testTemperatures()
	times := []float64{0, 1e-4, 1e-3, 1e-2, 1e-1}
	const tau = 1e-2

	yy, err := s.Solve(times, temps, ne, tau)
	if err != nil {
		t.Fatal(err)
	}
	if len(yy) != len(times) {
		t.Fatalf("have %d distributions for %d time samples", len(yy), len(times))
	}

	first := yy[0].(*Balance)
	for i, f := range first.Bound {
		if math.Abs(f-1) > 1e-12 {
			t.Errorf("initial bound fraction at %g eV is %g, want 1", temps[i], f)
		}
	}
	for k := 1; k < len(yy); k++ {
		prev := yy[k-1].(*Balance)
		cur := yy[k].(*Balance)
		for i := range temps {
			if cur.Bound[i] > prev.Bound[i] {
				t.Errorf("bound fraction rises between t=%g and t=%g at %g eV",
					times[k-1], times[k], temps[i])
			}
			if cur.Bound[i] < cur.Equilibrium[i] {
				t.Errorf("bound fraction %g undershoots equilibrium %g at %g eV",
					cur.Bound[i], cur.Equilibrium[i], temps[i])
			}
		}
	}

	if _, err := s.Solve(times, temps, ne, math.Inf(1)); err == nil {
		t.Error("no error for an infinite residence time")
	}
	if _, err := s.Solve(nil, temps, ne, tau); err == nil {
		t.Error("no error for an empty time grid")
	}
}

// Test the cooling channels: the total channel includes the ionisation
// term for an unrelaxed balance and collapses onto the radiated
// channel once the balance is in equilibrium.
func TestCoolingChannels(t *testing.T) {
	s := New()
	temps := testTemperatures()
	cooling := Cooling{S: s}

	yy, err := s.Solve([]float64{0, 1e-4}, temps, ne, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	early := yy[len(yy)-1]
	total, err := cooling.SpecificPower(early, postflux.ChannelTotal)
	if err != nil {
		t.Fatal(err)
	}
	rad, err := cooling.SpecificPower(early, postflux.ChannelRadTotal)
	if err != nil {
		t.Fatal(err)
	}
	exceeds := false
	for i := range temps {
		if total[i] < rad[i] {
			t.Errorf("total cooling %g is below radiated %g at %g eV", total[i], rad[i], temps[i])
		}
		if total[i] > rad[i] {
			exceeds = true
		}
	}
	if !exceeds {
		t.Error("total cooling never exceeds radiated cooling for an unrelaxed balance")
	}

	eq, err := s.StageDistribution(temps, ne)
	if err != nil {
		t.Fatal(err)
	}
	eqTotal, err := cooling.SpecificPower(eq, postflux.ChannelTotal)
	if err != nil {
		t.Fatal(err)
	}
	eqRad, err := Radiation{S: s}.SpecificPower(eq, postflux.ChannelTotal)
	if err != nil {
		t.Fatal(err)
	}
	for i := range temps {
		if eqTotal[i] != eqRad[i] {
			t.Errorf("equilibrium cooling %g differs from radiated power %g at %g eV",
				eqTotal[i], eqRad[i], temps[i])
		}
	}
}

// Test channel and distribution type checking in the power models.
func TestPowerModelValidation(t *testing.T) {
	s := New()
	temps := testTemperatures()
	d, err := s.StageDistribution(temps, ne)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := (Radiation{S: s}).SpecificPower(d, "line"); err == nil {
		t.Error("no error for an unknown power channel")
	}
	if _, err := (Flat{C: 1}).SpecificPower(d, postflux.ChannelTotal); err == nil {
		t.Error("no error for a foreign distribution type")
	}
}

// Test Flat: constant power everywhere and a closed form that matches
// the analytic antiderivative.
func TestFlat(t *testing.T) {
	const testTolerance = 1e-12

	f := Flat{C: 3e-32, FirstIon: 20}
	temps := testTemperatures()
	d, err := f.StageDistribution(temps, ne)
	if err != nil {
		t.Fatal(err)
	}
	lz, err := f.SpecificPower(d, postflux.ChannelRadTotal)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range lz {
		if v != f.C {
			t.Errorf("specific power at %g eV is %g, want %g", temps[i], v, f.C)
		}
	}

	want := f.C * 2 / 3 * (math.Pow(100, 1.5) - math.Pow(25, 1.5))
	have := f.Integral(25, 100)
	if 2*math.Abs(have-want)/math.Abs(have+want) > testTolerance {
		t.Errorf("closed form integral is %g, want %g", have, want)
	}
}
