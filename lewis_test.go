/*
 * lewis_test.go
 *
 * Copyright 2024 The golewis developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package lewis

import "testing"

func TestWater(Te *testing.T) {
	r, err := Solve("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	g := r.Geometry
	if g.X != 2 || g.E != 2 {
		Te.Errorf("H2O: got X=%d E=%d, want X=2 E=2", g.X, g.E)
	}
	if g.Notation != "AX2E2" || g.Shape != "Bent" || g.Angle != "<109.5" || g.Hybridization != "sp3" {
		Te.Errorf("H2O: wrong geometry: %+v", g)
	}
	for label, charge := range r.MostOptimal.Charges {
		if charge != 0 {
			Te.Errorf("H2O: formal charge %d on %s, want 0", charge, label)
		}
	}
	if len(r.ResonanceForms) != 0 {
		Te.Errorf("H2O: got %d resonance forms, want none", len(r.ResonanceForms))
	}
}

func TestCarbonate(Te *testing.T) {
	r, err := Solve("CO3-2")
	if err != nil {
		Te.Fatal(err)
	}
	s := r.MostOptimal.Structure
	doubles, singles := 0, 0
	for _, b := range s.Bonds {
		switch b.Order {
		case 2:
			doubles++
			if got := r.MostOptimal.Charges[b.At2.Label()]; got != 0 {
				Te.Errorf("CO3-2: double-bonded %s has charge %d, want 0", b.At2.Label(), got)
			}
		case 1:
			singles++
			if got := r.MostOptimal.Charges[b.At2.Label()]; got != -1 {
				Te.Errorf("CO3-2: single-bonded %s has charge %d, want -1", b.At2.Label(), got)
			}
		default:
			Te.Errorf("CO3-2: unexpected bond order %d", b.Order)
		}
	}
	if doubles != 1 || singles != 2 {
		Te.Errorf("CO3-2: got %d double and %d single bonds, want 1 and 2", doubles, singles)
	}
	if got := r.MostOptimal.Charges[s.Central.Label()]; got != 0 {
		Te.Errorf("CO3-2: central charge %d, want 0", got)
	}
	if len(r.ResonanceForms) < 2 {
		Te.Errorf("CO3-2: got %d resonance forms, want at least 2", len(r.ResonanceForms))
	}
	g := r.Geometry
	if g.X != 3 || g.E != 0 || g.Shape != "Trigonal Planar" || g.Angle != "120" || g.Hybridization != "sp2" {
		Te.Errorf("CO3-2: wrong geometry: %+v", g)
	}
}

func TestSulfurHexafluoride(Te *testing.T) {
	r, err := Solve("SF6")
	if err != nil {
		Te.Fatal(err)
	}
	for _, b := range r.MostOptimal.Structure.Bonds {
		if b.Order != 1 {
			Te.Errorf("SF6: bond to %s has order %d, want 1", b.At2.Label(), b.Order)
		}
	}
	for label, charge := range r.MostOptimal.Charges {
		if charge != 0 {
			Te.Errorf("SF6: formal charge %d on %s, want 0", charge, label)
		}
	}
	g := r.Geometry
	if g.X != 6 || g.E != 0 || g.Shape != "Octahedral" || g.Angle != "90" || g.Hybridization != "sp3d2" {
		Te.Errorf("SF6: wrong geometry: %+v", g)
	}
}

func TestCarbonDioxide(Te *testing.T) {
	r, err := Solve("CO2")
	if err != nil {
		Te.Fatal(err)
	}
	for _, b := range r.MostOptimal.Structure.Bonds {
		if b.Order != 2 {
			Te.Errorf("CO2: bond to %s has order %d, want 2", b.At2.Label(), b.Order)
		}
	}
	if len(r.ResonanceForms) != 0 {
		Te.Errorf("CO2: got %d resonance forms, want none", len(r.ResonanceForms))
	}
	g := r.Geometry
	if g.Notation != "AX2" || g.Shape != "Linear" || g.Angle != "180" || g.Hybridization != "sp" {
		Te.Errorf("CO2: wrong geometry: %+v", g)
	}
}

func TestOzoneResonance(Te *testing.T) {
	r, err := Solve("O3")
	if err != nil {
		Te.Fatal(err)
	}
	if len(r.ResonanceForms) != 1 {
		Te.Fatalf("O3: got %d resonance forms, want 1", len(r.ResonanceForms))
	}
	g := r.Geometry
	if g.Notation != "AX2E" || g.Shape != "Bent" {
		Te.Errorf("O3: wrong geometry: %+v", g)
	}
}

func TestAmmonium(Te *testing.T) {
	r, err := Solve("NH4+")
	if err != nil {
		Te.Fatal(err)
	}
	if got := r.MostOptimal.Charges["N0"]; got != 1 {
		Te.Errorf("NH4+: nitrogen charge %d, want +1", got)
	}
	if r.Geometry.Shape != "Tetrahedral" {
		Te.Errorf("NH4+: shape %s, want Tetrahedral", r.Geometry.Shape)
	}
}

//TestConservation checks the two conservation laws on every candidate of a
//spread of species: total placed electrons equal the budget, and formal
//charges sum to the net charge.
func TestConservation(Te *testing.T) {
	formulas := []string{"H2O", "CO2", "CO3-2", "NO3-", "SO2", "SF6", "XeF4", "NH4+", "BF3", "PCl5", "O3"}
	for _, formula := range formulas {
		F, err := ParseFormula(formula)
		if err != nil {
			Te.Fatal(err)
		}
		electrons, err := F.ValenceElectrons()
		if err != nil {
			Te.Fatal(err)
		}
		K, err := NewSkeleton(F, electrons)
		if err != nil {
			Te.Fatal(err)
		}
		candidates, err := K.Resolve()
		if err != nil {
			Te.Fatal(err)
		}
		for i, s := range candidates {
			if got := s.Electrons(); got != electrons {
				Te.Errorf("%s candidate %d: placed %d electrons, budget %d", formula, i, got, electrons)
			}
			total := 0
			for _, charge := range s.FormalCharges() {
				total += charge
			}
			if total != F.Charge {
				Te.Errorf("%s candidate %d: formal charges sum to %d, net charge is %d", formula, i, total, F.Charge)
			}
		}
	}
}

//TestOctets checks that in the most optimal structure every atom off the
//exception list holds exactly 8 electrons (2 for hydrogen), and an
//expanded central atom never passes 12.
func TestOctets(Te *testing.T) {
	formulas := []string{"H2O", "CO2", "CO3-2", "NO3-", "SO2", "SF6", "XeF4", "NH4+", "PCl5"}
	for _, formula := range formulas {
		r, err := Solve(formula)
		if err != nil {
			Te.Fatal(err)
		}
		s := r.MostOptimal.Structure
		for _, at := range s.Atoms() {
			got := s.AtomElectrons(at)
			switch {
			case at.Symbol == "H":
				if got != 2 {
					Te.Errorf("%s: hydrogen %s holds %d electrons", formula, at.Label(), got)
				}
			case at == s.Central && at.Element.ExpandedOctet():
				if got < 8 || got > 12 {
					Te.Errorf("%s: central %s holds %d electrons", formula, at.Label(), got)
				}
			case at.Element.UnderOctet > 0:
				if got < at.Element.UnderOctet || got > 8 {
					Te.Errorf("%s: exception atom %s holds %d electrons", formula, at.Label(), got)
				}
			default:
				if got != 8 {
					Te.Errorf("%s: atom %s holds %d electrons, want 8", formula, at.Label(), got)
				}
			}
		}
	}
}

//TestDeterminism re-solves the same formula and expects identical output,
//resonance forms included.
func TestDeterminism(Te *testing.T) {
	first, err := Solve("CO3-2")
	if err != nil {
		Te.Fatal(err)
	}
	second, err := Solve("CO3-2")
	if err != nil {
		Te.Fatal(err)
	}
	if len(first.ResonanceForms) != len(second.ResonanceForms) {
		Te.Fatalf("resonance form counts differ: %d vs %d", len(first.ResonanceForms), len(second.ResonanceForms))
	}
	if first.MostOptimal.Structure.BondRecords()[0] != second.MostOptimal.Structure.BondRecords()[0] {
		Te.Error("most optimal structures differ between runs")
	}
	for i := range first.ResonanceForms {
		a := first.ResonanceForms[i].Structure.BondRecords()
		b := second.ResonanceForms[i].Structure.BondRecords()
		for j := range a {
			if a[j] != b[j] {
				Te.Errorf("resonance form %d differs between runs", i)
			}
		}
	}
}

func TestSolveErrors(Te *testing.T) {
	cases := []struct {
		formula string
		kind    Kind
	}{
		{"", RadicalUnsupported},
		{"NO2", RadicalUnsupported}, //17 valence electrons
		{"Xz2O", UnknownElement},
		{"h2o", ParseError},
		{"H2", NoCentralAtom},
		{"O", NoCentralAtom},
		{"IF7", NoValidStructure},
		{"CN-", UnsupportedGeometry}, //X+E=2 but (1,1) has no table entry
	}
	for _, c := range cases {
		_, err := Solve(c.formula)
		if err == nil {
			Te.Errorf("Solve(%q): expected an error", c.formula)
			continue
		}
		if KindOf(err) != c.kind {
			Te.Errorf("Solve(%q): got kind %v, want %v", c.formula, KindOf(err), c.kind)
		}
	}
}
