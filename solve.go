/*
 * solve.go, part of golewis.
 *
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
 *
 */

package lewis

//Report is the complete outcome of solving one formula: the most stable
//structure with its formal charges, any further resonance forms tied with
//it, and the VSEPR classification of the central atom.
type Report struct {
	Formula        string
	MostOptimal    *Form
	ResonanceForms []*Form
	Geometry       *VSEPR
}

//Solve determines the Lewis structure(s) and VSEPR geometry for formula.
//It runs the whole pipeline to completion: parse, count valence electrons,
//build the single bond skeleton, search octet satisfying arrangements,
//score them by formal charge, and classify the winner's central atom.
//Solve keeps no state between calls and is safe for concurrent use.
//Failures carry one of the Kind values; no partial report is ever returned.
func Solve(formula string) (*Report, error) {
	F, err := ParseFormula(formula)
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	electrons, err := F.ValenceElectrons()
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	K, err := NewSkeleton(F, electrons)
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	candidates, err := K.Resolve()
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	group := OptimalForms(ScoreAll(candidates))
	geo, err := group[0].Structure.VSEPR()
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	return &Report{
		Formula:        formula,
		MostOptimal:    group[0],
		ResonanceForms: group[1:],
		Geometry:       geo,
	}, nil
}
