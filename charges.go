/*
 * charges.go, part of golewis.
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

//FormalCharges computes the formal charge of every atom in the structure:
//free atom valence electrons, minus lone pair electrons, minus half the
//bonding electrons at the atom. The returned map is keyed by atom label and
//covers every atom. The structure is not modified.
func (S *Structure) FormalCharges() map[string]int {
	fc := make(map[string]int, len(S.Bonds)+1)
	for _, at := range S.Atoms() {
		fc[at.Label()] = at.Element.Valence - 2*S.LonePairs[at.Label()] - S.BondOrderSum(at)
	}
	return fc
}

//Score is the badness of a candidate structure. Primary is the sum of
//absolute formal charges. Penalty breaks ties among equal primaries: a
//positive charge weighs its atom's electronegativity, a negative charge
//weighs 4.0 minus it, so charge sitting on the wrong kind of atom costs
//more. Scores compare lexicographically, lower is better.
type Score struct {
	Primary int
	Penalty float64
}

//Penalties are float sums, so the same value multiset added in a different
//order can land a few ulps away. Penalties closer than this are equal.
const penaltyEps = 1e-9

//Less reports whether s is strictly better than o. Two scores neither of
//which is Less than the other are tied.
func (s Score) Less(o Score) bool {
	if s.Primary != o.Primary {
		return s.Primary < o.Primary
	}
	return s.Penalty < o.Penalty-penaltyEps
}

//ScoreCharges computes the Score for a structure from its formal charge
//map. Deterministic given the structure; no mutation.
func ScoreCharges(S *Structure, fc map[string]int) Score {
	var score Score
	for _, at := range S.Atoms() {
		charge := fc[at.Label()]
		if charge == 0 {
			continue
		}
		if charge > 0 {
			score.Primary += charge
			score.Penalty += float64(charge) * at.Element.EN
		} else {
			score.Primary -= charge
			score.Penalty += float64(-charge) * (4.0 - at.Element.EN)
		}
	}
	return score
}
