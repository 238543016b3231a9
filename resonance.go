/*
 * resonance.go, part of golewis.
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

//Form pairs a candidate structure with its derived formal charges and
//Score.
type Form struct {
	Structure *Structure
	Charges   map[string]int
	Score     Score
}

//ScoreAll derives the charge map and score of every candidate, keeping the
//generation order.
func ScoreAll(candidates []*Structure) []*Form {
	forms := make([]*Form, len(candidates))
	for i, s := range candidates {
		fc := s.FormalCharges()
		forms[i] = &Form{Structure: s, Charges: fc, Score: ScoreCharges(s, fc)}
	}
	return forms
}

//OptimalForms returns the resonance group: every form tied for the minimal
//score, in generation order, with exact duplicates (same per-instance bond
//order assignment) removed. The first element is the most optimal form.
//Forms differing only in which interchangeable terminal holds a promoted
//bond are distinct members of the group; detecting true graph symmetry is
//beyond the scope of this library.
func OptimalForms(forms []*Form) []*Form {
	if len(forms) == 0 {
		return nil
	}
	best := forms[0].Score
	for _, f := range forms[1:] {
		if f.Score.Less(best) {
			best = f.Score
		}
	}
	var group []*Form
	seen := make(map[string]bool)
	for _, f := range forms {
		//best is minimal, so f ties with it unless it is strictly worse
		if best.Less(f.Score) {
			continue
		}
		sig := f.Structure.signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		group = append(group, f)
	}
	return group
}
