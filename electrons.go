/*
 * electrons.go, part of golewis.
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

import "fmt"

//ValenceElectrons returns the total number of valence electrons available to
//the species: the sum of group valence electrons over all atoms, plus one
//electron per unit of negative charge (minus one per positive unit).
//A symbol missing from the element table fails with UnknownElement. An empty
//composition or an odd total signals a radical, which this library does not
//model, and fails with RadicalUnsupported.
func (F *Formula) ValenceElectrons() (int, error) {
	if len(F.Atoms) == 0 {
		return 0, newError(RadicalUnsupported, F.Text, "", "no atoms to pair electrons on")
	}
	total := 0
	for _, v := range F.Atoms {
		el := ElementBySymbol(v.Symbol)
		if el == nil {
			return 0, newError(UnknownElement, F.Text, v.Symbol, fmt.Sprintf("element %q not supported", v.Symbol))
		}
		total += el.Valence * v.Count
	}
	total -= F.Charge
	if total%2 != 0 {
		return 0, newError(RadicalUnsupported, F.Text, "", fmt.Sprintf("odd valence electron count (%d)", total))
	}
	return total, nil
}
