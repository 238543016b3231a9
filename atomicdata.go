/*
 * atomicdata.go, part of golewis.
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

//Element holds the static data for one supported element. UnderOctet is a
//capability flag for the known under-octet exceptions: the smallest electron
//count accepted around the atom instead of the full octet. A value of 0 means
//the plain octet rule applies.
type Element struct {
	Symbol     string
	Valence    int     //group valence electrons
	EN         float64 //Pauling electronegativity
	Period     int
	UnderOctet int
}

//ExpandedOctet reports whether the element may hold more than 8 electrons
//when it sits at the center of a structure. Only period 3 and up have the
//d orbitals for it.
func (E *Element) ExpandedOctet() bool {
	return E.Period >= 3
}

//The octet of an expanded-octet central atom may grow to at most 6 electron
//domains (12 electrons). Never beyond.
const maxCentralElectrons = 12

//elements lists every supported element. The slice order doubles as the
//deterministic tie-break order for central atom selection, so entries should
//only ever be appended.
//Electronegativities are Pauling values.
var elements = []Element{
	{Symbol: "H", Valence: 1, EN: 2.2, Period: 1},
	{Symbol: "B", Valence: 3, EN: 2.04, Period: 2, UnderOctet: 6},
	{Symbol: "C", Valence: 4, EN: 2.55, Period: 2},
	{Symbol: "N", Valence: 5, EN: 3.04, Period: 2},
	{Symbol: "O", Valence: 6, EN: 3.44, Period: 2},
	{Symbol: "F", Valence: 7, EN: 3.98, Period: 2},
	{Symbol: "Be", Valence: 2, EN: 1.57, Period: 2, UnderOctet: 4},
	{Symbol: "Li", Valence: 1, EN: 0.98, Period: 2},
	{Symbol: "Na", Valence: 1, EN: 0.93, Period: 3},
	{Symbol: "Mg", Valence: 2, EN: 1.31, Period: 3},
	{Symbol: "Al", Valence: 3, EN: 1.61, Period: 3, UnderOctet: 6},
	{Symbol: "Si", Valence: 4, EN: 1.9, Period: 3},
	{Symbol: "P", Valence: 5, EN: 2.19, Period: 3},
	{Symbol: "S", Valence: 6, EN: 2.58, Period: 3},
	{Symbol: "Cl", Valence: 7, EN: 3.16, Period: 3},
	{Symbol: "K", Valence: 1, EN: 0.82, Period: 4},
	{Symbol: "Ca", Valence: 2, EN: 1.0, Period: 4},
	{Symbol: "Ga", Valence: 3, EN: 1.81, Period: 4},
	{Symbol: "Ge", Valence: 4, EN: 2.01, Period: 4},
	{Symbol: "As", Valence: 5, EN: 2.18, Period: 4},
	{Symbol: "Se", Valence: 6, EN: 2.55, Period: 4},
	{Symbol: "Br", Valence: 7, EN: 2.96, Period: 4},
	{Symbol: "I", Valence: 7, EN: 2.66, Period: 5},
	{Symbol: "Xe", Valence: 8, EN: 2.6, Period: 5},
	{Symbol: "Kr", Valence: 8, EN: 3.0, Period: 4},
}

//elementIndex maps a symbol to its position in the elements slice.
var elementIndex = make(map[string]int, len(elements))

func init() {
	for i, v := range elements {
		elementIndex[v.Symbol] = i
	}
}

//ElementBySymbol returns the table entry for symbol, or nil if the
//element is not supported.
func ElementBySymbol(symbol string) *Element {
	i, ok := elementIndex[symbol]
	if !ok {
		return nil
	}
	return &elements[i]
}

//A map for checking that a terminal halogen never ends up with a
//positive formal charge. Branches doing that are chemically impossible
//and get pruned during the octet search.
var symbolHalogen = map[string]bool{
	"F":  true,
	"Cl": true,
	"Br": true,
	"I":  true,
}
