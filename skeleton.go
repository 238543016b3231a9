/*
 * skeleton.go, part of golewis.
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

//Atom is one atom instance of a structure. Two atoms of the same symbol are
//distinct instances even though chemically equivalent; Index numbers the
//instances of each symbol from 0, with the central atom first. An Atom is
//immutable once the skeleton is built: bond and lone pair data live in the
//Structure, not here.
type Atom struct {
	Symbol  string
	Index   int
	Element *Element
}

//Label returns the atom's textual identity, symbol plus instance index,
//e.g. "O0" or "H1". This is the convention used through every report.
func (A *Atom) Label() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}

//Skeleton is the draft topology for one formula: a unique central atom
//single-bonded to every terminal atom instance, plus the electron budget
//the octet search must place.
type Skeleton struct {
	Formula   *Formula
	Central   *Atom
	Terminals []*Atom
	electrons int
}

//Electrons returns the total valence electron budget of the skeleton.
func (K *Skeleton) Electrons() int {
	return K.electrons
}

//centralElement picks the central atom's element for F. The policy, in
//order: if exactly one non-hydrogen, non-fluorine element is present, it is
//central; otherwise the non-hydrogen element with the lowest
//electronegativity wins, with ties broken by element table declaration
//order. The declaration-order tie break is a fixed rule, so the choice is
//deterministic for any formula.
func centralElement(F *Formula) (*Element, error) {
	if F.NAtoms() < 2 {
		return nil, newError(NoCentralAtom, F.Text, "", "a single atom cannot form bonds")
	}
	var candidateSymbol string
	ncandidates := 0
	for _, v := range F.Atoms {
		if v.Symbol == "H" || v.Symbol == "F" {
			continue
		}
		ncandidates++
		if ncandidates == 1 {
			candidateSymbol = v.Symbol
		}
	}
	if ncandidates == 1 {
		candidate := ElementBySymbol(candidateSymbol)
		if candidate == nil {
			return nil, newError(UnknownElement, F.Text, candidateSymbol, fmt.Sprintf("element %q not supported", candidateSymbol))
		}
		return candidate, nil
	}
	var best *Element
	bestRank := -1
	for _, v := range F.Atoms {
		if v.Symbol == "H" {
			continue
		}
		rank, ok := elementIndex[v.Symbol]
		if !ok {
			return nil, newError(UnknownElement, F.Text, v.Symbol, fmt.Sprintf("element %q not supported", v.Symbol))
		}
		el := &elements[rank]
		if best == nil || el.EN < best.EN || (el.EN == best.EN && rank < bestRank) {
			best = el
			bestRank = rank
		}
	}
	if best == nil {
		return nil, newError(NoCentralAtom, F.Text, "H", "hydrogen is never central")
	}
	return best, nil
}

//NewSkeleton selects the central atom of F and builds the draft structure:
//the central atom single-bonded to each terminal atom instance. electrons is
//the budget computed by ValenceElectrons. Formulas with no possible center
//fail with NoCentralAtom.
func NewSkeleton(F *Formula, electrons int) (*Skeleton, error) {
	central, err := centralElement(F)
	if err != nil {
		return nil, errDecorate(err, "NewSkeleton")
	}
	K := &Skeleton{Formula: F, electrons: electrons}
	K.Central = &Atom{Symbol: central.Symbol, Index: 0, Element: central}
	next := map[string]int{central.Symbol: 1}
	for _, v := range F.Atoms {
		el := ElementBySymbol(v.Symbol)
		if el == nil {
			return nil, newError(UnknownElement, F.Text, v.Symbol, fmt.Sprintf("element %q not supported", v.Symbol))
		}
		count := v.Count
		if v.Symbol == central.Symbol {
			count-- //the central atom takes one instance
		}
		for i := 0; i < count; i++ {
			at := &Atom{Symbol: v.Symbol, Index: next[v.Symbol], Element: el}
			next[v.Symbol]++
			K.Terminals = append(K.Terminals, at)
		}
	}
	return K, nil
}
