/*
 * resolve.go, part of golewis.
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

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

//octetFloor returns the electron count at satisfies the octet rule with:
//2 for hydrogen, the under-octet threshold for the flagged exception
//elements, 8 for everything else.
func octetFloor(at *Atom) int {
	if at.Symbol == "H" {
		return 2
	}
	if at.Element.UnderOctet > 0 {
		return at.Element.UnderOctet
	}
	return 8
}

//Resolve runs the octet satisfaction search and returns the candidate set:
//every distinct electron arrangement that conserves the electron budget and
//satisfies the octet rule (or a valid exception) on every atom. Candidates
//are immutable; each branch of the search works on its own copy of the
//draft, so callers may keep or score them freely.
//
//The search places lone pairs on the terminal atoms first and any leftovers
//on the central atom. Deficient terminals then pull central lone pairs into
//their bond. A deficient central atom branches instead: one candidate per
//distinct way to promote bonds of lone pair donating terminals, enumerated
//over promotion slots with gonum's combination generator. Central atoms of
//period 3 and up may keep an expanded octet of at most 12 electrons when
//the budget forces one.
func (K *Skeleton) Resolve() ([]*Structure, error) {
	nterm := len(K.Terminals)
	bondElectrons := 2 * nterm
	if bondElectrons > K.electrons {
		return nil, newError(NoValidStructure, K.Formula.Text, "",
			fmt.Sprintf("%d electrons cannot cover the %d bond skeleton", K.electrons, nterm))
	}
	S := &Structure{Central: K.Central, LonePairs: make(map[string]int, nterm+1)}
	S.LonePairs[K.Central.Label()] = 0
	for _, t := range K.Terminals {
		S.Bonds = append(S.Bonds, &Bond{At1: K.Central, At2: t, Order: 1})
		S.LonePairs[t.Label()] = 0
	}

	//Step 1: lone pair saturation, terminals first. Hydrogen takes none.
	remaining := K.electrons - bondElectrons
	for _, t := range K.Terminals {
		if t.Symbol == "H" {
			continue
		}
		take := 6 //completes a one-bond terminal's octet
		if take > remaining {
			take = remaining
		}
		S.LonePairs[t.Label()] = take / 2
		remaining -= take
	}
	clabel := K.Central.Label()
	S.LonePairs[clabel] = remaining / 2

	//Step 2a: deficient terminals pull central lone pairs into their bond.
	//Zero sum: the central atom trades a lone pair for a bond pair.
	for _, b := range S.Bonds {
		floor := octetFloor(b.At2)
		for S.AtomElectrons(b.At2) < floor && S.LonePairs[clabel] > 0 && b.Order < 3 {
			b.Order++
			S.LonePairs[clabel]--
		}
		if S.AtomElectrons(b.At2) < floor {
			return nil, newError(NoValidStructure, K.Formula.Text, b.At2.Label(),
				fmt.Sprintf("terminal %s cannot complete its octet", b.At2.Label()))
		}
	}

	var out []*Structure
	seen := make(map[string]bool)
	emit := func(d *Structure) error {
		if d.Electrons() != K.electrons {
			//conservation is the central invariant; breaking it here is a bug
			return newError(NoValidStructure, K.Formula.Text, "",
				fmt.Sprintf("internal: placed %d electrons out of %d", d.Electrons(), K.electrons))
		}
		for _, b := range d.Bonds {
			if !symbolHalogen[b.At2.Symbol] {
				continue
			}
			fc := b.At2.Element.Valence - 2*d.LonePairs[b.At2.Label()] - b.Order
			if fc > 0 {
				return nil //impossible: positively charged terminal halogen
			}
		}
		if seen[d.signature()] {
			return nil
		}
		seen[d.signature()] = true
		out = append(out, d)
		return nil
	}

	central := K.Central
	ce := S.AtomElectrons(central)

	//Step 3: an over-octet center left by saturation is only legal as an
	//expanded octet (SF6, XeF4 and kin).
	if ce > 8 {
		if !central.Element.ExpandedOctet() || ce > maxCentralElectrons {
			return nil, newError(NoValidStructure, K.Formula.Text, clabel,
				fmt.Sprintf("central atom %s cannot hold %d electrons", clabel, ce))
		}
		if err := emit(S); err != nil {
			return nil, err
		}
		return out, nil
	}

	need := (8 - ce) / 2
	if need == 0 {
		if err := emit(S); err != nil {
			return nil, err
		}
		return out, nil
	}

	//An under-octet exception center makes the unpromoted draft a candidate
	//of its own; scoring decides between it and any promoted siblings
	//(BF3 keeps its three single bonds this way).
	if uo := central.Element.UnderOctet; uo > 0 && ce >= uo {
		if err := emit(S.Copy()); err != nil {
			return nil, err
		}
	}

	//Step 2b: branch over every distinct way to promote bonds until the
	//center reaches its octet. Each slot is one possible promotion of one
	//bond; a bond appears once per promotion it can still absorb.
	var slots []int
	for i, b := range S.Bonds {
		capi := 3 - b.Order
		if lp := S.LonePairs[b.At2.Label()]; lp < capi {
			capi = lp
		}
		for j := 0; j < capi; j++ {
			slots = append(slots, i)
		}
	}
	if len(slots) < need {
		if len(out) == 0 {
			return nil, newError(NoValidStructure, K.Formula.Text, clabel,
				fmt.Sprintf("central atom %s cannot complete its octet", clabel))
		}
		return out, nil
	}
	gen := combin.NewCombinationGenerator(len(slots), need)
	comb := make([]int, need)
	for gen.Next() {
		gen.Combination(comb)
		d := S.Copy()
		for _, si := range comb {
			b := d.Bonds[slots[si]]
			b.Order++
			d.LonePairs[b.At2.Label()]--
		}
		if err := emit(d); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, newError(NoValidStructure, K.Formula.Text, "",
			"no electron arrangement satisfies the octet rules")
	}
	return out, nil
}
