/*
 * structure.go, part of golewis.
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

//Bond joins the central atom (always At1) to one terminal atom. Order is 1,
//2 or 3.
type Bond struct {
	At1   *Atom
	At2   *Atom
	Order int
}

//BondRecord is the serializable form of a Bond, with atoms replaced by
//their labels.
type BondRecord struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Order int    `json:"order"`
}

//Structure is one complete candidate electron arrangement: exactly one bond
//per terminal atom plus a lone pair count for every atom, keyed by label.
//A Structure is immutable once the octet search emits it; scoring and
//geometry mapping only ever read it.
type Structure struct {
	Central   *Atom
	Bonds     []*Bond
	LonePairs map[string]int //label -> lone pair count (pairs, not electrons)
}

//Atoms returns every atom of the structure, central first, then the
//terminals in bond order.
func (S *Structure) Atoms() []*Atom {
	ats := make([]*Atom, 0, len(S.Bonds)+1)
	ats = append(ats, S.Central)
	for _, b := range S.Bonds {
		ats = append(ats, b.At2)
	}
	return ats
}

//BondOrderSum returns the summed bond order at atom at: its single bond's
//order for a terminal, the sum over all bonds for the central atom.
func (S *Structure) BondOrderSum(at *Atom) int {
	total := 0
	for _, b := range S.Bonds {
		if at == S.Central || b.At2 == at {
			total += b.Order
		}
	}
	return total
}

//AtomElectrons returns the number of electrons around at: two per bond
//order plus two per lone pair.
func (S *Structure) AtomElectrons(at *Atom) int {
	return 2*S.BondOrderSum(at) + 2*S.LonePairs[at.Label()]
}

//Electrons returns the total number of electrons placed in the structure.
//For any accepted structure this equals the valence electron budget; the
//octet search checks the equality before emitting a candidate.
func (S *Structure) Electrons() int {
	total := 0
	for _, b := range S.Bonds {
		total += 2 * b.Order
	}
	for _, pairs := range S.LonePairs {
		total += 2 * pairs
	}
	return total
}

//BondRecords returns the bonds of the structure in order, in serializable
//label form.
func (S *Structure) BondRecords() []BondRecord {
	recs := make([]BondRecord, len(S.Bonds))
	for i, b := range S.Bonds {
		recs[i] = BondRecord{From: b.At1.Label(), To: b.At2.Label(), Order: b.Order}
	}
	return recs
}

//Copy returns a deep copy of the structure. Atoms are shared: they are
//immutable.
func (S *Structure) Copy() *Structure {
	N := &Structure{Central: S.Central}
	N.Bonds = make([]*Bond, len(S.Bonds))
	for i, b := range S.Bonds {
		N.Bonds[i] = &Bond{At1: b.At1, At2: b.At2, Order: b.Order}
	}
	N.LonePairs = make(map[string]int, len(S.LonePairs))
	for k, v := range S.LonePairs {
		N.LonePairs[k] = v
	}
	return N
}

//signature identifies a structure by its per-instance bond order
//assignment. Two candidates with the same signature are the same structure,
//reached through different promotion orders.
func (S *Structure) signature() string {
	sig := make([]byte, len(S.Bonds))
	for i, b := range S.Bonds {
		sig[i] = byte('0' + b.Order)
	}
	return string(sig)
}
