/*
 * formula.go, part of golewis.
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

import "strconv"

//AtomCount is one (symbol, count) pair of a parsed formula.
type AtomCount struct {
	Symbol string
	Count  int
}

//Formula is a parsed chemical formula: the element composition in input
//order plus the net charge (negative for anions).
type Formula struct {
	Text   string //the original input
	Atoms  []AtomCount
	Charge int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

//add merges count atoms of symbol into the composition, keeping the order of
//first appearance.
func (F *Formula) add(symbol string, count int) {
	for i := range F.Atoms {
		if F.Atoms[i].Symbol == symbol {
			F.Atoms[i].Count += count
			return
		}
	}
	F.Atoms = append(F.Atoms, AtomCount{Symbol: symbol, Count: count})
}

//NAtoms returns the total number of atoms in the formula.
func (F *Formula) NAtoms() int {
	n := 0
	for _, v := range F.Atoms {
		n += v.Count
	}
	return n
}

//ParseFormula parses a chemical formula string such as "H2O", "NH4+" or
//"SO4-2" into its composition and net charge. The scan runs left to right:
//an uppercase letter optionally followed by a lowercase one is an element
//symbol, a digit run after a symbol is its atom count (absent means 1), and
//one trailing '+' or '-' with an optional magnitude sets the charge.
//It is a pure function; malformed input fails with a ParseError carrying the
//offending token. A symbol that is well formed but not in the element table
//is accepted here and rejected by the electron accountant instead.
func ParseFormula(formula string) (*Formula, error) {
	F := &Formula{Text: formula}
	n := len(formula)
	charged := false
	i := 0
	for i < n {
		c := formula[i]
		switch {
		case isUpper(c):
			j := i + 1
			if j < n && isLower(formula[j]) {
				j++
			}
			symbol := formula[i:j]
			i = j
			count := 1
			if i < n && isDigit(formula[i]) {
				k := i
				for k < n && isDigit(formula[k]) {
					k++
				}
				count, _ = strconv.Atoi(formula[i:k])
				if count == 0 {
					return nil, newError(ParseError, formula, formula[i:k], "atom count of zero for "+symbol)
				}
				i = k
			}
			F.add(symbol, count)
		case c == '+' || c == '-':
			if charged {
				return nil, newError(ParseError, formula, string(c), "more than one charge suffix")
			}
			charged = true
			sign := 1
			if c == '-' {
				sign = -1
			}
			i++
			magnitude := 1
			if i < n && isDigit(formula[i]) {
				k := i
				for k < n && isDigit(formula[k]) {
					k++
				}
				magnitude, _ = strconv.Atoi(formula[i:k])
				i = k
			}
			if i != n {
				return nil, newError(ParseError, formula, formula[i:], "charge suffix must end the formula")
			}
			F.Charge = sign * magnitude
		case isDigit(c):
			return nil, newError(ParseError, formula, string(c), "digit run with no preceding element symbol")
		default:
			return nil, newError(ParseError, formula, string(c), "unexpected character")
		}
	}
	return F, nil
}
