/*
 * vsepr.go, part of golewis.
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

//VSEPR is the predicted geometry of a structure's central atom: X bonded
//atoms (a multiple bond counts as one domain), E lone pairs, and the
//classification they map to.
type VSEPR struct {
	Central       string `json:"central"`
	X             int    `json:"x"`
	E             int    `json:"e"`
	Notation      string `json:"notation"`
	Shape         string `json:"shape"`
	Angle         string `json:"angle"`
	Hybridization string `json:"hybridization"`
}

type vseprEntry struct {
	notation string
	shape    string
	angle    string
	hybrid   string
}

//vseprTable maps (X, E) on the central atom to its geometry. Read-only.
var vseprTable = map[[2]int]vseprEntry{
	{1, 0}: {"AX", "Linear", "180", "s"},
	{2, 0}: {"AX2", "Linear", "180", "sp"},
	{2, 1}: {"AX2E", "Bent", "<120", "sp2"},
	{3, 0}: {"AX3", "Trigonal Planar", "120", "sp2"},
	{3, 1}: {"AX3E", "Trigonal Pyramidal", "<109.5", "sp3"},
	{2, 2}: {"AX2E2", "Bent", "<109.5", "sp3"},
	{4, 0}: {"AX4", "Tetrahedral", "109.5", "sp3"},
	{4, 1}: {"AX4E", "Seesaw", "<120 & <90", "sp3d"},
	{3, 2}: {"AX3E2", "T-shaped", "<90", "sp3d"},
	{2, 3}: {"AX2E3", "Linear", "180", "sp3d"},
	{5, 0}: {"AX5", "Trigonal Bipyramidal", "120 & 90", "sp3d2"},
	{5, 1}: {"AX5E", "Square Pyramidal", "<90", "sp3d2"},
	{4, 2}: {"AX4E2", "Square Planar", "90", "sp3d2"},
	{6, 0}: {"AX6", "Octahedral", "90", "sp3d2"},
}

//LookupVSEPR classifies a central atom with X bonded atoms and E lone
//pairs. Combinations outside the table fail with UnsupportedGeometry.
func LookupVSEPR(central string, X, E int) (*VSEPR, error) {
	entry, ok := vseprTable[[2]int{X, E}]
	if !ok {
		return nil, newError(UnsupportedGeometry, "", fmt.Sprintf("X=%d,E=%d", X, E),
			fmt.Sprintf("no VSEPR entry for X=%d, E=%d", X, E))
	}
	return &VSEPR{
		Central:       central,
		X:             X,
		E:             E,
		Notation:      entry.notation,
		Shape:         entry.shape,
		Angle:         entry.angle,
		Hybridization: entry.hybrid,
	}, nil
}

//VSEPR classifies the structure's central atom. Each bond counts as one
//domain regardless of its order.
func (S *Structure) VSEPR() (*VSEPR, error) {
	X := len(S.Bonds)
	E := S.LonePairs[S.Central.Label()]
	v, err := LookupVSEPR(S.Central.Symbol, X, E)
	if err != nil {
		return nil, errDecorate(err, "VSEPR")
	}
	return v, nil
}
