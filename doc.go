/*
 * doc.go, part of golewis.
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
 */

/*Package lewis determines chemically valid Lewis structures and VSEPR
geometries for small molecules and polyatomic ions, given only a textual
formula such as "H2O", "NH4+" or "SO4-2".


	**golewis capabilities**


    Parses formulas with multi-letter symbols, atom counts and a net
	charge suffix.

    Accounts for all valence electrons, including the extra or missing
	electrons of ions.

    Builds the one-center skeleton: a unique central atom single-bonded
	to every terminal atom.

    Searches every electron arrangement satisfying the octet rule,
	including multiple bonds, the classic under-octet exceptions
	(beryllium, boron, aluminium) and expanded octets of up to six
	electron domains on period 3+ centers.

    Scores candidates by formal charge, with electronegativity-aware
	tie breaking, and reports all resonance forms tied for the best
	score.

    Classifies the central atom in AXE notation with shape, ideal bond
	angles and hybridization.

The model is deliberately small: one central atom, no radicals (odd
electron counts), no coordinates and no multi-center skeletons. Formulas
outside the model fail with a descriptive, typed error rather than a
partial answer.

Subpackages render reports as text (report), persist them to compressed
archives (archive), expose structures as gonum graphs (structgraph), and
provide an interactive front end (cmd/golewis).
*/
package lewis
