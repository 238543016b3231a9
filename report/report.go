//Package report renders solved Lewis structures, formal charges and VSEPR
//predictions as plain text. It is the reference front end formatting for
//golewis: deterministic, display-agnostic, one report per formula.
package report

import (
	"fmt"
	"sort"
	"strings"

	lewis "github.com/solvate/golewis"
)

//bondGlyphs maps a bond order to its textual glyph. '~' stands for a
//triple bond.
var bondGlyphs = map[int]string{1: "-", 2: "=", 3: "~"}

//Structure formats one form under the given title: the bond list, the lone
//pairs, and the formal charges. Output ordering is deterministic (bond
//order of the structure, then sorted atom labels).
func Structure(f *lewis.Form, title string) string {
	var out []string
	out = append(out, "--- "+title+" ---", "\n[Structure]")
	for _, b := range f.Structure.BondRecords() {
		glyph, ok := bondGlyphs[b.Order]
		if !ok {
			glyph = "?"
		}
		out = append(out, "  "+b.From+" "+glyph+" "+b.To)
	}

	out = append(out, "\n[Lone Pairs]")
	labels := make([]string, 0, len(f.Structure.LonePairs))
	for k := range f.Structure.LonePairs {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	for _, k := range labels {
		pairs := f.Structure.LonePairs[k]
		if pairs > 0 {
			out = append(out, fmt.Sprintf("  %s: %de (%d pairs)", k, 2*pairs, pairs))
		}
	}

	out = append(out, "\n[Formal Charges]")
	labels = labels[:0]
	for k := range f.Charges {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	any := false
	for _, k := range labels {
		charge := f.Charges[k]
		if charge == 0 {
			continue
		}
		any = true
		sign := ""
		if charge > 0 {
			sign = "+"
		}
		out = append(out, fmt.Sprintf("  %s: %s%d", k, sign, charge))
	}
	if !any {
		out = append(out, "  All charges are zero.")
	}
	return strings.Join(out, "\n")
}

//VSEPRInfo formats the geometry prediction block.
func VSEPRInfo(g *lewis.VSEPR) string {
	var b strings.Builder
	b.WriteString("--VSEPR Prediction--\n")
	fmt.Fprintf(&b, "Central atom: %s\n", g.Central)
	fmt.Fprintf(&b, "Bonded atoms (X): %d\n", g.X)
	fmt.Fprintf(&b, "Lone pairs (E): %d\n", g.E)
	fmt.Fprintf(&b, "Notation: %s\n", g.Notation)
	fmt.Fprintf(&b, "Shape: %s\n", g.Shape)
	fmt.Fprintf(&b, "Bond angle(s): %s\n", g.Angle)
	fmt.Fprintf(&b, "Hybridization: %s", g.Hybridization)
	return b.String()
}

//Render formats a whole report: the most optimal structure, its VSEPR
//prediction, and every further resonance form, numbered from 2.
func Render(r *lewis.Report) string {
	var b strings.Builder
	sep := strings.Repeat("=", 21)
	b.WriteString(sep + "\n")
	b.WriteString(Structure(r.MostOptimal, "Most Optimal Structure"))
	b.WriteString("\n" + sep + "\n\n")
	b.WriteString(VSEPRInfo(r.Geometry))
	if len(r.ResonanceForms) > 0 {
		b.WriteString("\n\nThis molecule exhibits resonance.")
		sep = strings.Repeat("=", 25)
		for i, f := range r.ResonanceForms {
			b.WriteString("\n\n" + sep + "\n")
			b.WriteString(Structure(f, fmt.Sprintf("Resonance Form %d", i+2)))
			b.WriteString("\n" + sep)
		}
	}
	return b.String()
}
