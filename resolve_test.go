package lewis

import "testing"

func mustSkeleton(Te *testing.T, formula string) *Skeleton {
	Te.Helper()
	F, err := ParseFormula(formula)
	if err != nil {
		Te.Fatal(err)
	}
	electrons, err := F.ValenceElectrons()
	if err != nil {
		Te.Fatal(err)
	}
	K, err := NewSkeleton(F, electrons)
	if err != nil {
		Te.Fatal(err)
	}
	return K
}

func TestCentralAtomSelection(Te *testing.T) {
	cases := []struct {
		formula string
		central string
	}{
		{"H2O", "O0"},   //the single non-H, non-F element
		{"SF6", "S0"},   //fluorine is never central
		{"CH4", "C0"},   //hydrogen is never central
		{"CO3-2", "C0"}, //lowest electronegativity among C and O
		{"SO2", "S0"},
		{"O3", "O0"},
		{"CSe2", "C0"}, //C and Se tie at 2.55; declaration order decides
	}
	for _, c := range cases {
		K := mustSkeleton(Te, c.formula)
		if K.Central.Label() != c.central {
			Te.Errorf("%s: got central %s, want %s", c.formula, K.Central.Label(), c.central)
		}
	}
}

func TestSkeletonLabels(Te *testing.T) {
	K := mustSkeleton(Te, "O3")
	if K.Central.Label() != "O0" {
		Te.Errorf("O3: central label %s, want O0", K.Central.Label())
	}
	want := []string{"O1", "O2"}
	for i, t := range K.Terminals {
		if t.Label() != want[i] {
			Te.Errorf("O3: terminal %d label %s, want %s", i, t.Label(), want[i])
		}
	}
}

func TestNoCentralAtom(Te *testing.T) {
	for _, s := range []string{"O", "Xe", "H2"} {
		F, err := ParseFormula(s)
		if err != nil {
			Te.Fatal(err)
		}
		electrons, err := F.ValenceElectrons()
		if err != nil {
			Te.Fatal(err)
		}
		_, err = NewSkeleton(F, electrons)
		if KindOf(err) != NoCentralAtom {
			Te.Errorf("%s: got %v, want NoCentralAtom", s, err)
		}
	}
}

func TestUnknownCentralElement(Te *testing.T) {
	//an unsupported symbol as the only non-H kind must fail cleanly even
	//when the skeleton is built directly, without the accountant in front
	for _, s := range []string{"XzH4", "XzSe2"} {
		F, err := ParseFormula(s)
		if err != nil {
			Te.Fatal(err)
		}
		_, err = NewSkeleton(F, 8)
		if KindOf(err) != UnknownElement {
			Te.Errorf("%s: got %v, want UnknownElement", s, err)
		}
	}
}

func TestResolveBranching(Te *testing.T) {
	//carbonate: one promotion, three equivalent oxygens, three candidates
	K := mustSkeleton(Te, "CO3-2")
	candidates, err := K.Resolve()
	if err != nil {
		Te.Fatal(err)
	}
	if len(candidates) != 3 {
		Te.Fatalf("CO3-2: got %d candidates, want 3", len(candidates))
	}
	for _, s := range candidates {
		if s.Electrons() != K.Electrons() {
			Te.Errorf("CO3-2: candidate places %d electrons, budget is %d", s.Electrons(), K.Electrons())
		}
	}
	//carbon dioxide: two promotions over two oxygens, three distinct
	//distributions (3+1, 2+2, 1+3)
	K = mustSkeleton(Te, "CO2")
	candidates, err = K.Resolve()
	if err != nil {
		Te.Fatal(err)
	}
	if len(candidates) != 3 {
		Te.Fatalf("CO2: got %d candidates, want 3", len(candidates))
	}
}

func TestResolveExpandedOctet(Te *testing.T) {
	K := mustSkeleton(Te, "SF6")
	candidates, err := K.Resolve()
	if err != nil {
		Te.Fatal(err)
	}
	if len(candidates) != 1 {
		Te.Fatalf("SF6: got %d candidates, want 1", len(candidates))
	}
	s := candidates[0]
	if got := s.AtomElectrons(s.Central); got != 12 {
		Te.Errorf("SF6: central atom holds %d electrons, want 12", got)
	}
	for _, b := range s.Bonds {
		if b.Order != 1 {
			Te.Errorf("SF6: bond to %s has order %d, want 1", b.At2.Label(), b.Order)
		}
	}
	//xenon tetrafluoride keeps two lone pairs on the center
	K = mustSkeleton(Te, "XeF4")
	candidates, err = K.Resolve()
	if err != nil {
		Te.Fatal(err)
	}
	s = candidates[0]
	if pairs := s.LonePairs[s.Central.Label()]; pairs != 2 {
		Te.Errorf("XeF4: central lone pairs %d, want 2", pairs)
	}
}

func TestResolveUnderOctet(Te *testing.T) {
	//boron trifluoride: the under-octet candidate wins and the B=F
	//promotions are pruned (positive charge on a terminal halogen)
	K := mustSkeleton(Te, "BF3")
	candidates, err := K.Resolve()
	if err != nil {
		Te.Fatal(err)
	}
	if len(candidates) != 1 {
		Te.Fatalf("BF3: got %d candidates, want 1", len(candidates))
	}
	s := candidates[0]
	if got := s.AtomElectrons(s.Central); got != 6 {
		Te.Errorf("BF3: central atom holds %d electrons, want 6", got)
	}
}

func TestResolveFailures(Te *testing.T) {
	//seven fluorines would force 14 electrons on iodine: beyond the
	//6-domain limit
	K := mustSkeleton(Te, "IF7")
	if _, err := K.Resolve(); KindOf(err) != NoValidStructure {
		Te.Errorf("IF7: got %v, want NoValidStructure", err)
	}
	//acetylene needs two bonded centers, which the one-center skeleton
	//cannot express
	K = mustSkeleton(Te, "C2H2")
	if _, err := K.Resolve(); KindOf(err) != NoValidStructure {
		Te.Errorf("C2H2: got %v, want NoValidStructure", err)
	}
}
