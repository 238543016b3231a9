package lewis

import "testing"

func TestParseFormula(Te *testing.T) {
	F, err := ParseFormula("SO4-2")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Charge != -2 {
		Te.Errorf("SO4-2: got charge %d, want -2", F.Charge)
	}
	if len(F.Atoms) != 2 || F.Atoms[0] != (AtomCount{"S", 1}) || F.Atoms[1] != (AtomCount{"O", 4}) {
		Te.Errorf("SO4-2: wrong composition: %v", F.Atoms)
	}
	F, err = ParseFormula("NO3-")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Charge != -1 {
		Te.Errorf("NO3-: got charge %d, want -1", F.Charge)
	}
	F, err = ParseFormula("NH4+")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Charge != 1 {
		Te.Errorf("NH4+: got charge %d, want +1", F.Charge)
	}
	//two-letter symbols and repeated elements
	F, err = ParseFormula("CCl4")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Atoms[0] != (AtomCount{"C", 1}) || F.Atoms[1] != (AtomCount{"Cl", 4}) {
		Te.Errorf("CCl4: wrong composition: %v", F.Atoms)
	}
	F, err = ParseFormula("HOH")
	if err != nil {
		Te.Fatal(err)
	}
	if F.NAtoms() != 3 || F.Atoms[0] != (AtomCount{"H", 2}) {
		Te.Errorf("HOH: counts not merged in first-appearance order: %v", F.Atoms)
	}
}

func TestParseFormulaErrors(Te *testing.T) {
	bad := []string{
		"2O",    //digit run with no preceding symbol
		"h2o",   //lowercase start
		"O2-2-", //charge suffix not at the end
		"SO4--", //two charge suffixes
		"H2O!",  //stray character
		"H0",    //zero count
	}
	for _, s := range bad {
		_, err := ParseFormula(s)
		if err == nil {
			Te.Errorf("ParseFormula(%q): expected an error", s)
			continue
		}
		if KindOf(err) != ParseError {
			Te.Errorf("ParseFormula(%q): got kind %v, want ParseError", s, KindOf(err))
		}
	}
	//a well-formed but unsupported symbol is not the parser's business
	if _, err := ParseFormula("Xz2O"); err != nil {
		Te.Errorf("ParseFormula(Xz2O): parser should accept well-formed unknown symbols, got %v", err)
	}
}

func TestValenceElectrons(Te *testing.T) {
	cases := []struct {
		formula string
		want    int
	}{
		{"H2O", 8},
		{"CO3-2", 24},
		{"NH4+", 8},
		{"SF6", 48},
		{"XeF4", 36},
	}
	for _, c := range cases {
		F, err := ParseFormula(c.formula)
		if err != nil {
			Te.Fatal(err)
		}
		got, err := F.ValenceElectrons()
		if err != nil {
			Te.Fatal(err)
		}
		if got != c.want {
			Te.Errorf("%s: got %d valence electrons, want %d", c.formula, got, c.want)
		}
	}
	//unknown element
	F, _ := ParseFormula("Xz2O")
	if _, err := F.ValenceElectrons(); KindOf(err) != UnknownElement {
		Te.Errorf("Xz2O: got %v, want UnknownElement", err)
	}
	//odd electron count (radical)
	F, _ = ParseFormula("NO2")
	if _, err := F.ValenceElectrons(); KindOf(err) != RadicalUnsupported {
		Te.Errorf("NO2: got %v, want RadicalUnsupported", err)
	}
	//empty formula
	F, _ = ParseFormula("")
	if _, err := F.ValenceElectrons(); KindOf(err) != RadicalUnsupported {
		Te.Errorf("empty formula: got %v, want RadicalUnsupported", err)
	}
}
