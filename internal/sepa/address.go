package sepa

import "github.com/beevik/etree"

// Address carries the optional postal address of a party. All fields are
// optional; only non-empty fields are emitted, in the order the pain
// schemas prescribe.
type Address struct {
	Type               string
	Department         string
	SubDepartment      string
	Street             string
	BuildingNumber     string
	Postcode           string
	Town               string
	CountrySubdivision string
	Country            string
	Lines              []string
}

func (a *Address) empty() bool {
	if a == nil {
		return true
	}
	if a.Type != "" || a.Department != "" || a.SubDepartment != "" ||
		a.Street != "" || a.BuildingNumber != "" || a.Postcode != "" ||
		a.Town != "" || a.CountrySubdivision != "" || a.Country != "" {
		return false
	}
	return len(a.Lines) == 0
}

// appendAddress adds a PstlAdr element under parent when the address has
// at least one populated field.
func appendAddress(parent *etree.Element, a *Address) {
	if a.empty() {
		return
	}
	adr := parent.CreateElement("PstlAdr")
	fields := []struct {
		tag   string
		value string
	}{
		{"AdrTp", a.Type},
		{"Dept", a.Department},
		{"SubDept", a.SubDepartment},
		{"StrtNm", a.Street},
		{"BldgNb", a.BuildingNumber},
		{"PstCd", a.Postcode},
		{"TwnNm", a.Town},
		{"CtrySubDvsn", a.CountrySubdivision},
		{"Ctry", a.Country},
	}
	for _, f := range fields {
		if f.value != "" {
			adr.CreateElement(f.tag).SetText(f.value)
		}
	}
	for _, line := range a.Lines {
		adr.CreateElement("AdrLine").SetText(line)
	}
}
