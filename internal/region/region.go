// Package region holds the closed set of geo codes found in the Eurostat
// life-expectancy dataset.
package region

import (
	"fmt"
	"sort"
	"strings"

	"lifeexp/internal"
)

type Region string

// All selects every region; the pipeline skips filtering for it.
const All Region = ""

const (
	AL       Region = "AL"
	AM       Region = "AM"
	AT       Region = "AT"
	AZ       Region = "AZ"
	BE       Region = "BE"
	BG       Region = "BG"
	BY       Region = "BY"
	CH       Region = "CH"
	CY       Region = "CY"
	CZ       Region = "CZ"
	DE       Region = "DE"
	DETotal  Region = "DE_TOT"
	DK       Region = "DK"
	EA18     Region = "EA18"
	EA19     Region = "EA19"
	EE       Region = "EE"
	EEA30Y07 Region = "EEA30_2007"
	EEA31    Region = "EEA31"
	EFTA     Region = "EFTA"
	EL       Region = "EL"
	ES       Region = "ES"
	EU27Y07  Region = "EU27_2007"
	EU27Y20  Region = "EU27_2020"
	EU28     Region = "EU28"
	FI       Region = "FI"
	FR       Region = "FR"
	FX       Region = "FX"
	GE       Region = "GE"
	HR       Region = "HR"
	HU       Region = "HU"
	IE       Region = "IE"
	IS       Region = "IS"
	IT       Region = "IT"
	LI       Region = "LI"
	LT       Region = "LT"
	LU       Region = "LU"
	LV       Region = "LV"
	MD       Region = "MD"
	ME       Region = "ME"
	MK       Region = "MK"
	MT       Region = "MT"
	NL       Region = "NL"
	NO       Region = "NO"
	PL       Region = "PL"
	PT       Region = "PT"
	RO       Region = "RO"
	RS       Region = "RS"
	RU       Region = "RU"
	SE       Region = "SE"
	SI       Region = "SI"
	SK       Region = "SK"
	SM       Region = "SM"
	TR       Region = "TR"
	UA       Region = "UA"
	UK       Region = "UK"
	XK       Region = "XK"
)

type info struct {
	name      string
	aggregate bool
}

var registry = map[Region]info{
	AL:       {name: "Albania"},
	AM:       {name: "Armenia"},
	AT:       {name: "Austria"},
	AZ:       {name: "Azerbaijan"},
	BE:       {name: "Belgium"},
	BG:       {name: "Bulgaria"},
	BY:       {name: "Belarus"},
	CH:       {name: "Switzerland"},
	CY:       {name: "Cyprus"},
	CZ:       {name: "Czechia"},
	DE:       {name: "Germany"},
	DETotal:  {name: "Germany including former GDR", aggregate: true},
	DK:       {name: "Denmark"},
	EA18:     {name: "Euro area - 18 countries (2014)", aggregate: true},
	EA19:     {name: "Euro area - 19 countries (2015-2022)", aggregate: true},
	EE:       {name: "Estonia"},
	EEA30Y07: {name: "European Economic Area (EU27 - 2007-2013 and IS, LI, NO)", aggregate: true},
	EEA31:    {name: "European Economic Area (EU28 - 2013-2020 and IS, LI, NO)", aggregate: true},
	EFTA:     {name: "European Free Trade Association", aggregate: true},
	EL:       {name: "Greece"},
	ES:       {name: "Spain"},
	EU27Y07:  {name: "European Union - 27 countries (2007-2013)", aggregate: true},
	EU27Y20:  {name: "European Union - 27 countries (from 2020)", aggregate: true},
	EU28:     {name: "European Union - 28 countries (2013-2020)", aggregate: true},
	FI:       {name: "Finland"},
	FR:       {name: "France"},
	FX:       {name: "France (metropolitan)"},
	GE:       {name: "Georgia"},
	HR:       {name: "Croatia"},
	HU:       {name: "Hungary"},
	IE:       {name: "Ireland"},
	IS:       {name: "Iceland"},
	IT:       {name: "Italy"},
	LI:       {name: "Liechtenstein"},
	LT:       {name: "Lithuania"},
	LU:       {name: "Luxembourg"},
	LV:       {name: "Latvia"},
	MD:       {name: "Moldova"},
	ME:       {name: "Montenegro"},
	MK:       {name: "North Macedonia"},
	MT:       {name: "Malta"},
	NL:       {name: "Netherlands"},
	NO:       {name: "Norway"},
	PL:       {name: "Poland"},
	PT:       {name: "Portugal"},
	RO:       {name: "Romania"},
	RS:       {name: "Serbia"},
	RU:       {name: "Russia"},
	SE:       {name: "Sweden"},
	SI:       {name: "Slovenia"},
	SK:       {name: "Slovakia"},
	SM:       {name: "San Marino"},
	TR:       {name: "Turkey"},
	UA:       {name: "Ukraine"},
	UK:       {name: "United Kingdom"},
	XK:       {name: "Kosovo"},
}

// Parse validates a geo code. Surrounding whitespace is ignored, case is not.
func Parse(code string) (Region, error) {
	r := Region(strings.TrimSpace(code))
	if _, ok := registry[r]; !ok {
		return All, fmt.Errorf("%w: %q", internal.ErrInvalidRegionCode, code)
	}
	return r, nil
}

func (r Region) String() string {
	return string(r)
}

func (r Region) Valid() bool {
	_, ok := registry[r]
	return ok
}

// IsAggregate reports whether r is a union, zone or other supra-national total.
func (r Region) IsAggregate() bool {
	return registry[r].aggregate
}

func (r Region) Name() string {
	return registry[r].name
}

// Values returns every known code in sorted order.
func Values() []Region {
	out := make([]Region, 0, len(registry))
	for r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Countries returns the known codes without aggregates, sorted.
func Countries() []Region {
	all := Values()
	out := make([]Region, 0, len(all))
	for _, r := range all {
		if !r.IsAggregate() {
			out = append(out, r)
		}
	}
	return out
}
