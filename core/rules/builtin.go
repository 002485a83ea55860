// Package rules - Built-in fiscal year tables
package rules

import (
	"github.com/shopspring/decimal"

	"foster-budget/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Builtin returns the compiled-in FY2024 table. It is used when no
// rule-table file is configured and as the reference for tests.
func Builtin() *Table {
	return &Table{
		Version:                 "fy2024",
		FiscalYear:              2024,
		MinimumWage:             dec("1412.00"),
		BaseBenefit:             dec("1412.00"),
		SpecialNeedsMultiplier:  dec("0.50"),
		SiblingGroupMultiplier:  dec("0.30"),
		MaximumMonthlyBenefit:   dec("7060.00"),
		HealthcareAllowance:     dec("200.00"),
		EducationAllowance:      dec("150.00"),
		ClothingAllowanceAnnual: dec("800.00"),
		TransportAllowance:      dec("100.00"),
		AgeBands: []AgeBand{
			{Min: 0, Max: 2, Multiplier: dec("1.30")},
			{Min: 3, Max: 6, Multiplier: dec("1.20")},
			{Min: 7, Max: 12, Multiplier: dec("1.10")},
			{Min: 13, Max: 18, Multiplier: dec("1.15")},
		},
		RegionMultipliers: map[types.Region]decimal.Decimal{
			types.RegionNorte:       dec("1.10"),
			types.RegionNordeste:    dec("1.05"),
			types.RegionCentroOeste: dec("1.10"),
			types.RegionSudeste:     dec("1.20"),
			types.RegionSul:         dec("1.15"),
		},
		DefaultRegionMultiplier: dec("1.00"),
		StateRegions: map[string]types.Region{
			// Norte
			"AC": types.RegionNorte, "AP": types.RegionNorte, "AM": types.RegionNorte,
			"PA": types.RegionNorte, "RO": types.RegionNorte, "RR": types.RegionNorte,
			"TO": types.RegionNorte,
			// Nordeste
			"AL": types.RegionNordeste, "BA": types.RegionNordeste, "CE": types.RegionNordeste,
			"MA": types.RegionNordeste, "PB": types.RegionNordeste, "PE": types.RegionNordeste,
			"PI": types.RegionNordeste, "RN": types.RegionNordeste, "SE": types.RegionNordeste,
			// Centro-Oeste
			"DF": types.RegionCentroOeste, "GO": types.RegionCentroOeste,
			"MT": types.RegionCentroOeste, "MS": types.RegionCentroOeste,
			// Sudeste
			"ES": types.RegionSudeste, "MG": types.RegionSudeste,
			"RJ": types.RegionSudeste, "SP": types.RegionSudeste,
			// Sul
			"PR": types.RegionSul, "RS": types.RegionSul, "SC": types.RegionSul,
		},
	}
}
