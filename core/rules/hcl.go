// Package rules - HCL rule-table loader
// Fiscal-year tables are externalized as data so they can be swapped
// without code changes.
package rules

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// tableFile is the top-level HCL schema of a rule-table file
type tableFile struct {
	Version                 string        `hcl:"version,optional"`
	FiscalYear              int           `hcl:"fiscal_year"`
	MinimumWage             float64       `hcl:"minimum_wage"`
	BaseBenefit             float64       `hcl:"base_benefit"`
	SpecialNeedsMultiplier  float64       `hcl:"special_needs_multiplier"`
	SiblingGroupMultiplier  float64       `hcl:"sibling_group_multiplier"`
	MaximumMonthlyBenefit   float64       `hcl:"maximum_monthly_benefit"`
	HealthcareAllowance     float64       `hcl:"healthcare_allowance"`
	EducationAllowance      float64       `hcl:"education_allowance"`
	ClothingAllowanceAnnual float64       `hcl:"clothing_allowance_annual"`
	TransportAllowance      float64       `hcl:"transport_allowance"`
	DefaultRegionMultiplier float64       `hcl:"default_region_multiplier"`
	AgeBands                []ageBandFile `hcl:"age_band,block"`
	Regions                 []regionFile  `hcl:"region,block"`
}

// ageBandFile is one age_band block
type ageBandFile struct {
	Min        int     `hcl:"min"`
	Max        int     `hcl:"max"`
	Multiplier float64 `hcl:"multiplier"`
}

// regionFile is one region block with its member states
type regionFile struct {
	Name       string   `hcl:"name,label"`
	Multiplier float64  `hcl:"multiplier"`
	States     []string `hcl:"states"`
}

// LoadHCL parses and validates a rule-table file
func LoadHCL(path string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeConfig, diags, "failed to parse rule table %s", path)
	}

	var raw tableFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeConfig, diags, "failed to decode rule table %s", path)
	}

	table := rawToTable(&raw)
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func rawToTable(raw *tableFile) *Table {
	table := &Table{
		Version:                 raw.Version,
		FiscalYear:              raw.FiscalYear,
		MinimumWage:             decimal.NewFromFloat(raw.MinimumWage),
		BaseBenefit:             decimal.NewFromFloat(raw.BaseBenefit),
		SpecialNeedsMultiplier:  decimal.NewFromFloat(raw.SpecialNeedsMultiplier),
		SiblingGroupMultiplier:  decimal.NewFromFloat(raw.SiblingGroupMultiplier),
		MaximumMonthlyBenefit:   decimal.NewFromFloat(raw.MaximumMonthlyBenefit),
		HealthcareAllowance:     decimal.NewFromFloat(raw.HealthcareAllowance),
		EducationAllowance:      decimal.NewFromFloat(raw.EducationAllowance),
		ClothingAllowanceAnnual: decimal.NewFromFloat(raw.ClothingAllowanceAnnual),
		TransportAllowance:      decimal.NewFromFloat(raw.TransportAllowance),
		DefaultRegionMultiplier: decimal.NewFromFloat(raw.DefaultRegionMultiplier),
		RegionMultipliers:       make(map[types.Region]decimal.Decimal, len(raw.Regions)),
		StateRegions:            make(map[string]types.Region),
	}

	for _, band := range raw.AgeBands {
		table.AgeBands = append(table.AgeBands, AgeBand{
			Min:        band.Min,
			Max:        band.Max,
			Multiplier: decimal.NewFromFloat(band.Multiplier),
		})
	}

	for _, region := range raw.Regions {
		name := types.Region(region.Name)
		table.RegionMultipliers[name] = decimal.NewFromFloat(region.Multiplier)
		for _, state := range region.States {
			table.StateRegions[state] = name
		}
	}

	return table
}
