// Package rules provides the versioned statutory rule table.
// A table is loaded once per fiscal year and treated as read-only for the
// lifetime of a reporting run.
package rules

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// AgeBand is one age bracket with its multiplier. Boundaries are inclusive
// on both ends.
type AgeBand struct {
	// Min is the lowest age in the band, in completed years
	Min int `json:"min"`

	// Max is the highest age in the band, in completed years
	Max int `json:"max"`

	// Multiplier scales the base benefit for this band
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Contains reports whether an age falls inside the band
func (b AgeBand) Contains(age int) bool {
	return age >= b.Min && age <= b.Max
}

// Label returns a human-readable band label
func (b AgeBand) Label() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// Table holds the statutory constants for one fiscal year
type Table struct {
	// Version identifies the table (e.g. "fy2024")
	Version string `json:"version"`

	// FiscalYear is the year the table applies to
	FiscalYear int `json:"fiscal_year"`

	// MinimumWage is the floor for any monthly stipend
	MinimumWage decimal.Decimal `json:"minimum_wage"`

	// BaseBenefit is the starting point before multipliers
	BaseBenefit decimal.Decimal `json:"base_benefit"`

	// SpecialNeedsMultiplier is the fraction of the adjusted base added
	// when the child has special needs
	SpecialNeedsMultiplier decimal.Decimal `json:"special_needs_multiplier"`

	// SiblingGroupMultiplier is the fraction of the adjusted base added
	// per sibling beyond the first
	SiblingGroupMultiplier decimal.Decimal `json:"sibling_group_multiplier"`

	// MaximumMonthlyBenefit is the statutory ceiling
	MaximumMonthlyBenefit decimal.Decimal `json:"maximum_monthly_benefit"`

	// HealthcareAllowance is the fixed monthly healthcare amount
	HealthcareAllowance decimal.Decimal `json:"healthcare_allowance"`

	// EducationAllowance is the fixed monthly education amount
	EducationAllowance decimal.Decimal `json:"education_allowance"`

	// ClothingAllowanceAnnual is the annual clothing amount (divided by
	// 12 for monthly accounting)
	ClothingAllowanceAnnual decimal.Decimal `json:"clothing_allowance_annual"`

	// TransportAllowance is the fixed monthly transport amount
	TransportAllowance decimal.Decimal `json:"transport_allowance"`

	// AgeBands partition [0,18] without gaps or overlaps
	AgeBands []AgeBand `json:"age_bands"`

	// RegionMultipliers maps each region to its factor
	RegionMultipliers map[types.Region]decimal.Decimal `json:"region_multipliers"`

	// DefaultRegionMultiplier applies when the region is unknown
	DefaultRegionMultiplier decimal.Decimal `json:"default_region_multiplier"`

	// StateRegions maps every federative unit code to its region
	StateRegions map[string]types.Region `json:"state_regions"`
}

// RegionForState resolves a federative unit code to its region. Unmapped
// codes resolve to RegionUnknown rather than silently inheriting a region.
func (t *Table) RegionForState(state string) types.Region {
	if region, ok := t.StateRegions[state]; ok {
		return region
	}
	return types.RegionUnknown
}

// RegionMultiplier returns the factor for a region, falling back to the
// explicit default for RegionUnknown or missing entries
func (t *Table) RegionMultiplier(region types.Region) decimal.Decimal {
	if m, ok := t.RegionMultipliers[region]; ok {
		return m
	}
	return t.DefaultRegionMultiplier
}

// AgeBandFor returns the band containing the given age. Age 18 maps to the
// last band; it never falls through to "no band".
func (t *Table) AgeBandFor(age int) (AgeBand, bool) {
	for _, band := range t.AgeBands {
		if band.Contains(age) {
			return band, true
		}
	}
	return AgeBand{}, false
}

// AgeGroupMultiplier returns the factor for an age, or 1.0 when the age
// falls outside every band
func (t *Table) AgeGroupMultiplier(age int) decimal.Decimal {
	if band, ok := t.AgeBandFor(age); ok {
		return band.Multiplier
	}
	return decimal.NewFromInt(1)
}

// MaxAge is the highest age covered by the age bands
const MaxAge = 18

var one = decimal.NewFromInt(1)

// Validate checks the structural invariants of the table
func (t *Table) Validate() error {
	if t.MinimumWage.LessThanOrEqual(decimal.Zero) {
		return errors.New(errors.TypeConfig, "minimum_wage must be positive")
	}
	if t.BaseBenefit.LessThanOrEqual(decimal.Zero) {
		return errors.New(errors.TypeConfig, "base_benefit must be positive")
	}
	if t.MaximumMonthlyBenefit.LessThan(t.MinimumWage) {
		return errors.Newf(errors.TypeConfig,
			"maximum_monthly_benefit %s is below minimum_wage %s",
			t.MaximumMonthlyBenefit, t.MinimumWage)
	}

	// Supplement factors are fractions of the adjusted base
	for name, factor := range map[string]decimal.Decimal{
		"special_needs_multiplier": t.SpecialNeedsMultiplier,
		"sibling_group_multiplier": t.SiblingGroupMultiplier,
	} {
		if factor.LessThanOrEqual(decimal.Zero) || factor.GreaterThan(one) {
			return errors.Newf(errors.TypeConfig, "%s must be in (0,1], got %s", name, factor)
		}
	}

	if err := t.validateAgeBands(); err != nil {
		return err
	}
	return t.validateRegions()
}

func (t *Table) validateAgeBands() error {
	if len(t.AgeBands) == 0 {
		return errors.New(errors.TypeConfig, "at least one age band is required")
	}

	bands := make([]AgeBand, len(t.AgeBands))
	copy(bands, t.AgeBands)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min < bands[j].Min })

	if bands[0].Min != 0 {
		return errors.Newf(errors.TypeConfig, "age bands must start at 0, got %d", bands[0].Min)
	}
	for i, band := range bands {
		if band.Max < band.Min {
			return errors.Newf(errors.TypeConfig, "age band %s is inverted", band.Label())
		}
		if band.Multiplier.LessThan(one) {
			return errors.Newf(errors.TypeConfig,
				"age band %s multiplier %s is below 1.0", band.Label(), band.Multiplier)
		}
		if i > 0 && band.Min != bands[i-1].Max+1 {
			return errors.Newf(errors.TypeConfig,
				"age bands %s and %s are not contiguous", bands[i-1].Label(), band.Label())
		}
	}
	if bands[len(bands)-1].Max != MaxAge {
		return errors.Newf(errors.TypeConfig,
			"age bands must end at %d, got %d", MaxAge, bands[len(bands)-1].Max)
	}
	return nil
}

// federativeUnits is the canonical set of 27 federative unit codes every
// rule table must map
var federativeUnits = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

func (t *Table) validateRegions() error {
	if t.DefaultRegionMultiplier.LessThan(one) {
		return errors.Newf(errors.TypeConfig,
			"default_region_multiplier %s is below 1.0", t.DefaultRegionMultiplier)
	}
	for region, m := range t.RegionMultipliers {
		if m.LessThan(one) {
			return errors.Newf(errors.TypeConfig,
				"region %s multiplier %s is below 1.0", region, m)
		}
	}

	for uf := range federativeUnits {
		region, ok := t.StateRegions[uf]
		if !ok {
			return errors.Newf(errors.TypeConfig,
				"federative unit %s is not mapped to a region", uf)
		}
		if _, ok := t.RegionMultipliers[region]; !ok {
			return errors.Newf(errors.TypeConfig,
				"state %s maps to region %s which has no multiplier", uf, region)
		}
	}
	for state := range t.StateRegions {
		if !federativeUnits[state] {
			return errors.Newf(errors.TypeConfig, "unknown state code %q", state)
		}
	}
	return nil
}
