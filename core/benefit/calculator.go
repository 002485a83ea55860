// Package benefit computes the expected stipend breakdown for a placement.
// Calculation is pure: (child, family, sibling group, rule table) in,
// itemized breakdown out. No I/O, no shared state.
package benefit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"foster-budget/core/rules"
	"foster-budget/core/types"
)

var twelve = decimal.NewFromInt(12)

// Calculator derives benefit breakdowns from a rule table
type Calculator struct {
	table *rules.Table

	// now supplies the reference date for age derivation
	now func() time.Time
}

// NewCalculator creates a calculator bound to a rule table
func NewCalculator(table *rules.Table) *Calculator {
	return &Calculator{table: table, now: time.Now}
}

// WithClock overrides the reference-date source. Used by tests and by
// retroactive recalculations.
func (c *Calculator) WithClock(now func() time.Time) *Calculator {
	c.now = now
	return c
}

// Calculate computes the expected breakdown for a child placed with a
// family in a sibling group of the given size. The returned warnings
// carry data-quality findings (currently only unknown region); they never
// affect the amounts beyond the documented default multiplier.
func (c *Calculator) Calculate(child types.ChildProfile, family types.FamilyProfile, siblingCount int) (types.BenefitBreakdown, []types.Issue) {
	var warnings []types.Issue

	age := AgeOn(child.BirthDate, c.now())
	ageMultiplier := c.table.AgeGroupMultiplier(age)

	region := c.table.RegionForState(family.State)
	if region == types.RegionUnknown {
		warnings = append(warnings, types.Issue{
			Kind: types.KindUnknownRegion,
			Message: fmt.Sprintf("state %q is not mapped to a region; default multiplier %s applied",
				family.State, c.table.DefaultRegionMultiplier),
		})
	}
	regionMultiplier := c.table.RegionMultiplier(region)

	// Adjusted base: table base scaled by age band and region
	base := c.table.BaseBenefit.Mul(ageMultiplier).Mul(regionMultiplier).Round(2)

	specialNeeds := decimal.Zero
	if child.HasSpecialNeeds {
		specialNeeds = base.Mul(c.table.SpecialNeedsMultiplier).Round(2)
	}

	// Sibling supplement uses the adjusted base, per sibling beyond the first
	sibling := decimal.Zero
	if siblingCount > 1 {
		extra := decimal.NewFromInt(int64(siblingCount - 1))
		sibling = base.Mul(c.table.SiblingGroupMultiplier).Mul(extra).Round(2)
	}

	clothing := c.table.ClothingAllowanceAnnual.Div(twelve).Round(2)

	breakdown := types.BenefitBreakdown{
		BaseBenefit:         base,
		SpecialNeedsSupport: specialNeeds,
		SiblingSupport:      sibling,
		HealthcareSupport:   c.table.HealthcareAllowance,
		EducationSupport:    c.table.EducationAllowance,
		ClothingSupport:     clothing,
		TransportSupport:    c.table.TransportAllowance,
		Age:                 age,
		Region:              region,
		RegionMultiplier:    regionMultiplier,
		AgeGroupMultiplier:  ageMultiplier,
		Formula: fmt.Sprintf("%s * %s (age %d) * %s (%s)",
			c.table.BaseBenefit, ageMultiplier, age, regionMultiplier, region),
	}

	total := decimal.Zero
	for _, component := range breakdown.Components() {
		total = total.Add(component)
	}
	breakdown.TotalMonthly = total
	breakdown.TotalAnnual = total.Mul(twelve)

	return breakdown, warnings
}
