// Package types defines the domain model for placement budget validation.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Region represents a group of federative units sharing a cost-of-living
// adjustment factor
type Region string

const (
	RegionNorte       Region = "norte"
	RegionNordeste    Region = "nordeste"
	RegionCentroOeste Region = "centro_oeste"
	RegionSudeste     Region = "sudeste"
	RegionSul         Region = "sul"

	// RegionUnknown is returned for state codes absent from the rule
	// table. It never inherits another region's multiplier; the table's
	// explicit default applies and callers surface a warning.
	RegionUnknown Region = "unknown"
)

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// ChildProfile carries the child attributes that affect the stipend
type ChildProfile struct {
	// ID uniquely identifies the child
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name,omitempty"`

	// BirthDate is the child's date of birth
	BirthDate time.Time `json:"birth_date"`

	// HasSpecialNeeds indicates documented special needs
	HasSpecialNeeds bool `json:"has_special_needs"`

	// HealthConditions lists documented health conditions
	HealthConditions []string `json:"health_conditions,omitempty"`
}

// FamilyProfile carries the foster family attributes that affect the stipend
type FamilyProfile struct {
	// ID uniquely identifies the family
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name,omitempty"`

	// State is the two-letter federative unit code of the family address
	State string `json:"state"`
}

// LegalRecord holds the mandatory legal document references for a placement
type LegalRecord struct {
	// CourtOrderRef references the court order authorizing the placement
	CourtOrderRef string `json:"court_order_ref"`

	// LegalGuardianRef references the legal guardianship record
	LegalGuardianRef string `json:"legal_guardian_ref"`

	// BirthCertificateRef references the child's birth certificate
	BirthCertificateRef string `json:"birth_certificate_ref"`
}

// Complete reports whether all three mandatory references are present
func (l LegalRecord) Complete() bool {
	return l.CourtOrderRef != "" && l.LegalGuardianRef != "" && l.BirthCertificateRef != ""
}

// Placement links a child to a foster family for a period of care.
// It is immutable for the duration of a validation run.
type Placement struct {
	// ID uniquely identifies the placement
	ID string `json:"id"`

	// Child is the placed child
	Child ChildProfile `json:"child"`

	// Family is the foster family
	Family FamilyProfile `json:"family"`

	// SiblingGroup lists all co-placed children, including the subject
	// child. An empty group is treated as a group of one.
	SiblingGroup []ChildProfile `json:"sibling_group,omitempty"`

	// Legal holds the mandatory legal document references
	Legal LegalRecord `json:"legal"`
}

// SiblingCount returns the effective sibling-group size
func (p *Placement) SiblingCount() int {
	if len(p.SiblingGroup) == 0 {
		return 1
	}
	return len(p.SiblingGroup)
}

// Budget is the stored stipend record for a placement. It is the source
// of truth for the "actual" values being checked.
type Budget struct {
	// PlacementID links the budget to its placement
	PlacementID string `json:"placement_id"`

	// MonthlyAmount is the recorded monthly stipend
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`

	// SpecialNeedsSupport is the itemized special-needs amount, if recorded
	SpecialNeedsSupport *decimal.Decimal `json:"special_needs_support,omitempty"`

	// HealthcareAllowance is the itemized healthcare amount, if recorded
	HealthcareAllowance *decimal.Decimal `json:"healthcare_allowance,omitempty"`

	// EducationAllowance is the itemized education amount, if recorded
	EducationAllowance *decimal.Decimal `json:"education_allowance,omitempty"`
}
