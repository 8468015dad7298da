package domain

import (
	"github.com/shopspring/decimal"
)

// HealthStatus grades a spouse's health for the health-disadvantage factor.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// Rank orders health statuses from worst (0) to best (3). Unknown statuses
// rank as good.
func (h HealthStatus) Rank() int {
	switch h {
	case HealthPoor:
		return 0
	case HealthFair:
		return 1
	case HealthGood:
		return 2
	case HealthExcellent:
		return 3
	default:
		return 2
	}
}

// SpecialCircumstances is the optional bundle of statutory factors considered
// by equitable-distribution jurisdictions. A nil field means the factor was
// not raised and contributes zero weight. Community-property jurisdictions
// ignore the bundle entirely.
type SpecialCircumstances struct {
	MarriageDurationYears *decimal.Decimal `yaml:"marriage_duration_years,omitempty" json:"marriage_duration_years,omitempty"`
	Spouse1Health         *HealthStatus    `yaml:"spouse1_health,omitempty" json:"spouse1_health,omitempty"`
	Spouse2Health         *HealthStatus    `yaml:"spouse2_health,omitempty" json:"spouse2_health,omitempty"`
	Spouse1AnnualIncome   *decimal.Decimal `yaml:"spouse1_annual_income,omitempty" json:"spouse1_annual_income,omitempty"`
	Spouse2AnnualIncome   *decimal.Decimal `yaml:"spouse2_annual_income,omitempty" json:"spouse2_annual_income,omitempty"`

	// Conduct factors name the responsible spouse; the division leans toward
	// the other party.
	MaritalMisconductBy *Spouse `yaml:"marital_misconduct_by,omitempty" json:"marital_misconduct_by,omitempty"`
	DomesticViolenceBy  *Spouse `yaml:"domestic_violence_by,omitempty" json:"domestic_violence_by,omitempty"`
	AssetsWastedBy      *Spouse `yaml:"assets_wasted_by,omitempty" json:"assets_wasted_by,omitempty"`

	// EducationSupportedBy names the spouse who funded the other's education
	// or training during the marriage; that contribution leans the division
	// toward the supporter.
	EducationSupportedBy *Spouse `yaml:"education_supported_by,omitempty" json:"education_supported_by,omitempty"`

	Spouse1PriorMarriages *int `yaml:"spouse1_prior_marriages,omitempty" json:"spouse1_prior_marriages,omitempty"`
	Spouse2PriorMarriages *int `yaml:"spouse2_prior_marriages,omitempty" json:"spouse2_prior_marriages,omitempty"`

	// LowerEarningCapacity names the spouse with diminished future earning
	// prospects. CustodialParent names the primary custodian of minor children.
	LowerEarningCapacity *Spouse `yaml:"lower_earning_capacity,omitempty" json:"lower_earning_capacity,omitempty"`
	CustodialParent      *Spouse `yaml:"custodial_parent,omitempty" json:"custodial_parent,omitempty"`

	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// IsEmpty reports whether no factor field is populated. An empty bundle must
// yield an even split.
func (sc *SpecialCircumstances) IsEmpty() bool {
	if sc == nil {
		return true
	}
	return sc.MarriageDurationYears == nil &&
		sc.Spouse1Health == nil && sc.Spouse2Health == nil &&
		sc.Spouse1AnnualIncome == nil && sc.Spouse2AnnualIncome == nil &&
		sc.MaritalMisconductBy == nil && sc.DomesticViolenceBy == nil &&
		sc.AssetsWastedBy == nil && sc.EducationSupportedBy == nil &&
		sc.Spouse1PriorMarriages == nil && sc.Spouse2PriorMarriages == nil &&
		sc.LowerEarningCapacity == nil && sc.CustodialParent == nil
}
