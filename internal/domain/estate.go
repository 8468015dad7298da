package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spouse identifies which party holds or receives an item.
type Spouse string

const (
	SpouseJoint Spouse = "joint"
	Spouse1     Spouse = "spouse1"
	Spouse2     Spouse = "spouse2"
)

// Other returns the opposing spouse. Joint has no opposite and is returned as-is.
func (s Spouse) Other() Spouse {
	switch s {
	case Spouse1:
		return Spouse2
	case Spouse2:
		return Spouse1
	default:
		return s
	}
}

// ItemCategory classifies an estate item for reporting and confidence scoring.
type ItemCategory string

const (
	CategoryRealEstate        ItemCategory = "real_estate"
	CategoryFinancialAccount  ItemCategory = "financial_account"
	CategoryRetirementAccount ItemCategory = "retirement_account"
	CategoryBusinessInterest  ItemCategory = "business_interest"
	CategoryVehicle           ItemCategory = "vehicle"
	CategoryPersonalProperty  ItemCategory = "personal_property"
	CategoryMortgage          ItemCategory = "mortgage"
	CategoryCreditCard        ItemCategory = "credit_card"
	CategoryStudentLoan       ItemCategory = "student_loan"
	CategoryOther             ItemCategory = "other"
)

// MaritalEstateItem represents a single asset or debt subject to division.
// Assets and debts share the same shape; CurrentValue is always non-negative
// and debts are carried in their own list on CalculationInput.
type MaritalEstateItem struct {
	ID                 string          `yaml:"id" json:"id"`
	Description        string          `yaml:"description" json:"description"`
	Category           ItemCategory    `yaml:"category" json:"category"`
	CurrentValue       decimal.Decimal `yaml:"current_value" json:"current_value"`
	IsSeparateProperty bool            `yaml:"is_separate_property" json:"is_separate_property"`
	OwnedBy            Spouse          `yaml:"owned_by" json:"owned_by"`
	ValuationDate      *time.Time      `yaml:"valuation_date,omitempty" json:"valuation_date,omitempty"`
}

// CalculationInput is the validated record the engine operates on. The engine
// never mutates it.
type CalculationInput struct {
	Jurisdiction   string                `yaml:"jurisdiction" json:"jurisdiction"`
	MarriageDate   time.Time             `yaml:"marriage_date" json:"marriage_date"`
	SeparationDate *time.Time            `yaml:"separation_date,omitempty" json:"separation_date,omitempty"`
	Assets         []MaritalEstateItem   `yaml:"assets" json:"assets"`
	Debts          []MaritalEstateItem   `yaml:"debts" json:"debts"`
	Circumstances  *SpecialCircumstances `yaml:"special_circumstances,omitempty" json:"special_circumstances,omitempty"`
}

// ItemCount returns the total number of line items across assets and debts.
func (ci *CalculationInput) ItemCount() int {
	return len(ci.Assets) + len(ci.Debts)
}

// RoundCents quantizes a monetary amount to cent precision using half-up
// rounding, matching how courts state dollar figures.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
