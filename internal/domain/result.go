package domain

import (
	"github.com/shopspring/decimal"
)

// Regime is a jurisdiction's division regime.
type Regime string

const (
	RegimeCommunity Regime = "community"
	RegimeEquitable Regime = "equitable"
)

// ItemAward records which spouse an indivisible item was allocated to.
type ItemAward struct {
	Item      MaritalEstateItem `json:"item"`
	AwardedTo Spouse            `json:"awarded_to"`
	IsDebt    bool              `json:"is_debt"`
}

// EqualizationPayment is the cash transfer that trues up the physical item
// allocation to the target split.
type EqualizationPayment struct {
	Amount     decimal.Decimal `json:"amount"`
	FromSpouse Spouse          `json:"from_spouse"`
	ToSpouse   Spouse          `json:"to_spouse"`
}

// DivisionResult is the immutable output of a property division calculation.
// Spouse1Share + Spouse2Share always equals NetMaritalEstate to the cent.
type DivisionResult struct {
	Jurisdiction string          `json:"jurisdiction"`
	Regime       Regime          `json:"regime"`
	EquityFactor decimal.Decimal `json:"equity_factor"`

	TotalMaritalAssets decimal.Decimal `json:"total_marital_assets"`
	TotalMaritalDebts  decimal.Decimal `json:"total_marital_debts"`
	NetMaritalEstate   decimal.Decimal `json:"net_marital_estate"`

	Spouse1Share decimal.Decimal `json:"spouse1_share"`
	Spouse2Share decimal.Decimal `json:"spouse2_share"`

	Spouse1SeparateTotal decimal.Decimal `json:"spouse1_separate_total"`
	Spouse2SeparateTotal decimal.Decimal `json:"spouse2_separate_total"`

	// Final totals include the marital share plus separate property net of
	// separate debts.
	Spouse1FinalTotal decimal.Decimal `json:"spouse1_final_total"`
	Spouse2FinalTotal decimal.Decimal `json:"spouse2_final_total"`

	Awards       []ItemAward          `json:"awards"`
	Equalization *EqualizationPayment `json:"equalization_payment,omitempty"`

	ConfidenceLevel   decimal.Decimal `json:"confidence_level"`
	NegativeNetEstate bool            `json:"negative_net_estate"`
}

// AwardsFor returns the awards allocated to one spouse, preserving order.
func (dr *DivisionResult) AwardsFor(s Spouse) []ItemAward {
	var out []ItemAward
	for _, a := range dr.Awards {
		if a.AwardedTo == s {
			out = append(out, a)
		}
	}
	return out
}
