package compare

import (
	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
)

// JurisdictionResult captures one jurisdiction's division of the shared
// estate.
type JurisdictionResult struct {
	Jurisdiction string          `json:"jurisdiction"`
	Regime       domain.Regime   `json:"regime"`
	EquityFactor decimal.Decimal `json:"equity_factor"`
	Spouse1Share decimal.Decimal `json:"spouse1_share"`
	Spouse2Share decimal.Decimal `json:"spouse2_share"`
	Confidence   decimal.Decimal `json:"confidence_level"`

	Equalization *domain.EqualizationPayment `json:"equalization_payment,omitempty"`

	// Deltas from the base jurisdiction's result.
	Share1DiffFromBase decimal.Decimal `json:"spouse1_share_diff_from_base"`
}

// ComparisonSet is the full output of a multi-jurisdiction comparison. The
// first requested jurisdiction is the base; all deltas are relative to it.
type ComparisonSet struct {
	BaseJurisdiction   string               `json:"base_jurisdiction"`
	NetMaritalEstate   decimal.Decimal      `json:"net_marital_estate"`
	BaseResult         *JurisdictionResult  `json:"base_result"`
	AlternativeResults []JurisdictionResult `json:"alternative_results"`
}
