package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
)

// Confidence scoring starts from a baseline and subtracts a fixed penalty per
// uncertainty signal. Adding signals never raises the score. The score is
// informational only and never alters the division itself.
var (
	confidenceBaseline = decimal.NewFromFloat(0.95)

	penaltyMissingValuationDate = decimal.NewFromFloat(0.05)
	penaltyHighUncertainty      = decimal.NewFromFloat(0.07)
	penaltyFewItems             = decimal.NewFromFloat(0.10)
	penaltyUnresolvedCategory   = decimal.NewFromFloat(0.04)
)

// minItemsForConfidence is the line-item count below which the estate is
// considered too thin to resemble a fully inventoried marriage.
const minItemsForConfidence = 3

// ScoreConfidence estimates how much the computed division may deviate from
// a real adjudicated outcome, in [0, 1].
func ScoreConfidence(input *domain.CalculationInput) decimal.Decimal {
	score := confidenceBaseline

	if anyMissingValuationDate(input.Assets) || anyMissingValuationDate(input.Debts) {
		score = score.Sub(penaltyMissingValuationDate)
	}

	sc := input.Circumstances
	if sc != nil && sc.DomesticViolenceBy != nil {
		score = score.Sub(penaltyHighUncertainty)
	}
	if sc != nil && sc.AssetsWastedBy != nil {
		score = score.Sub(penaltyHighUncertainty)
	}
	if anyCategory(input.Assets, domain.CategoryBusinessInterest) {
		// Business interests are the hardest assets to value reliably.
		score = score.Sub(penaltyHighUncertainty)
	}

	if input.ItemCount() < minItemsForConfidence {
		score = score.Sub(penaltyFewItems)
	}

	if anyUnresolvedCategory(input.Assets) || anyUnresolvedCategory(input.Debts) {
		score = score.Sub(penaltyUnresolvedCategory)
	}

	if score.IsNegative() {
		return decimal.Zero
	}
	return score
}

func anyMissingValuationDate(items []domain.MaritalEstateItem) bool {
	for i := range items {
		if items[i].ValuationDate == nil {
			return true
		}
	}
	return false
}

func anyCategory(items []domain.MaritalEstateItem, cat domain.ItemCategory) bool {
	for i := range items {
		if items[i].Category == cat {
			return true
		}
	}
	return false
}

func anyUnresolvedCategory(items []domain.MaritalEstateItem) bool {
	for i := range items {
		if items[i].Category == domain.CategoryOther || items[i].Category == "" {
			return true
		}
	}
	return false
}
