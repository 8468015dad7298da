package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/calculation"
	"github.com/lexsplit/pdgo/internal/domain"
)

// CompareEngine runs one estate through multiple jurisdictions and tabulates
// the differences. Useful for showing how much the outcome depends on where
// the divorce is filed.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine over an existing calculator.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare calculates the division under each jurisdiction code in order. The
// first code is the base; remaining results carry deltas from it. The input's
// own jurisdiction field is ignored in favor of the requested codes.
func (ce *CompareEngine) Compare(input *domain.CalculationInput, codes []string) (*ComparisonSet, error) {
	if len(codes) < 2 {
		return nil, fmt.Errorf("comparison requires at least two jurisdictions, got %d", len(codes))
	}

	results := make([]JurisdictionResult, 0, len(codes))
	netEstate := decimal.Zero
	for i, code := range codes {
		scoped := *input
		scoped.Jurisdiction = code

		result, err := ce.CalcEngine.Calculate(&scoped)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate division for %s: %w", code, err)
		}
		if i == 0 {
			// The net estate is jurisdiction-independent.
			netEstate = result.NetMaritalEstate
		}

		results = append(results, JurisdictionResult{
			Jurisdiction: code,
			Regime:       result.Regime,
			EquityFactor: result.EquityFactor,
			Spouse1Share: result.Spouse1Share,
			Spouse2Share: result.Spouse2Share,
			Confidence:   result.ConfidenceLevel,
			Equalization: result.Equalization,
		})
	}

	base := results[0]
	alternatives := results[1:]
	for i := range alternatives {
		alternatives[i].Share1DiffFromBase = alternatives[i].Spouse1Share.Sub(base.Spouse1Share)
	}

	return &ComparisonSet{
		BaseJurisdiction:   codes[0],
		NetMaritalEstate:   netEstate,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}, nil
}
