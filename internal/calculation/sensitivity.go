package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
	"github.com/lexsplit/pdgo/internal/jurisdiction"
)

// FactorSensitivity reports the marginal effect of one active factor: the
// change in spouse1's share when that factor alone is neutralized.
type FactorSensitivity struct {
	FactorKey      string          `json:"factor_key"`
	Weight         decimal.Decimal `json:"weight"`
	AdjustedFactor decimal.Decimal `json:"adjusted_equity_factor"`
	AdjustedShare1 decimal.Decimal `json:"adjusted_spouse1_share"`
	ShareDelta     decimal.Decimal `json:"spouse1_share_delta"`
}

// SensitivityAnalysis is the per-factor sweep over one calculation input.
type SensitivityAnalysis struct {
	Jurisdiction string              `json:"jurisdiction"`
	BaseFactor   decimal.Decimal     `json:"base_equity_factor"`
	BaseShare1   decimal.Decimal     `json:"base_spouse1_share"`
	Results      []FactorSensitivity `json:"results"`
}

// AnalyzeFactorSensitivity recomputes the division once per active factor
// with that factor's weight zeroed, isolating each factor's contribution to
// the final split. Only meaningful for equitable-distribution jurisdictions;
// community-property inputs yield an empty result set.
func (e *Engine) AnalyzeFactorSensitivity(input *domain.CalculationInput) (*SensitivityAnalysis, error) {
	regime, err := e.Table.Regime(input.Jurisdiction)
	if err != nil {
		return nil, err
	}

	base, err := e.Calculate(input)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base division: %w", err)
	}

	analysis := &SensitivityAnalysis{
		Jurisdiction: input.Jurisdiction,
		BaseFactor:   base.EquityFactor,
		BaseShare1:   base.Spouse1Share,
	}
	if regime != domain.RegimeEquitable {
		return analysis, nil
	}

	weights, err := e.Table.FactorWeights(input.Jurisdiction)
	if err != nil {
		return nil, err
	}

	for _, key := range ActiveFactors(input.Circumstances, weights) {
		adjusted := neutralizeFactor(weights, key)
		factor := ComputeEquityFactor(input.Circumstances, adjusted)
		share1, _ := SplitNet(base.NetMaritalEstate, factor)

		analysis.Results = append(analysis.Results, FactorSensitivity{
			FactorKey:      key,
			Weight:         weights[key],
			AdjustedFactor: factor,
			AdjustedShare1: share1,
			ShareDelta:     base.Spouse1Share.Sub(share1),
		})
	}

	return analysis, nil
}

// neutralizeFactor copies the weight set with one factor zeroed. The original
// map is shared table state and must not be mutated.
func neutralizeFactor(weights jurisdiction.FactorWeights, key string) jurisdiction.FactorWeights {
	adjusted := make(jurisdiction.FactorWeights, len(weights))
	for k, w := range weights {
		adjusted[k] = w
	}
	adjusted[key] = decimal.Zero
	return adjusted
}
