package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
	"github.com/lexsplit/pdgo/internal/jurisdiction"
)

// FactorFloor and FactorCeiling bound how far a computed division may deviate
// from an even split. Courts rarely award extreme splits absent adjudication;
// these are policy values pending domain-expert review, not statutory figures.
var (
	FactorFloor   = decimal.NewFromFloat(0.25)
	FactorCeiling = decimal.NewFromFloat(0.75)
)

// incomeDisparityThreshold is the relative gap between spousal incomes below
// which the income-disparity factor is treated as neutral.
var incomeDisparityThreshold = decimal.NewFromFloat(0.25)

// longMarriageYears is the duration at which the marriage-duration factor
// begins to reinforce the economically weaker spouse's position.
var longMarriageYears = decimal.NewFromInt(20)

// Lean is a factor's direction: toward spouse1 (+1), spouse2 (-1), or neutral.
type Lean int

const (
	LeanNone    Lean = 0
	LeanSpouse1 Lean = 1
	LeanSpouse2 Lean = -1
)

func leanToward(s domain.Spouse) Lean {
	switch s {
	case domain.Spouse1:
		return LeanSpouse1
	case domain.Spouse2:
		return LeanSpouse2
	default:
		return LeanNone
	}
}

// FactorDefinition is one statutory factor in the declarative table the
// equity calculator iterates. Applies inspects the circumstances bundle and
// reports which spouse, if either, the factor favors; the factor's weight
// comes from the jurisdiction's published weight set.
type FactorDefinition struct {
	Key         string
	Description string
	Applies     func(sc *domain.SpecialCircumstances) Lean
}

// FactorDefinitions is the ordered statutory factor table. Order matters only
// for reporting; the weighted sum is order-independent.
var FactorDefinitions = []FactorDefinition{
	{
		Key:         "income_disparity",
		Description: "Meaningful gap between current spousal incomes",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.Spouse1AnnualIncome == nil || sc.Spouse2AnnualIncome == nil {
				return LeanNone
			}
			inc1, inc2 := *sc.Spouse1AnnualIncome, *sc.Spouse2AnnualIncome
			larger := decimal.Max(inc1, inc2)
			if larger.IsZero() {
				return LeanNone
			}
			gap := inc1.Sub(inc2).Abs().Div(larger)
			if gap.LessThan(incomeDisparityThreshold) {
				return LeanNone
			}
			// The lower earner receives the lean.
			if inc1.LessThan(inc2) {
				return LeanSpouse1
			}
			return LeanSpouse2
		},
	},
	{
		Key:         "health_disadvantage",
		Description: "One spouse in materially worse health",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.Spouse1Health == nil || sc.Spouse2Health == nil {
				return LeanNone
			}
			r1, r2 := sc.Spouse1Health.Rank(), sc.Spouse2Health.Rank()
			switch {
			case r1 < r2:
				return LeanSpouse1
			case r2 < r1:
				return LeanSpouse2
			default:
				return LeanNone
			}
		},
	},
	{
		Key:         "marital_misconduct",
		Description: "Marital misconduct by one spouse",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.MaritalMisconductBy == nil {
				return LeanNone
			}
			return leanToward(sc.MaritalMisconductBy.Other())
		},
	},
	{
		Key:         "domestic_violence",
		Description: "Documented domestic violence by one spouse",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.DomesticViolenceBy == nil {
				return LeanNone
			}
			return leanToward(sc.DomesticViolenceBy.Other())
		},
	},
	{
		Key:         "wasting_of_assets",
		Description: "Dissipation of marital assets by one spouse",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.AssetsWastedBy == nil {
				return LeanNone
			}
			return leanToward(sc.AssetsWastedBy.Other())
		},
	},
	{
		Key:         "education_contribution",
		Description: "One spouse funded the other's education or training",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.EducationSupportedBy == nil {
				return LeanNone
			}
			return leanToward(*sc.EducationSupportedBy)
		},
	},
	{
		Key:         "marriage_duration",
		Description: "Long marriage reinforcing the weaker earner's claim",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.MarriageDurationYears == nil || sc.LowerEarningCapacity == nil {
				return LeanNone
			}
			if sc.MarriageDurationYears.LessThan(longMarriageYears) {
				return LeanNone
			}
			return leanToward(*sc.LowerEarningCapacity)
		},
	},
	{
		Key:         "earning_capacity",
		Description: "Asymmetric future earning capacity",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.LowerEarningCapacity == nil {
				return LeanNone
			}
			return leanToward(*sc.LowerEarningCapacity)
		},
	},
	{
		Key:         "prior_marriages",
		Description: "Unequal number of prior marriages",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.Spouse1PriorMarriages == nil || sc.Spouse2PriorMarriages == nil {
				return LeanNone
			}
			switch {
			case *sc.Spouse1PriorMarriages < *sc.Spouse2PriorMarriages:
				return LeanSpouse1
			case *sc.Spouse2PriorMarriages < *sc.Spouse1PriorMarriages:
				return LeanSpouse2
			default:
				return LeanNone
			}
		},
	},
	{
		Key:         "custodial_parent",
		Description: "Primary custody of minor children",
		Applies: func(sc *domain.SpecialCircumstances) Lean {
			if sc.CustodialParent == nil {
				return LeanNone
			}
			return leanToward(*sc.CustodialParent)
		},
	},
}

// ComputeEquityFactor converts the circumstances bundle into spouse1's target
// share of the marital estate under the given jurisdiction weight set.
// 0.5 is an even split. The result is clamped to [FactorFloor, FactorCeiling]
// and an empty or all-neutral bundle yields exactly 0.5.
func ComputeEquityFactor(sc *domain.SpecialCircumstances, weights jurisdiction.FactorWeights) decimal.Decimal {
	half := decimal.NewFromFloat(0.5)
	if sc.IsEmpty() || len(weights) == 0 {
		return half
	}

	sum := decimal.Zero
	for _, def := range FactorDefinitions {
		weight, ok := weights[def.Key]
		if !ok || weight.IsZero() {
			continue
		}
		switch def.Applies(sc) {
		case LeanSpouse1:
			sum = sum.Add(weight)
		case LeanSpouse2:
			sum = sum.Sub(weight)
		}
	}

	factor := half.Add(sum)
	if factor.LessThan(FactorFloor) {
		return FactorFloor
	}
	if factor.GreaterThan(FactorCeiling) {
		return FactorCeiling
	}
	return factor
}

// ActiveFactors returns the keys of factors contributing non-zero weight for
// the given bundle and weight set, in table order.
func ActiveFactors(sc *domain.SpecialCircumstances, weights jurisdiction.FactorWeights) []string {
	if sc.IsEmpty() {
		return nil
	}
	var keys []string
	for _, def := range FactorDefinitions {
		weight, ok := weights[def.Key]
		if !ok || weight.IsZero() {
			continue
		}
		if def.Applies(sc) != LeanNone {
			keys = append(keys, def.Key)
		}
	}
	return keys
}
