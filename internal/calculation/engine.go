package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
	"github.com/lexsplit/pdgo/internal/jurisdiction"
)

// Logger is the minimal logging surface the engine emits progress through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Engine computes property divisions. It is a pure function of its input and
// the immutable jurisdiction table it was constructed with, and is safe for
// concurrent use.
type Engine struct {
	Table  *jurisdiction.Table
	Logger Logger
}

// NewEngine creates an engine over the given jurisdiction rule table.
func NewEngine(table *jurisdiction.Table) *Engine {
	return &Engine{
		Table:  table,
		Logger: NopLogger{},
	}
}

// SetLogger installs a custom logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate runs the full division pipeline: classify, select regime, compute
// the equity factor where the regime calls for one, divide, and score
// confidence. The input is never mutated and identical inputs always produce
// identical results.
func (e *Engine) Calculate(input *domain.CalculationInput) (*domain.DivisionResult, error) {
	regime, err := e.Table.Regime(input.Jurisdiction)
	if err != nil {
		return nil, err
	}

	classified, err := Classify(input.Assets, input.Debts)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	e.Logger.Debugf("classified %d items: %d marital assets, %d marital debts",
		classified.ItemCount(), len(classified.MaritalAssets), len(classified.MaritalDebts))

	equityFactor := decimal.NewFromFloat(0.5)
	if regime == domain.RegimeEquitable {
		weights, err := e.Table.FactorWeights(input.Jurisdiction)
		if err != nil {
			return nil, err
		}
		equityFactor = ComputeEquityFactor(input.Circumstances, weights)
		e.Logger.Debugf("equity factor for %s: %s", input.Jurisdiction, equityFactor.String())
	}

	result := Divide(classified, regime, equityFactor)
	result.Jurisdiction = input.Jurisdiction
	result.ConfidenceLevel = ScoreConfidence(input)

	if result.NegativeNetEstate {
		e.Logger.Warnf("net marital estate is negative (%s): debts exceed assets",
			result.NetMaritalEstate.StringFixed(2))
	}

	return result, nil
}
