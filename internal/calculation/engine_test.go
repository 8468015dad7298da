package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexsplit/pdgo/internal/domain"
	"github.com/lexsplit/pdgo/internal/jurisdiction"
)

func newTestEngine() *Engine {
	return NewEngine(jurisdiction.NewDefaultTable())
}

func baseInput(code string) *domain.CalculationInput {
	return &domain.CalculationInput{
		Jurisdiction: code,
		MarriageDate: time.Date(2005, 6, 18, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Table, "Should hold the jurisdiction table")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := newTestEngine()

	customLogger := &testLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_Calculate_UnknownJurisdiction(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate(baseInput("XX"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction),
		"Unknown codes must fail, never default")
}

// Jurisdiction CA (community), one $500,000 house, nothing else: each spouse
// is owed $250,000 and the house award is trued up with a cash payment.
func TestEngine_Calculate_CommunityHouseOnly(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("CA")
	input.Assets = []domain.MaritalEstateItem{{
		ID:           "house",
		Description:  "Family home",
		Category:     domain.CategoryRealEstate,
		CurrentValue: decimal.NewFromInt(500000),
	}}

	result, err := engine.Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeCommunity, result.Regime)
	assert.True(t, result.EquityFactor.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, result.Spouse1Share.Equal(decimal.NewFromInt(250000)))
	assert.True(t, result.Spouse2Share.Equal(decimal.NewFromInt(250000)))

	require.NotNil(t, result.Equalization, "Awarding the whole house requires a true-up")
	assert.True(t, result.Equalization.Amount.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, domain.Spouse1, result.Equalization.FromSpouse)
	assert.Equal(t, domain.Spouse2, result.Equalization.ToSpouse)
}

// An equitable state with empty circumstances must match the community result
// numerically.
func TestEngine_Calculate_EquitableNeutralMatchesCommunity(t *testing.T) {
	engine := newTestEngine()

	makeInput := func(code string) *domain.CalculationInput {
		input := baseInput(code)
		input.Assets = []domain.MaritalEstateItem{{
			ID:           "house",
			Category:     domain.CategoryRealEstate,
			CurrentValue: decimal.NewFromInt(500000),
		}}
		return input
	}

	community, err := engine.Calculate(makeInput("CA"))
	require.NoError(t, err)
	equitable, err := engine.Calculate(makeInput("PA"))
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeEquitable, equitable.Regime)
	assert.True(t, equitable.EquityFactor.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, community.Spouse1Share.Equal(equitable.Spouse1Share))
	assert.True(t, community.Spouse2Share.Equal(equitable.Spouse2Share))
}

// PA with one asset, one debt, and domestic violence against spouse1: the
// net estate is $200,000, spouse1's target share exceeds half, and the shares
// still reconcile exactly.
func TestEngine_Calculate_EquitableWithCircumstances(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("PA")
	input.Assets = []domain.MaritalEstateItem{{
		ID:           "brokerage",
		Category:     domain.CategoryFinancialAccount,
		CurrentValue: decimal.NewFromInt(300000),
	}}
	input.Debts = []domain.MaritalEstateItem{{
		ID:           "mortgage",
		Category:     domain.CategoryMortgage,
		CurrentValue: decimal.NewFromInt(100000),
	}}
	violenceBy := domain.Spouse2
	input.Circumstances = &domain.SpecialCircumstances{DomesticViolenceBy: &violenceBy}

	result, err := engine.Calculate(input)
	require.NoError(t, err)

	assert.True(t, result.NetMaritalEstate.Equal(decimal.NewFromInt(200000)))
	assert.True(t, result.EquityFactor.GreaterThan(decimal.NewFromFloat(0.5)))
	assert.True(t, result.Spouse1Share.GreaterThan(result.Spouse2Share))
	assert.True(t, result.Spouse1Share.Add(result.Spouse2Share).Equal(decimal.NewFromInt(200000)),
		"Shares must sum to the net estate")
}

func TestEngine_Calculate_Deterministic(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("NY")
	input.Assets = []domain.MaritalEstateItem{
		asset("a1", 123456.78), asset("a2", 98765.43), asset("a3", 50000),
	}
	input.Debts = []domain.MaritalEstateItem{asset("d1", 23456.78)}
	lower := domain.Spouse2
	input.Circumstances = &domain.SpecialCircumstances{LowerEarningCapacity: &lower}

	first, err := engine.Calculate(input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.Calculate(input)
		require.NoError(t, err)
		assert.Equal(t, first, again, "Identical input must yield identical output")
	}
}

func TestEngine_Calculate_CommunityIgnoresCircumstances(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("TX")
	input.Assets = []domain.MaritalEstateItem{asset("savings", 80000)}
	violenceBy := domain.Spouse2
	input.Circumstances = &domain.SpecialCircumstances{DomesticViolenceBy: &violenceBy}

	result, err := engine.Calculate(input)
	require.NoError(t, err)
	assert.True(t, result.EquityFactor.Equal(decimal.NewFromFloat(0.5)),
		"Community property is a strict 50/50 regardless of circumstances")
}

func TestEngine_Calculate_PropagatesClassificationErrors(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("CA")
	bad := asset("bad", 0)
	bad.CurrentValue = decimal.NewFromInt(-1)
	input.Assets = []domain.MaritalEstateItem{bad}

	_, err := engine.Calculate(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidItemValue))
}

func TestEngine_Calculate_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()

	input := baseInput("PA")
	input.Assets = []domain.MaritalEstateItem{asset("a1", 100), asset("a2", 5000)}
	snapshot := *input
	assetsCopy := append([]domain.MaritalEstateItem{}, input.Assets...)

	_, err := engine.Calculate(input)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Jurisdiction, input.Jurisdiction)
	assert.Equal(t, assetsCopy, input.Assets, "Engine must not reorder or mutate input items")
}

// testLogger records messages for assertions.
type testLogger struct {
	messages []string
}

func (l *testLogger) Debugf(format string, args ...any) { l.messages = append(l.messages, format) }
func (l *testLogger) Infof(format string, args ...any)  { l.messages = append(l.messages, format) }
func (l *testLogger) Warnf(format string, args ...any)  { l.messages = append(l.messages, format) }
func (l *testLogger) Errorf(format string, args ...any) { l.messages = append(l.messages, format) }
