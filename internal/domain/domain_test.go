package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSpouse_Other(t *testing.T) {
	assert.Equal(t, Spouse2, Spouse1.Other())
	assert.Equal(t, Spouse1, Spouse2.Other())
	assert.Equal(t, SpouseJoint, SpouseJoint.Other(), "Joint has no opposite")
}

func TestHealthStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, HealthPoor.Rank())
	assert.Equal(t, 1, HealthFair.Rank())
	assert.Equal(t, 2, HealthGood.Rank())
	assert.Equal(t, 3, HealthExcellent.Rank())
	assert.Equal(t, 2, HealthStatus("unknown").Rank(), "Unknown ranks as good")
}

func TestSpecialCircumstances_IsEmpty(t *testing.T) {
	var sc *SpecialCircumstances
	assert.True(t, sc.IsEmpty(), "Nil bundle is empty")
	assert.True(t, (&SpecialCircumstances{}).IsEmpty())
	assert.True(t, (&SpecialCircumstances{Notes: "free text only"}).IsEmpty(),
		"Notes alone do not make a factor applicable")

	s := Spouse1
	assert.False(t, (&SpecialCircumstances{CustodialParent: &s}).IsEmpty())

	income := decimal.NewFromInt(50000)
	assert.False(t, (&SpecialCircumstances{Spouse1AnnualIncome: &income}).IsEmpty())
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"100", "100"},
	}
	for _, tt := range tests {
		in, _ := decimal.NewFromString(tt.in)
		want, _ := decimal.NewFromString(tt.want)
		assert.True(t, RoundCents(in).Equal(want), "RoundCents(%s) = %s, want %s",
			tt.in, RoundCents(in), tt.want)
	}
}

func TestDivisionResult_AwardsFor(t *testing.T) {
	result := DivisionResult{
		Awards: []ItemAward{
			{Item: MaritalEstateItem{ID: "a"}, AwardedTo: Spouse1},
			{Item: MaritalEstateItem{ID: "b"}, AwardedTo: Spouse2},
			{Item: MaritalEstateItem{ID: "c"}, AwardedTo: Spouse1, IsDebt: true},
		},
	}

	awards := result.AwardsFor(Spouse1)
	assert.Len(t, awards, 2)
	assert.Equal(t, "a", awards[0].Item.ID)
	assert.Equal(t, "c", awards[1].Item.ID)
}

func TestCalculationInput_ItemCount(t *testing.T) {
	input := CalculationInput{
		Assets: []MaritalEstateItem{{ID: "a"}, {ID: "b"}},
		Debts:  []MaritalEstateItem{{ID: "d"}},
	}
	assert.Equal(t, 3, input.ItemCount())
}
