package jurisdiction

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexsplit/pdgo/internal/domain"
)

func TestNewDefaultTable_CoversAllJurisdictions(t *testing.T) {
	table := NewDefaultTable()

	// 50 states plus DC
	assert.Len(t, table.Codes(), 51, "Should cover 50 states plus DC")
	assert.Equal(t, "2025.1", table.Version(), "Should carry a data version")
}

func TestTable_Regime(t *testing.T) {
	table := NewDefaultTable()

	tests := []struct {
		code   string
		regime domain.Regime
	}{
		{"CA", domain.RegimeCommunity},
		{"TX", domain.RegimeCommunity},
		{"WA", domain.RegimeCommunity},
		{"PA", domain.RegimeEquitable},
		{"NY", domain.RegimeEquitable},
		{"DC", domain.RegimeEquitable},
		{"AK", domain.RegimeEquitable},
	}

	for _, tt := range tests {
		regime, err := table.Regime(tt.code)
		require.NoError(t, err, "Should resolve %s", tt.code)
		assert.Equal(t, tt.regime, regime, "Wrong regime for %s", tt.code)
	}
}

func TestTable_Regime_CaseInsensitive(t *testing.T) {
	table := NewDefaultTable()

	regime, err := table.Regime(" ca ")
	require.NoError(t, err)
	assert.Equal(t, domain.RegimeCommunity, regime, "Should normalize code casing and whitespace")
}

func TestTable_Regime_Unknown(t *testing.T) {
	table := NewDefaultTable()

	_, err := table.Regime("ZZ")
	require.Error(t, err, "Unknown jurisdiction must never default")
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction), "Should wrap ErrUnknownJurisdiction")
}

func TestTable_FactorWeights(t *testing.T) {
	table := NewDefaultTable()

	weights, err := table.FactorWeights("PA")
	require.NoError(t, err)
	assert.Equal(t, DefaultFactorWeights, weights, "Equitable state without overrides gets the default set")

	community, err := table.FactorWeights("CA")
	require.NoError(t, err)
	assert.Empty(t, community, "Community state has no factor weights")

	_, err = table.FactorWeights("XX")
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction))
}

func TestLoadTableFromFile(t *testing.T) {
	content := `
version: "test.1"
jurisdictions:
  CA:
    name: California
    regime: community
  PA:
    name: Pennsylvania
    regime: equitable
    factor_weights:
      income_disparity: 0.12
`
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTableFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test.1", table.Version())
	assert.Equal(t, []string{"CA", "PA"}, table.Codes())

	weights, err := table.FactorWeights("PA")
	require.NoError(t, err)
	assert.True(t, weights["income_disparity"].Equal(decimal.NewFromFloat(0.12)),
		"Override weight should replace the default")

	_, err = table.Regime("NY")
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction),
		"File table replaces the built-in table entirely")
}

func TestLoadTableFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing version", "jurisdictions:\n  CA:\n    regime: community\n"},
		{"no entries", "version: \"v\"\n"},
		{"bad regime", "version: \"v\"\njurisdictions:\n  CA:\n    regime: hybrid\n"},
		{"negative weight", "version: \"v\"\njurisdictions:\n  PA:\n    regime: equitable\n    factor_weights:\n      income_disparity: -0.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadTableFromFile(path)
			assert.Error(t, err)
		})
	}
}
