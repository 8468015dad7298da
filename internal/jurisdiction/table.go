package jurisdiction

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lexsplit/pdgo/internal/domain"
)

// FactorWeights maps a statutory factor key to its published weight. Weights
// are policy values pending domain-expert review; they carry no statutory
// citation and are therefore data, not code.
type FactorWeights map[string]decimal.Decimal

// Entry describes one jurisdiction's division rules.
type Entry struct {
	Name          string        `yaml:"name" json:"name"`
	Regime        domain.Regime `yaml:"regime" json:"regime"`
	FactorWeights FactorWeights `yaml:"factor_weights,omitempty" json:"factor_weights,omitempty"`
}

// Table is the immutable jurisdiction rule table. Construct it once at
// startup and share it freely; it is never mutated after construction.
type Table struct {
	version string
	entries map[string]Entry
}

// Version identifies the rule data vintage for audit trails.
func (t *Table) Version() string { return t.version }

// Regime returns the division regime for a jurisdiction code. Unknown codes
// are an error; regime choice has legal significance and is never defaulted.
func (t *Table) Regime(code string) (domain.Regime, error) {
	e, ok := t.entries[normalize(code)]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownJurisdiction, code)
	}
	return e.Regime, nil
}

// FactorWeights returns the factor weight set for a jurisdiction code.
// Community-property jurisdictions have no factors and return an empty set.
func (t *Table) FactorWeights(code string) (FactorWeights, error) {
	e, ok := t.entries[normalize(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownJurisdiction, code)
	}
	if e.Regime != domain.RegimeEquitable {
		return FactorWeights{}, nil
	}
	if e.FactorWeights != nil {
		return e.FactorWeights, nil
	}
	return DefaultFactorWeights, nil
}

// Lookup returns the full entry for a jurisdiction code.
func (t *Table) Lookup(code string) (Entry, error) {
	e, ok := t.entries[normalize(code)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", domain.ErrUnknownJurisdiction, code)
	}
	return e, nil
}

// Codes returns all jurisdiction codes in the table, sorted.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DefaultFactorWeights is the published statutory-factor weight set applied
// by equitable-distribution jurisdictions that do not override it.
var DefaultFactorWeights = FactorWeights{
	"income_disparity":       decimal.NewFromFloat(0.08),
	"wasting_of_assets":      decimal.NewFromFloat(0.07),
	"health_disadvantage":    decimal.NewFromFloat(0.06),
	"domestic_violence":      decimal.NewFromFloat(0.06),
	"earning_capacity":       decimal.NewFromFloat(0.06),
	"custodial_parent":       decimal.NewFromFloat(0.05),
	"marriage_duration":      decimal.NewFromFloat(0.04),
	"marital_misconduct":     decimal.NewFromFloat(0.04),
	"education_contribution": decimal.NewFromFloat(0.03),
	"prior_marriages":        decimal.NewFromFloat(0.01),
}

// communityStates are the nine community-property jurisdictions. Alaska's
// opt-in community regime is treated as equitable, matching its default.
var communityStates = map[string]string{
	"AZ": "Arizona",
	"CA": "California",
	"ID": "Idaho",
	"LA": "Louisiana",
	"NM": "New Mexico",
	"NV": "Nevada",
	"TX": "Texas",
	"WA": "Washington",
	"WI": "Wisconsin",
}

var equitableStates = map[string]string{
	"AK": "Alaska", "AL": "Alabama", "AR": "Arkansas", "CO": "Colorado",
	"CT": "Connecticut", "DC": "District of Columbia", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "IA": "Iowa",
	"IL": "Illinois", "IN": "Indiana", "KS": "Kansas", "KY": "Kentucky",
	"MA": "Massachusetts", "MD": "Maryland", "ME": "Maine", "MI": "Michigan",
	"MN": "Minnesota", "MO": "Missouri", "MS": "Mississippi", "MT": "Montana",
	"NC": "North Carolina", "ND": "North Dakota", "NE": "Nebraska",
	"NH": "New Hampshire", "NJ": "New Jersey", "NY": "New York",
	"OH": "Ohio", "OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "UT": "Utah", "VA": "Virginia", "VT": "Vermont",
	"WV": "West Virginia", "WY": "Wyoming",
}

// NewDefaultTable builds the built-in rule table covering all 50 states plus
// the District of Columbia.
func NewDefaultTable() *Table {
	entries := make(map[string]Entry, len(communityStates)+len(equitableStates))
	for code, name := range communityStates {
		entries[code] = Entry{Name: name, Regime: domain.RegimeCommunity}
	}
	for code, name := range equitableStates {
		entries[code] = Entry{Name: name, Regime: domain.RegimeEquitable}
	}
	return &Table{version: "2025.1", entries: entries}
}

// tableFile is the on-disk override format, mirroring the built-in table.
type tableFile struct {
	Version       string           `yaml:"version"`
	Jurisdictions map[string]Entry `yaml:"jurisdictions"`
}

// LoadTableFromFile reads a jurisdiction rule table from a YAML file. The
// file replaces the built-in table entirely so a single source of rule data
// governs a given run.
func LoadTableFromFile(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read jurisdiction table %s: %w", filename, err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse jurisdiction table: %w", err)
	}
	if tf.Version == "" {
		return nil, fmt.Errorf("jurisdiction table version is required")
	}
	if len(tf.Jurisdictions) == 0 {
		return nil, fmt.Errorf("jurisdiction table has no entries")
	}

	entries := make(map[string]Entry, len(tf.Jurisdictions))
	for code, e := range tf.Jurisdictions {
		if e.Regime != domain.RegimeCommunity && e.Regime != domain.RegimeEquitable {
			return nil, fmt.Errorf("jurisdiction %s: regime must be %q or %q, got %q",
				code, domain.RegimeCommunity, domain.RegimeEquitable, e.Regime)
		}
		for key, w := range e.FactorWeights {
			if w.IsNegative() {
				return nil, fmt.Errorf("jurisdiction %s: factor %s weight cannot be negative", code, key)
			}
		}
		entries[normalize(code)] = e
	}

	return &Table{version: tf.Version, entries: entries}, nil
}
