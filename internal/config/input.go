package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexsplit/pdgo/internal/domain"
)

// InputParser handles parsing of calculation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file and applies
// domain-level validation.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.CalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput performs domain-level validation. Schema-level concerns
// (malformed numbers, unknown enum spellings) are assumed handled upstream;
// this checks value ranges and structural consistency.
func (ip *InputParser) ValidateInput(input *domain.CalculationInput) error {
	if input.Jurisdiction == "" {
		return fmt.Errorf("jurisdiction is required")
	}
	if input.MarriageDate.IsZero() {
		return fmt.Errorf("marriage date is required")
	}
	if input.SeparationDate != nil && input.SeparationDate.Before(input.MarriageDate) {
		return fmt.Errorf("separation date cannot be before marriage date")
	}

	for i := range input.Assets {
		if err := ip.validateItem(&input.Assets[i]); err != nil {
			return fmt.Errorf("asset %d (%s): %w", i, input.Assets[i].ID, err)
		}
	}
	for i := range input.Debts {
		if err := ip.validateItem(&input.Debts[i]); err != nil {
			return fmt.Errorf("debt %d (%s): %w", i, input.Debts[i].ID, err)
		}
	}

	if sc := input.Circumstances; sc != nil {
		if err := ip.validateCircumstances(sc); err != nil {
			return fmt.Errorf("special circumstances: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateItem(item *domain.MaritalEstateItem) error {
	if item.ID == "" {
		return fmt.Errorf("id is required")
	}
	if item.CurrentValue.IsNegative() {
		return fmt.Errorf("%w: current value cannot be negative", domain.ErrInvalidItemValue)
	}
	if item.IsSeparateProperty {
		if item.OwnedBy != domain.Spouse1 && item.OwnedBy != domain.Spouse2 {
			return fmt.Errorf("%w: separate property must be owned by spouse1 or spouse2",
				domain.ErrInconsistentOwnership)
		}
	} else if item.OwnedBy != "" && item.OwnedBy != domain.SpouseJoint &&
		item.OwnedBy != domain.Spouse1 && item.OwnedBy != domain.Spouse2 {
		return fmt.Errorf("%w: unknown owner %q", domain.ErrInconsistentOwnership, item.OwnedBy)
	}
	return nil
}

func (ip *InputParser) validateCircumstances(sc *domain.SpecialCircumstances) error {
	if sc.MarriageDurationYears != nil && sc.MarriageDurationYears.IsNegative() {
		return fmt.Errorf("marriage duration cannot be negative")
	}
	if sc.Spouse1AnnualIncome != nil && sc.Spouse1AnnualIncome.IsNegative() {
		return fmt.Errorf("spouse1 annual income cannot be negative")
	}
	if sc.Spouse2AnnualIncome != nil && sc.Spouse2AnnualIncome.IsNegative() {
		return fmt.Errorf("spouse2 annual income cannot be negative")
	}
	if sc.Spouse1PriorMarriages != nil && *sc.Spouse1PriorMarriages < 0 {
		return fmt.Errorf("spouse1 prior marriages cannot be negative")
	}
	if sc.Spouse2PriorMarriages != nil && *sc.Spouse2PriorMarriages < 0 {
		return fmt.Errorf("spouse2 prior marriages cannot be negative")
	}

	for name, s := range map[string]*domain.Spouse{
		"marital_misconduct_by":  sc.MaritalMisconductBy,
		"domestic_violence_by":   sc.DomesticViolenceBy,
		"assets_wasted_by":       sc.AssetsWastedBy,
		"education_supported_by": sc.EducationSupportedBy,
		"lower_earning_capacity": sc.LowerEarningCapacity,
		"custodial_parent":       sc.CustodialParent,
	} {
		if s != nil && *s != domain.Spouse1 && *s != domain.Spouse2 {
			return fmt.Errorf("%s must name spouse1 or spouse2, got %q", name, *s)
		}
	}

	for name, h := range map[string]*domain.HealthStatus{
		"spouse1_health": sc.Spouse1Health,
		"spouse2_health": sc.Spouse2Health,
	} {
		if h == nil {
			continue
		}
		switch *h {
		case domain.HealthExcellent, domain.HealthGood, domain.HealthFair, domain.HealthPoor:
		default:
			return fmt.Errorf("%s must be excellent, good, fair, or poor, got %q", name, *h)
		}
	}

	return nil
}
