package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
)

// Classified holds the partition of the estate into the marital pool and each
// spouse's separate property. Every input item lands in exactly one bucket.
type Classified struct {
	MaritalAssets []domain.MaritalEstateItem
	MaritalDebts  []domain.MaritalEstateItem

	SeparateAssets1 []domain.MaritalEstateItem
	SeparateAssets2 []domain.MaritalEstateItem
	SeparateDebts1  []domain.MaritalEstateItem
	SeparateDebts2  []domain.MaritalEstateItem
}

// ItemCount returns the total number of classified items across all buckets.
func (c *Classified) ItemCount() int {
	return len(c.MaritalAssets) + len(c.MaritalDebts) +
		len(c.SeparateAssets1) + len(c.SeparateAssets2) +
		len(c.SeparateDebts1) + len(c.SeparateDebts2)
}

// Classify partitions assets and debts into marital and separate buckets.
// An item is separate iff IsSeparateProperty is set, in which case OwnedBy
// must name one spouse; everything else belongs to the marital pool. The
// partition is pure and preserves item count.
func Classify(assets, debts []domain.MaritalEstateItem) (*Classified, error) {
	c := &Classified{}

	for i := range assets {
		item := assets[i]
		if err := validateItem(&item); err != nil {
			return nil, err
		}
		switch {
		case !item.IsSeparateProperty:
			c.MaritalAssets = append(c.MaritalAssets, item)
		case item.OwnedBy == domain.Spouse1:
			c.SeparateAssets1 = append(c.SeparateAssets1, item)
		default:
			c.SeparateAssets2 = append(c.SeparateAssets2, item)
		}
	}

	for i := range debts {
		item := debts[i]
		if err := validateItem(&item); err != nil {
			return nil, err
		}
		switch {
		case !item.IsSeparateProperty:
			c.MaritalDebts = append(c.MaritalDebts, item)
		case item.OwnedBy == domain.Spouse1:
			c.SeparateDebts1 = append(c.SeparateDebts1, item)
		default:
			c.SeparateDebts2 = append(c.SeparateDebts2, item)
		}
	}

	return c, nil
}

func validateItem(item *domain.MaritalEstateItem) error {
	if item.CurrentValue.IsNegative() {
		return fmt.Errorf("%w: item %s has negative value %s",
			domain.ErrInvalidItemValue, item.ID, item.CurrentValue.String())
	}
	if item.IsSeparateProperty && item.OwnedBy != domain.Spouse1 && item.OwnedBy != domain.Spouse2 {
		return fmt.Errorf("%w: separate-property item %s must be owned by spouse1 or spouse2, got %q",
			domain.ErrInconsistentOwnership, item.ID, item.OwnedBy)
	}
	return nil
}

// sumValues totals the CurrentValue of a bucket, rounded to cents.
func sumValues(items []domain.MaritalEstateItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].CurrentValue)
	}
	return domain.RoundCents(total)
}
