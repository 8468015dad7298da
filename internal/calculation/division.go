package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
)

// Allocation is the outcome of awarding whole items to each spouse. Nets are
// awarded asset value minus awarded debt value, before any cash equalization.
type Allocation struct {
	Awards     []domain.ItemAward
	Spouse1Net decimal.Decimal
	Spouse2Net decimal.Decimal
}

// SplitNet computes each spouse's target share of the net marital estate for
// the given equity factor. Shares are rounded to the cent; any rounding
// remainder is assigned to spouse1 so the two shares always reconcile exactly
// with the net estate.
func SplitNet(net, equityFactor decimal.Decimal) (spouse1, spouse2 decimal.Decimal) {
	spouse1 = domain.RoundCents(net.Mul(equityFactor))
	spouse2 = net.Sub(spouse1)
	return spouse1, spouse2
}

// AllocateItems awards whole marital items to each spouse, approximating the
// target shares. Physical assets are indivisible, so the allocation is a
// greedy pass over items sorted by descending value: each asset goes to the
// spouse furthest below target, each debt to the spouse furthest above.
// Ties go to spouse1 for determinism.
func AllocateItems(assets, debts []domain.MaritalEstateItem, target1, target2 decimal.Decimal) Allocation {
	alloc := Allocation{
		Awards:     make([]domain.ItemAward, 0, len(assets)+len(debts)),
		Spouse1Net: decimal.Zero,
		Spouse2Net: decimal.Zero,
	}

	sorted := make([]domain.MaritalEstateItem, len(assets))
	copy(sorted, assets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CurrentValue.GreaterThan(sorted[j].CurrentValue)
	})

	for _, item := range sorted {
		gap1 := target1.Sub(alloc.Spouse1Net)
		gap2 := target2.Sub(alloc.Spouse2Net)
		to := domain.Spouse1
		if gap2.GreaterThan(gap1) {
			to = domain.Spouse2
		}
		alloc.Awards = append(alloc.Awards, domain.ItemAward{Item: item, AwardedTo: to})
		if to == domain.Spouse1 {
			alloc.Spouse1Net = alloc.Spouse1Net.Add(item.CurrentValue)
		} else {
			alloc.Spouse2Net = alloc.Spouse2Net.Add(item.CurrentValue)
		}
	}

	sortedDebts := make([]domain.MaritalEstateItem, len(debts))
	copy(sortedDebts, debts)
	sort.SliceStable(sortedDebts, func(i, j int) bool {
		return sortedDebts[i].CurrentValue.GreaterThan(sortedDebts[j].CurrentValue)
	})

	for _, item := range sortedDebts {
		over1 := alloc.Spouse1Net.Sub(target1)
		over2 := alloc.Spouse2Net.Sub(target2)
		to := domain.Spouse1
		if over2.GreaterThan(over1) {
			to = domain.Spouse2
		}
		alloc.Awards = append(alloc.Awards, domain.ItemAward{Item: item, AwardedTo: to, IsDebt: true})
		if to == domain.Spouse1 {
			alloc.Spouse1Net = alloc.Spouse1Net.Sub(item.CurrentValue)
		} else {
			alloc.Spouse2Net = alloc.Spouse2Net.Sub(item.CurrentValue)
		}
	}

	return alloc
}

// ComputeEqualization determines the cash transfer that moves the allocated
// nets onto the target shares exactly. Returns nil when the allocation
// already matches the target to the cent.
func ComputeEqualization(alloc Allocation, target1 decimal.Decimal) *domain.EqualizationPayment {
	excess := domain.RoundCents(alloc.Spouse1Net.Sub(target1))
	switch {
	case excess.IsPositive():
		return &domain.EqualizationPayment{
			Amount:     excess,
			FromSpouse: domain.Spouse1,
			ToSpouse:   domain.Spouse2,
		}
	case excess.IsNegative():
		return &domain.EqualizationPayment{
			Amount:     excess.Neg(),
			FromSpouse: domain.Spouse2,
			ToSpouse:   domain.Spouse1,
		}
	default:
		return nil
	}
}

// Divide applies the regime and equity factor to the classified estate and
// produces the division result, excluding confidence scoring. Separate
// property never enters the marital pool or the equalization arithmetic; it
// is added at full value to its owner's final totals.
func Divide(classified *Classified, regime domain.Regime, equityFactor decimal.Decimal) *domain.DivisionResult {
	totalAssets := sumValues(classified.MaritalAssets)
	totalDebts := sumValues(classified.MaritalDebts)
	net := totalAssets.Sub(totalDebts)

	share1, share2 := SplitNet(net, equityFactor)
	alloc := AllocateItems(classified.MaritalAssets, classified.MaritalDebts, share1, share2)
	equalization := ComputeEqualization(alloc, share1)

	sep1 := sumValues(classified.SeparateAssets1).Sub(sumValues(classified.SeparateDebts1))
	sep2 := sumValues(classified.SeparateAssets2).Sub(sumValues(classified.SeparateDebts2))

	return &domain.DivisionResult{
		Regime:               regime,
		EquityFactor:         equityFactor,
		TotalMaritalAssets:   totalAssets,
		TotalMaritalDebts:    totalDebts,
		NetMaritalEstate:     net,
		Spouse1Share:         share1,
		Spouse2Share:         share2,
		Spouse1SeparateTotal: sep1,
		Spouse2SeparateTotal: sep2,
		Spouse1FinalTotal:    share1.Add(sep1),
		Spouse2FinalTotal:    share2.Add(sep2),
		Awards:               alloc.Awards,
		Equalization:         equalization,
		NegativeNetEstate:    net.IsNegative(),
	}
}
