// Package market implements the pure listing pipeline: buyable filtering,
// per-seller indexing, cross-card matching and price summaries.
package market

import (
	"cmp"
	"slices"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// FilterBuyable keeps active, in-stock listings and, unless includeFlawed is
// set, only those in perfect condition. The result is in canonical order.
func FilterBuyable(listings []domain.Listing, includeFlawed bool) []domain.BuyableListing {
	out := make([]domain.BuyableListing, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if !l.Buyable() {
			continue
		}
		if !includeFlawed && l.Condition != domain.ConditionPerfect {
			continue
		}
		out = append(out, domain.BuyableListing{
			Listing:        *l,
			ConditionLabel: l.Condition.Label(),
		})
	}
	SortCanonical(out)
	return out
}

// SortCanonical orders listings by price ascending, credit descending, then
// seller nickname and seller id ascending. Listings from the same seller at
// the same price are ordered by stock descending, better condition first,
// then by the remaining listing and variant fields, so the order does not
// depend on the input order.
func SortCanonical(listings []domain.BuyableListing) {
	slices.SortStableFunc(listings, compareCanonical)
}

// conditionOrder ranks conditions best first. Unknown values sort last.
var conditionOrder = []domain.Condition{
	domain.ConditionPerfect,
	domain.ConditionNearPerfect,
	domain.ConditionGood,
	domain.ConditionFair,
	domain.ConditionPoor,
	domain.ConditionFlawed,
}

func conditionRank(c domain.Condition) int {
	if i := slices.Index(conditionOrder, c); i >= 0 {
		return i
	}
	return len(conditionOrder)
}

func compareCanonical(a, b domain.BuyableListing) int {
	return cmp.Or(
		cmp.Compare(a.Price, b.Price),
		cmp.Compare(b.Credit, a.Credit),
		cmp.Compare(a.SellerNickname, b.SellerNickname),
		cmp.Compare(a.SellerID, b.SellerID),
		cmp.Compare(b.Stock, a.Stock),
		cmp.Compare(conditionRank(a.Condition), conditionRank(b.Condition)),
		cmp.Compare(a.Condition, b.Condition),
		cmp.Compare(a.PackName, b.PackName),
		cmp.Compare(a.CardKey, b.CardKey),
		cmp.Compare(a.PackID, b.PackID),
		cmp.Compare(a.PackCardID, b.PackCardID),
		cmp.Compare(a.VariantRare, b.VariantRare),
		cmp.Compare(a.VariantPackName, b.VariantPackName),
		cmp.Compare(a.CardName, b.CardName),
		cmp.Compare(a.SellerArea, b.SellerArea),
		cmp.Compare(b.OrdersCompleted, a.OrdersCompleted),
		cmp.Compare(a.Status, b.Status),
	)
}
