package market

import (
	"cmp"
	"slices"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// CardLookup is the outcome of resolving one requested card: either a seller
// index merged across its variants or the error that prevented it.
type CardLookup struct {
	Request       domain.CardRequest
	Index         SellerIndex
	VariantsCount int
	Err           error
}

// Allocate fills quantity units from listings cheapest-first in canonical
// order without exceeding any listing's stock. It returns false when the
// listings cannot cover quantity. The input slice is not reordered.
func Allocate(listings []domain.BuyableListing, quantity int) (domain.CardFulfillment, bool) {
	sorted := slices.Clone(listings)
	SortCanonical(sorted)

	f := domain.CardFulfillment{FoundCardNames: foundCardNames(sorted)}
	for i := range sorted {
		f.TotalStock += sorted[i].Stock
	}
	if f.TotalStock < quantity || len(sorted) == 0 {
		return f, false
	}
	f.LowestPrice = sorted[0].Price

	remaining := quantity
	for i := range sorted {
		if remaining <= 0 {
			break
		}
		take := min(remaining, sorted[i].Stock)
		a := domain.ListingAllocation{Listing: sorted[i], Units: take}
		f.Allocations = append(f.Allocations, a)
		f.ListingsUsed = append(f.ListingsUsed, sorted[i])
		f.EstimatedCost += a.Cost()
		remaining -= take
	}
	return f, true
}

func foundCardNames(listings []domain.BuyableListing) []string {
	names := make([]string, 0, len(listings))
	for i := range listings {
		if listings[i].CardName != "" {
			names = append(names, listings[i].CardName)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Match finds the sellers able to fulfill every requested card and ranks them
// by total cost. Any failed lookup forces an empty seller list while the
// per-card diagnostics still cover every request. Sellers with equal total
// cost keep ascending nickname order.
func Match(lookups []CardLookup) domain.MatchResultSet {
	rs := domain.MatchResultSet{
		Sellers:     []domain.MatchResult{},
		CardDetails: make(map[string]domain.CardResolution, len(lookups)),
		Stats:       domain.MatchStats{CardsRequested: len(lookups)},
	}

	resolved := make([]CardLookup, 0, len(lookups))
	for _, l := range lookups {
		res := domain.CardResolution{VariantsCount: l.VariantsCount}
		if l.Err != nil {
			res.Error = l.Err.Error()
		} else {
			resolved = append(resolved, l)
		}
		rs.CardDetails[l.Request.Name] = res
	}

	union := make(map[string]struct{})
	for _, l := range resolved {
		for seller := range l.Index {
			union[seller] = struct{}{}
		}
	}
	rs.Stats.TotalSellersScanned = len(union)

	if len(resolved) == 0 || len(resolved) != len(lookups) {
		return rs
	}

	for _, seller := range commonSellers(resolved) {
		if m, ok := matchSeller(seller, resolved); ok {
			rs.Sellers = append(rs.Sellers, m)
		}
	}
	slices.SortStableFunc(rs.Sellers, func(a, b domain.MatchResult) int {
		return cmp.Compare(a.TotalCost, b.TotalCost)
	})
	rs.Stats.MatchingSellers = len(rs.Sellers)
	return rs
}

// commonSellers returns, in ascending order, the sellers present in every
// lookup's index.
func commonSellers(lookups []CardLookup) []string {
	var out []string
	for _, seller := range lookups[0].Index.Sellers() {
		inAll := true
		for _, l := range lookups[1:] {
			if _, ok := l.Index[seller]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, seller)
		}
	}
	return out
}

func matchSeller(seller string, lookups []CardLookup) (domain.MatchResult, bool) {
	first := lookups[0].Index[seller]
	m := domain.MatchResult{
		SellerNickname:  seller,
		SellerArea:      first.SellerArea,
		Credit:          first.Credit,
		OrdersCompleted: first.OrdersCompleted,
		Cards:           make(map[string]domain.CardFulfillment, len(lookups)),
	}
	for _, l := range lookups {
		bucket := l.Index[seller]
		if bucket.TotalStock < l.Request.Quantity {
			return domain.MatchResult{}, false
		}
		f, ok := Allocate(bucket.Listings, l.Request.Quantity)
		if !ok {
			return domain.MatchResult{}, false
		}
		m.Cards[l.Request.Name] = f
		m.TotalCost += f.EstimatedCost
	}
	return m, true
}
