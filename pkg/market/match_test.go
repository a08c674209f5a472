package market

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

func indexFor(name string, listings ...domain.Listing) SellerIndex {
	return BuildIndex(FilterBuyable(listings, false), domain.CardVariant{CardKey: name, CardName: name})
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	listings := FilterBuyable([]domain.Listing{
		listing("s", 120, 5, 0),
		listing("s", 80, 3, 0),
		listing("s", 100, 1, 0),
	}, false)

	tests := []struct {
		name      string
		quantity  int
		wantOK    bool
		wantCost  int
		wantUnits []int
	}{
		{name: "within cheapest listing", quantity: 2, wantOK: true, wantCost: 160, wantUnits: []int{2}},
		{name: "exhausts cheapest listing", quantity: 3, wantOK: true, wantCost: 240, wantUnits: []int{3}},
		{name: "spills into next listings", quantity: 5, wantOK: true, wantCost: 240 + 100 + 120, wantUnits: []int{3, 1, 1}},
		{name: "all stock", quantity: 9, wantOK: true, wantCost: 240 + 100 + 600, wantUnits: []int{3, 1, 5}},
		{name: "insufficient stock", quantity: 10, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, ok := Allocate(listings, tt.quantity)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, 9, f.TotalStock)
			if !ok {
				return
			}
			assert.Equal(t, 80, f.LowestPrice)
			assert.Equal(t, tt.wantCost, f.EstimatedCost)

			units := make([]int, 0, len(f.Allocations))
			for _, a := range f.Allocations {
				units = append(units, a.Units)
				assert.LessOrEqual(t, a.Units, a.Listing.Stock)
			}
			assert.Equal(t, tt.wantUnits, units)
			assert.Len(t, f.ListingsUsed, len(f.Allocations))
		})
	}
}

func TestAllocate_SameSellerSamePriceIsOrderIndependent(t *testing.T) {
	t.Parallel()

	v1 := domain.CardVariant{CardKey: "k", CardName: "Pikachu", PackID: "P1"}
	v2 := domain.CardVariant{CardKey: "k", CardName: "Pikachu", PackID: "P2"}
	first := FilterBuyable([]domain.Listing{listing("s", 80, 2, 5)}, false)[0].WithVariant(v2)
	second := FilterBuyable([]domain.Listing{listing("s", 80, 2, 5)}, false)[0].WithVariant(v1)

	fa, ok := Allocate([]domain.BuyableListing{first, second}, 1)
	require.True(t, ok)
	fb, ok := Allocate([]domain.BuyableListing{second, first}, 1)
	require.True(t, ok)

	assert.Equal(t, fa, fb)
	require.Len(t, fa.Allocations, 1)
	assert.Equal(t, "P1", fa.Allocations[0].Listing.PackID)
}

// Scenario: two variants of one card, seller holds 3 at 80 and one at 120.
func TestMatch_CheapestFirstAcrossVariants(t *testing.T) {
	t.Parallel()

	v1 := domain.CardVariant{CardKey: "k1", CardName: "海燕", PackID: "p1", Rare: "C"}
	v2 := domain.CardVariant{CardKey: "k1", CardName: "海燕", PackID: "p2", Rare: "AR"}
	idx := MergeIndexes(
		BuildIndex(FilterBuyable([]domain.Listing{listing("alice", 120, 1, 5)}, false), v2),
		BuildIndex(FilterBuyable([]domain.Listing{listing("alice", 80, 3, 5)}, false), v1),
	)

	rs := Match([]CardLookup{{
		Request:       domain.CardRequest{Name: "海燕", Quantity: 2},
		Index:         idx,
		VariantsCount: 2,
	}})

	require.Len(t, rs.Sellers, 1)
	m := rs.Sellers[0]
	assert.Equal(t, "alice", m.SellerNickname)
	assert.Equal(t, 160, m.TotalCost)

	f := m.Cards["海燕"]
	assert.Equal(t, 160, f.EstimatedCost)
	assert.Equal(t, 80, f.LowestPrice)
	assert.Equal(t, 4, f.TotalStock)
	require.Len(t, f.Allocations, 1)
	assert.Equal(t, 2, f.Allocations[0].Units)
	assert.Equal(t, "p1", f.Allocations[0].Listing.PackID)
	assert.Equal(t, []string{"海燕"}, f.FoundCardNames)

	assert.Equal(t, domain.CardResolution{VariantsCount: 2}, rs.CardDetails["海燕"])
	assert.Equal(t, domain.MatchStats{TotalSellersScanned: 1, MatchingSellers: 1, CardsRequested: 1}, rs.Stats)
}

func TestMatch_IntersectionAndRanking(t *testing.T) {
	t.Parallel()

	lookups := []CardLookup{
		{
			Request: domain.CardRequest{Name: "A", Quantity: 2},
			Index: indexFor("A",
				listing("alice", 10, 2, 1),
				listing("bob", 5, 5, 1),
				listing("carol", 1, 1, 1),
				listing("dave", 20, 2, 1),
			),
		},
		{
			Request: domain.CardRequest{Name: "B", Quantity: 1},
			Index: indexFor("B",
				listing("alice", 30, 1, 1),
				listing("bob", 50, 1, 1),
				listing("carol", 1, 9, 1),
				listing("dave", 10, 1, 1),
				listing("erin", 1, 1, 1),
			),
		},
	}

	rs := Match(lookups)

	// carol lacks stock for A, erin is missing A entirely.
	require.Len(t, rs.Sellers, 3)
	assert.Equal(t, "alice", rs.Sellers[0].SellerNickname)
	assert.Equal(t, 50, rs.Sellers[0].TotalCost)
	assert.Equal(t, "dave", rs.Sellers[1].SellerNickname)
	assert.Equal(t, 50, rs.Sellers[1].TotalCost, "ties keep nickname order")
	assert.Equal(t, "bob", rs.Sellers[2].SellerNickname)
	assert.Equal(t, 60, rs.Sellers[2].TotalCost)

	assert.Equal(t, 5, rs.Stats.TotalSellersScanned)
	assert.Equal(t, 3, rs.Stats.MatchingSellers)
	assert.Equal(t, 2, rs.Stats.CardsRequested)
}

func TestMatch_FailedCardYieldsNoSellers(t *testing.T) {
	t.Parallel()

	lookups := []CardLookup{
		{Request: domain.CardRequest{Name: "A", Quantity: 1}, Index: indexFor("A", listing("alice", 10, 1, 1)), VariantsCount: 1},
		{Request: domain.CardRequest{Name: "B", Quantity: 1}, Index: indexFor("B", listing("alice", 10, 1, 1)), VariantsCount: 2},
		{Request: domain.CardRequest{Name: "C", Quantity: 1}, Err: errors.New("upstream timeout")},
	}

	rs := Match(lookups)

	assert.Empty(t, rs.Sellers)
	assert.NotNil(t, rs.Sellers)
	require.Len(t, rs.CardDetails, 3)
	assert.True(t, rs.CardDetails["A"].Resolved())
	assert.Equal(t, 2, rs.CardDetails["B"].VariantsCount)
	assert.Equal(t, "upstream timeout", rs.CardDetails["C"].Error)
	assert.Equal(t, 1, rs.Stats.TotalSellersScanned)
	assert.Equal(t, 0, rs.Stats.MatchingSellers)
	assert.Equal(t, 3, rs.Stats.CardsRequested)
}

func TestMatch_AllFailed(t *testing.T) {
	t.Parallel()

	rs := Match([]CardLookup{
		{Request: domain.CardRequest{Name: "A", Quantity: 1}, Err: errors.New("boom")},
	})

	assert.Empty(t, rs.Sellers)
	assert.Equal(t, domain.MatchStats{CardsRequested: 1}, rs.Stats)
}

func TestMatch_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 7))
	sellers := []string{"s0", "s1", "s2", "s3", "s4", "s5"}

	for iter := range 200 {
		nCards := 1 + rng.IntN(3)
		lookups := make([]CardLookup, 0, nCards)
		for c := range nCards {
			var ls []domain.Listing
			for _, s := range sellers {
				for range rng.IntN(3) {
					ls = append(ls, listing(s, 1+rng.IntN(50), 1+rng.IntN(4), rng.IntN(5)))
				}
			}
			name := fmt.Sprintf("card%d", c)
			lookups = append(lookups, CardLookup{
				Request: domain.CardRequest{Name: name, Quantity: 1 + rng.IntN(6)},
				Index:   indexFor(name, ls...),
			})
		}

		rs := Match(lookups)

		matched := make(map[string]domain.MatchResult)
		for _, m := range rs.Sellers {
			matched[m.SellerNickname] = m
		}
		for _, s := range sellers {
			eligible := true
			for _, l := range lookups {
				b, ok := l.Index[s]
				if !ok || b.TotalStock < l.Request.Quantity {
					eligible = false
					break
				}
			}
			m, ok := matched[s]
			require.Equal(t, eligible, ok, "iter %d seller %s", iter, s)
			if !ok {
				continue
			}

			sum := 0
			for _, l := range lookups {
				f := m.Cards[l.Request.Name]
				units := 0
				for _, a := range f.Allocations {
					require.LessOrEqual(t, a.Units, a.Listing.Stock)
					units += a.Units
				}
				require.Equal(t, l.Request.Quantity, units)
				sum += f.EstimatedCost
			}
			require.Equal(t, sum, m.TotalCost)
		}
		for i := 1; i < len(rs.Sellers); i++ {
			require.LessOrEqual(t, rs.Sellers[i-1].TotalCost, rs.Sellers[i].TotalCost)
		}
	}
}
