package market

import (
	"maps"
	"slices"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// SellerIndex maps seller nickname to that seller's bucket for one requested
// card name.
type SellerIndex map[string]domain.SellerBucket

// BuildIndex groups the buyable listings of one variant by seller. Each
// listing is annotated with the variant it came from.
func BuildIndex(buyable []domain.BuyableListing, variant domain.CardVariant) SellerIndex {
	idx := make(SellerIndex)
	for i := range buyable {
		idx.add(buyable[i].WithVariant(variant))
	}
	return idx
}

func (idx SellerIndex) add(l domain.BuyableListing) {
	b, ok := idx[l.SellerNickname]
	if !ok {
		b = domain.SellerBucket{
			SellerNickname:  l.SellerNickname,
			SellerArea:      l.SellerArea,
			Credit:          l.Credit,
			OrdersCompleted: l.OrdersCompleted,
		}
	}
	b.Listings = append(b.Listings, l)
	b.TotalStock += l.Stock
	idx[l.SellerNickname] = b
}

// MergeIndexes combines the indexes of several variants of the same card.
// A seller present in more than one keeps the metadata of its first
// occurrence, with stock summed and listings concatenated in argument order.
// The inputs are not modified.
func MergeIndexes(indexes ...SellerIndex) SellerIndex {
	out := make(SellerIndex)
	for _, idx := range indexes {
		for _, seller := range idx.Sellers() {
			b := idx[seller]
			cur, ok := out[seller]
			if !ok {
				cur = b
				cur.Listings = slices.Clone(b.Listings)
				out[seller] = cur
				continue
			}
			cur.Listings = append(cur.Listings, b.Listings...)
			cur.TotalStock += b.TotalStock
			out[seller] = cur
		}
	}
	return out
}

// Sellers returns the seller nicknames in ascending order.
func (idx SellerIndex) Sellers() []string {
	return slices.Sorted(maps.Keys(idx))
}
