package kapaipai

import (
	"strings"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// ToVariants flattens search results into one variant per printing.
func ToVariants(cards []SearchCard) []domain.CardVariant {
	var variants []domain.CardVariant
	for i := range cards {
		c := &cards[i]
		for j := range c.RareList {
			variants = append(variants, toVariant(c, &c.RareList[j]))
		}
	}
	return variants
}

func toVariant(c *SearchCard, r *RareOption) domain.CardVariant {
	v := domain.CardVariant{
		CardKey:      c.GlobalKey,
		CardName:     c.NameZh,
		PackID:       string(r.PackID),
		PackName:     r.PackName,
		PackCardID:   string(r.PackCardID),
		Rare:         strings.Join(r.Rare, ", "),
		ReferenceAvg: r.AveragePrice,
	}
	if r.LowestPrice != nil {
		lowest := int(r.LowestPrice.IntPart())
		v.ReferenceLowest = &lowest
	}
	return v
}

// ToListings converts marketplace products into domain listings.
func ToListings(products []Product) []domain.Listing {
	listings := make([]domain.Listing, 0, len(products))
	for i := range products {
		listings = append(listings, toListing(&products[i]))
	}
	return listings
}

func toListing(p *Product) domain.Listing {
	return domain.Listing{
		Price:           int(p.Price.IntPart()),
		Stock:           p.Stock,
		Condition:       domain.Condition(p.Condition),
		SellerID:        string(p.SellerID),
		SellerNickname:  p.SellerNickname,
		SellerArea:      p.SellerArea,
		Credit:          p.Credit,
		OrdersCompleted: p.OrderComplete,
		Status:          domain.ListingStatus(p.Status),
		PackName:        p.PackName,
	}
}
