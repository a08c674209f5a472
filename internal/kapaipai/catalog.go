// Package kapaipai provides a client for the kapaipai.tw trading card
// marketplace, abstracted behind an interface for testability.
package kapaipai

import (
	"context"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// ListingsRequest identifies one card variant whose listings to fetch.
// PackID and PackCardID are optional.
type ListingsRequest struct {
	CardKey    string
	Rare       string
	PackID     string
	PackCardID string
}

// ListingsRequestFor builds the request for a search result variant.
func ListingsRequestFor(v domain.CardVariant) ListingsRequest {
	return ListingsRequest{
		CardKey:    v.CardKey,
		Rare:       v.Rare,
		PackID:     v.PackID,
		PackCardID: v.PackCardID,
	}
}

// ListingsResponse holds the raw listings of one variant and the upstream's
// total count.
type ListingsResponse struct {
	Listings []domain.Listing
	Total    int
}

// Catalog defines the interface for querying the marketplace.
type Catalog interface {
	Search(ctx context.Context, name string) ([]domain.CardVariant, error)
	FetchListings(ctx context.Context, req ListingsRequest) (*ListingsResponse, error)
}
