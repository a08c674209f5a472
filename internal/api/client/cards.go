package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// SearchResponse is the variant list returned by a card name search.
type SearchResponse struct {
	Variants []domain.CardVariant `json:"variants"`
}

// ProductsParams identifies the variant whose listings to fetch.
type ProductsParams struct {
	CardKey       string
	Rare          string
	PackID        string
	PackCardID    string
	IncludeFlawed bool
}

// ProductsResponse is the buyable market of one variant.
type ProductsResponse struct {
	Products     []domain.BuyableListing `json:"products"`
	Total        int                     `json:"total"`
	BuyableCount int                     `json:"buyable_count"`
	LowestPrice  *int                    `json:"lowest_price,omitempty"`
	AvgPrice     *decimal.Decimal        `json:"avg_price,omitempty"`
}

// SearchCards returns the variants matching name.
func (c *Client) SearchCards(ctx context.Context, name string) ([]domain.CardVariant, error) {
	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/cards/search?"+url.Values{"name": {name}}.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Variants, nil
}

// Products returns the buyable listings of one variant.
func (c *Client) Products(ctx context.Context, p *ProductsParams) (*ProductsResponse, error) {
	q := url.Values{}
	q.Set("card_key", p.CardKey)
	q.Set("rare", p.Rare)
	if p.PackID != "" {
		q.Set("pack_id", p.PackID)
	}
	if p.PackCardID != "" {
		q.Set("pack_card_id", p.PackCardID)
	}
	if p.IncludeFlawed {
		q.Set("include_flawed", strconv.FormatBool(true))
	}

	var resp ProductsResponse
	if err := c.get(ctx, "/api/v1/cards/products?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MultiSearch finds sellers able to fulfill every requested card.
func (c *Client) MultiSearch(ctx context.Context, cards []domain.CardRequest) (*domain.MatchResultSet, error) {
	body := map[string]any{"cards": cards}

	var resp domain.MatchResultSet
	if err := c.post(ctx, "/api/v1/cards/multi-search", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
