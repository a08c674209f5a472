package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// CardSearcher resolves a card name into its variants.
type CardSearcher interface {
	Search(ctx context.Context, name string) ([]domain.CardVariant, error)
}

// MarketProvider reads a variant's market and matches sellers across cards.
type MarketProvider interface {
	Products(ctx context.Context, req kapaipai.ListingsRequest, includeFlawed bool) (*engine.ProductsResult, error)
	MatchMultiCard(ctx context.Context, reqs []domain.CardRequest) (*domain.MatchResultSet, error)
}

// CardsHandler handles card search, product and multi-card match requests.
type CardsHandler struct {
	catalog CardSearcher
	market  MarketProvider
}

// NewCardsHandler creates a new CardsHandler.
func NewCardsHandler(c CardSearcher, m MarketProvider) *CardsHandler {
	return &CardsHandler{catalog: c, market: m}
}

// --- Input/Output types ---

// SearchCardsInput is the query for a card name search.
type SearchCardsInput struct {
	Name string `query:"name" doc:"Card name to search for" example:"皮卡丘"`
}

// SearchCardsOutput is the response body for a card name search.
type SearchCardsOutput struct {
	Body struct {
		Variants []domain.CardVariant `json:"variants" doc:"Matching (pack, rarity) variants"`
	}
}

// ProductsInput identifies the variant whose listings to return.
type ProductsInput struct {
	CardKey       string `query:"card_key"       doc:"Marketplace card key"           required:"true"`
	Rare          string `query:"rare"           doc:"Rarity code"                     required:"true"`
	PackID        string `query:"pack_id"        doc:"Pack identifier"`
	PackCardID    string `query:"pack_card_id"   doc:"Card number within the pack"`
	IncludeFlawed bool   `query:"include_flawed" doc:"Include flawed-condition listings"`
}

// ProductsOutput is the buyable market of one variant.
type ProductsOutput struct {
	Body struct {
		Products     []domain.BuyableListing `json:"products"`
		Total        int                     `json:"total"         doc:"Listing count reported by the marketplace"`
		BuyableCount int                     `json:"buyable_count"`
		LowestPrice  *int                    `json:"lowest_price,omitempty"`
		AvgPrice     *decimal.Decimal        `json:"avg_price,omitempty"`
	}
}

// MultiSearchInput is the request body for a multi-card match.
type MultiSearchInput struct {
	Body struct {
		Cards []domain.CardRequest `json:"cards" doc:"Cards to buy from a single seller" minItems:"1"`
	}
}

// MultiSearchOutput is the response body for a multi-card match.
type MultiSearchOutput struct {
	Body *domain.MatchResultSet
}

// --- Handlers ---

// Search returns every variant whose name matches the query.
func (h *CardsHandler) Search(ctx context.Context, input *SearchCardsInput) (*SearchCardsOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, huma.Error400BadRequest("name is required")
	}

	variants, err := h.catalog.Search(ctx, name)
	if err != nil {
		return nil, statusError("searching cards", err)
	}
	if variants == nil {
		variants = []domain.CardVariant{}
	}

	out := &SearchCardsOutput{}
	out.Body.Variants = variants
	return out, nil
}

// Products returns the buyable listings of one variant, cheapest first.
func (h *CardsHandler) Products(ctx context.Context, input *ProductsInput) (*ProductsOutput, error) {
	res, err := h.market.Products(ctx, kapaipai.ListingsRequest{
		CardKey:    input.CardKey,
		Rare:       input.Rare,
		PackID:     input.PackID,
		PackCardID: input.PackCardID,
	}, input.IncludeFlawed)
	if err != nil {
		return nil, statusError("fetching products", err)
	}

	out := &ProductsOutput{}
	out.Body.Products = res.Listings
	if out.Body.Products == nil {
		out.Body.Products = []domain.BuyableListing{}
	}
	out.Body.Total = res.Snapshot.TotalCount
	out.Body.BuyableCount = res.Snapshot.BuyableCount
	out.Body.LowestPrice = res.Snapshot.LowestPrice
	out.Body.AvgPrice = res.Snapshot.AveragePrice
	return out, nil
}

// MultiSearch finds sellers able to fulfill every requested card. Blank
// names are dropped and quantities clamped before validation.
func (h *CardsHandler) MultiSearch(ctx context.Context, input *MultiSearchInput) (*MultiSearchOutput, error) {
	reqs := make([]domain.CardRequest, 0, len(input.Body.Cards))
	for _, c := range input.Body.Cards {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		reqs = append(reqs, domain.CardRequest{Name: name, Quantity: domain.ClampQuantity(c.Quantity)})
	}

	res, err := h.market.MatchMultiCard(ctx, reqs)
	if err != nil {
		return nil, statusError("matching sellers", err)
	}
	return &MultiSearchOutput{Body: res}, nil
}

// RegisterCardRoutes registers card endpoints with the Huma API.
func RegisterCardRoutes(api huma.API, h *CardsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-cards",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards/search",
		Summary:     "Search cards by name",
		Description: "Proxies a name search to the marketplace and returns every (pack, rarity) variant.",
		Tags:        []string{"cards"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "list-card-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards/products",
		Summary:     "List buyable listings of a variant",
		Description: "Returns the active, in-stock listings of one variant sorted by price " +
			"with the variant's lowest and average price.",
		Tags:   []string{"cards"},
		Errors: []int{http.StatusBadGateway},
	}, h.Products)

	huma.Register(api, huma.Operation{
		OperationID: "multi-search-cards",
		Method:      http.MethodPost,
		Path:        "/api/v1/cards/multi-search",
		Summary:     "Find sellers stocking every card",
		Description: "Searches up to 10 cards and returns the sellers able to fulfill all of them, " +
			"cheapest total first.",
		Tags:   []string{"cards"},
		Errors: []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.MultiSearch)
}
