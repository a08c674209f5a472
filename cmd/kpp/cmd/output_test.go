package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/mong0520/kapaipai-api/internal/api/client"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

func intPtr(v int) *int { return &v }

func TestPackLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", packLabel("", ""))
	assert.Equal(t, "SV2a", packLabel("SV2a", ""))
	assert.Equal(t, "寶可夢卡牌151", packLabel("", "寶可夢卡牌151"))
	assert.Equal(t, "寶可夢卡牌151 (SV2a)", packLabel("SV2a", "寶可夢卡牌151"))
}

func TestTargetRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<=500", targetRange(&domain.Watch{TargetPriceMax: 500}))
	assert.Equal(t, "300-500", targetRange(&domain.Watch{TargetPriceMin: 300, TargetPriceMax: 500}))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "寶可夢...", truncate("寶可夢卡牌一五一", 6))
}

func TestPrintProductsTable(t *testing.T) {
	t.Parallel()

	avg := decimal.NewFromFloat(412.5)
	resp := &apiclient.ProductsResponse{
		Products: []domain.BuyableListing{
			{
				Listing:        domain.Listing{Price: 400, Stock: 2, SellerNickname: "阿明", SellerArea: "台北", Credit: 120},
				ConditionLabel: "完美品",
			},
		},
		Total:        3,
		BuyableCount: 1,
		LowestPrice:  intPtr(400),
		AvgPrice:     &avg,
	}

	var buf bytes.Buffer
	require.NoError(t, printProductsTable(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "PRICE")
	assert.Contains(t, out, "阿明")
	assert.Contains(t, out, "Buyable 1 of 3, lowest 400, average 412.5")
}

func TestPrintMatchTable(t *testing.T) {
	t.Parallel()

	res := &domain.MatchResultSet{
		Sellers: []domain.MatchResult{
			{
				SellerNickname: "阿明",
				SellerArea:     "台北",
				TotalCost:      900,
				Cards: map[string]domain.CardFulfillment{
					"噴火龍": {EstimatedCost: 500},
					"皮卡丘": {EstimatedCost: 400},
				},
			},
		},
		CardDetails: map[string]domain.CardResolution{
			"皮卡丘": {VariantsCount: 2},
			"噴火龍": {VariantsCount: 1},
			"不存在": {Error: "no variants found"},
		},
		Stats: domain.MatchStats{TotalSellersScanned: 7, MatchingSellers: 1, CardsRequested: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, printMatchTable(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "噴火龍=500, 皮卡丘=400")
	assert.Contains(t, out, "不存在: no variants found")
	assert.NotContains(t, out, "皮卡丘: ")
	assert.Contains(t, out, "1 of 7 sellers stock all 3 cards")
	assert.NotContains(t, out, "*")
}

func TestPrintMatchTable_MarksListingsBoughtOut(t *testing.T) {
	t.Parallel()

	three := domain.BuyableListing{Listing: domain.Listing{Price: 80, Stock: 3}}
	five := domain.BuyableListing{Listing: domain.Listing{Price: 120, Stock: 5}}
	res := &domain.MatchResultSet{
		Sellers: []domain.MatchResult{
			{
				SellerNickname: "阿明",
				TotalCost:      400,
				Cards: map[string]domain.CardFulfillment{
					"噴火龍": {EstimatedCost: 240, Allocations: []domain.ListingAllocation{{Listing: three, Units: 3}}},
					"皮卡丘": {EstimatedCost: 160, Allocations: []domain.ListingAllocation{{Listing: three, Units: 2}}},
				},
			},
			{
				SellerNickname: "小華",
				TotalCost:      360,
				Cards: map[string]domain.CardFulfillment{
					"噴火龍": {EstimatedCost: 240, Allocations: []domain.ListingAllocation{{Listing: five, Units: 2}}},
				},
			},
		},
		CardDetails: map[string]domain.CardResolution{},
	}

	var buf bytes.Buffer
	require.NoError(t, printMatchTable(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "噴火龍=240*, 皮卡丘=160\n")
	assert.Contains(t, out, "噴火龍=240\n")
	assert.Contains(t, out, "* takes a listing's whole stock")
}

func TestPrintWatchDetail(t *testing.T) {
	t.Parallel()

	observed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	d := &apiclient.WatchDetail{
		Watch: domain.Watch{
			ID: 42, UserID: "U1", CardKey: "12345", CardName: "皮卡丘",
			PackID: "SV2a", Rare: "SR", TargetPriceMax: 500, IsActive: true,
		},
		LatestSnapshot: &domain.PriceSnapshot{
			LowestPrice: intPtr(450), BuyableCount: 3, TotalCount: 5, ObservedAt: observed,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printWatchDetail(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "皮卡丘 (12345)")
	assert.Contains(t, out, "<=500")
	assert.Contains(t, out, "450 (checked 2026-03-01 09:30:00)")
	assert.Contains(t, out, "3 of 5")
}

func TestPrintJobRunsTable(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	runs := []domain.JobRun{
		{JobName: "price_check", Status: "completed", StartedAt: started, CompletedAt: &started},
		{JobName: "price_check", Status: "running", StartedAt: started},
	}

	var buf bytes.Buffer
	require.NoError(t, printJobRunsTable(&buf, runs))

	out := buf.String()
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "-")
}

func TestOutputJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, outputJSON(&buf, map[string]int{"checked": 3}))
	assert.JSONEq(t, `{"checked":3}`, buf.String())
}
