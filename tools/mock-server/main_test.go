package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
)

func loadTestFixtures(t *testing.T) *fixtures {
	t.Helper()
	fx, err := loadFixtures(
		filepath.Join("testdata", "cards.json"),
		filepath.Join("testdata", "products.json"),
	)
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	return fx
}

type testEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func get(t *testing.T, h http.Handler, target string) testEnvelope {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var env testEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return env
}

func TestLoadFixtures(t *testing.T) {
	fx := loadTestFixtures(t)
	if len(fx.Cards) == 0 {
		t.Fatal("expected cards in fixture")
	}
	if len(fx.Products) == 0 {
		t.Fatal("expected product entries in fixture")
	}
}

func TestLoadFixtures_MissingFile(t *testing.T) {
	if _, err := loadFixtures("testdata/missing.json", "testdata/products.json"); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestSearchHandler_SubstringMatch(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixtures(t))

	env := get(t, mux, "/api/card/getFilteredList?game=pkmtw&name=皮卡丘")
	if env.Code != 0 {
		t.Fatalf("code=%d, want 0", env.Code)
	}

	var data struct {
		List []searchCard `json:"list"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(data.List) != 2 {
		t.Errorf("cards=%d, want 2", len(data.List))
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixtures(t))

	env := get(t, mux, "/api/card/getFilteredList?name=nonexistent")

	var data struct {
		List []searchCard `json:"list"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.List == nil {
		t.Error("expected empty array, got nil")
	}
	if len(data.List) != 0 {
		t.Errorf("cards=%d, want 0", len(data.List))
	}
}

func TestSearchHandler_Failure(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixtures(t))

	env := get(t, mux, "/api/card/getFilteredList?name="+failName)
	if env.Code == 0 {
		t.Error("expected non-zero envelope code")
	}
	if env.Message == "" {
		t.Error("expected failure message")
	}
}

func TestListProductHandler_Filters(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixtures(t))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"card and rare", "cardKey=pkm-0025&rare=AR", 4},
		{"matching pack", "cardKey=pkm-0025&rare=AR&packId=SV2a&packCardId=173", 4},
		{"other pack", "cardKey=pkm-0025&rare=AR&packId=SV3", 0},
		{"other rare", "cardKey=pkm-0025&rare=SAR", 0},
		{"unknown card", "cardKey=nope&rare=AR", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := get(t, mux, "/api/product/listProduct?"+tt.query)

			var data struct {
				Products []json.RawMessage `json:"products"`
				Total    int               `json:"total"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decoding data: %v", err)
			}
			if len(data.Products) != tt.want || data.Total != tt.want {
				t.Errorf("products=%d total=%d, want %d", len(data.Products), data.Total, tt.want)
			}
		})
	}
}

// The tracker's own marketplace client must be able to talk to the mock.
func TestMockServer_KapaipaiClient(t *testing.T) {
	srv := httptest.NewServer(newMux(testLogger(), loadTestFixtures(t)))
	defer srv.Close()

	c := kapaipai.NewClient(
		kapaipai.WithSearchURL(srv.URL+"/api/card/getFilteredList"),
		kapaipai.WithListingsURL(srv.URL+"/api/product/listProduct"),
	)
	ctx := context.Background()

	variants, err := c.Search(ctx, "噴火龍")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("variants=%d, want 1", len(variants))
	}

	resp, err := c.FetchListings(ctx, kapaipai.ListingsRequest{
		CardKey: variants[0].CardKey,
		Rare:    variants[0].Rare,
		PackID:  variants[0].PackID,
	})
	if err != nil {
		t.Fatalf("fetch listings: %v", err)
	}
	if resp.Total != 2 || len(resp.Listings) != 2 {
		t.Errorf("listings=%d total=%d, want 2", len(resp.Listings), resp.Total)
	}

	if _, err := c.Search(ctx, failName); err == nil {
		t.Error("expected protocol error from failing search")
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
