// Package main implements a mock kapaipai.tw marketplace for local development.
// It serves canned card search and product listing responses from JSON
// fixtures so the tracker can run without reaching the real marketplace.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// failName makes the search endpoint answer with a non-zero envelope code.
const failName = "__fail__"

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type searchCard struct {
	GlobalKey string            `json:"globalKey"`
	NameZh    string            `json:"nameZh"`
	RareList  []json.RawMessage `json:"rareList"`
}

// productEntry holds the listings of one (cardKey, rare, pack) combination.
type productEntry struct {
	CardKey    string            `json:"cardKey"`
	Rare       string            `json:"rare"`
	PackID     string            `json:"packId"`
	PackCardID string            `json:"packCardId"`
	Products   []json.RawMessage `json:"products"`
}

type fixtures struct {
	Cards    []searchCard
	Products []productEntry
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	cardsFile := flag.String("cards", "tools/mock-server/testdata/cards.json", "path to card search fixture")
	productsFile := flag.String("products", "tools/mock-server/testdata/products.json", "path to product listing fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixtures(*cardsFile, *productsFile)
	if err != nil {
		logger.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures", "cards", len(fx.Cards), "product_entries", len(fx.Products))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace", "addr", addr,
		"search_url", fmt.Sprintf("http://localhost%s/api/card/getFilteredList", addr),
		"listings_url", fmt.Sprintf("http://localhost%s/api/product/listProduct", addr),
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixtures) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/card/getFilteredList", searchHandler(logger, fx.Cards))
	mux.HandleFunc("GET /api/product/listProduct", listProductHandler(logger, fx.Products))
	return mux
}

func loadFixtures(cardsPath, productsPath string) (*fixtures, error) {
	var fx fixtures
	if err := readJSON(cardsPath, &fx.Cards); err != nil {
		return nil, fmt.Errorf("card fixture: %w", err)
	}
	if err := readJSON(productsPath, &fx.Products); err != nil {
		return nil, fmt.Errorf("product fixture: %w", err)
	}
	return &fx, nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(env)
}

func searchHandler(logger *slog.Logger, cards []searchCard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == failName {
			writeEnvelope(w, envelope{Code: 500, Message: "mock failure"})
			logger.Info("search failed on request", "name", name)
			return
		}

		matched := make([]searchCard, 0, len(cards))
		for _, c := range cards {
			if name != "" && strings.Contains(c.NameZh, name) {
				matched = append(matched, c)
			}
		}

		writeEnvelope(w, envelope{Data: map[string]any{"list": matched}})
		logger.Info("search", "name", name, "matched", len(matched))
	}
}

func listProductHandler(logger *slog.Logger, entries []productEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cardKey, rare := q.Get("cardKey"), q.Get("rare")
		packID, packCardID := q.Get("packId"), q.Get("packCardId")

		products := []json.RawMessage{}
		for _, e := range entries {
			if e.CardKey != cardKey || e.Rare != rare {
				continue
			}
			if packID != "" && e.PackID != packID {
				continue
			}
			if packCardID != "" && e.PackCardID != packCardID {
				continue
			}
			products = append(products, e.Products...)
		}

		writeEnvelope(w, envelope{Data: map[string]any{"products": products, "total": len(products)}})
		logger.Info("listProduct", "card_key", cardKey, "rare", rare, "pack_id", packID, "returned", len(products))
	}
}
