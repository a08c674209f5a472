package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/metrics"
	"github.com/mong0520/kapaipai-api/pkg/market"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

var errAllFetchesFailed = errors.New("all variant fetches failed")

// ValidateCardRequests rejects empty, oversized or malformed batches.
func ValidateCardRequests(reqs []domain.CardRequest) error {
	if len(reqs) == 0 {
		return fmt.Errorf("%w: no cards requested", ErrBadRequest)
	}
	if len(reqs) > domain.MaxCardRequests {
		return fmt.Errorf("%w: %d cards requested, at most %d allowed",
			ErrBadRequest, len(reqs), domain.MaxCardRequests)
	}

	seen := make(map[string]struct{}, len(reqs))
	for i, r := range reqs {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: card %d has no name", ErrBadRequest, i)
		}
		if r.Quantity < domain.MinQuantity || r.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: card %q quantity %d outside [%d, %d]",
				ErrBadRequest, r.Name, r.Quantity, domain.MinQuantity, domain.MaxQuantity)
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: card %q requested twice", ErrBadRequest, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

type searchOutcome struct {
	variants []domain.CardVariant
	err      error
}

type fetchTask struct {
	card    int
	variant domain.CardVariant
}

type fetchOutcome struct {
	index market.SellerIndex
	err   error
}

// MatchMultiCard finds the sellers able to fulfill every requested card and
// ranks them by total cost. Per-card lookup failures are reported in the
// result's diagnostics; only an invalid batch fails the call.
func (eng *Engine) MatchMultiCard(
	ctx context.Context,
	reqs []domain.CardRequest,
) (*domain.MatchResultSet, error) {
	if err := ValidateCardRequests(reqs); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.MultiSearchDuration.Observe(time.Since(start).Seconds())
	}()

	searches := eng.searchPhase(ctx, reqs)

	var tasks []fetchTask
	for i, s := range searches {
		if s.err != nil {
			continue
		}
		for _, v := range s.variants {
			tasks = append(tasks, fetchTask{card: i, variant: v})
		}
	}
	fetches := eng.fetchPhase(ctx, tasks)

	lookups := make([]market.CardLookup, len(reqs))
	perCard := make([][]market.SellerIndex, len(reqs))
	fetchErrs := make([][]error, len(reqs))
	for i, t := range tasks {
		if fetches[i].err != nil {
			fetchErrs[t.card] = append(fetchErrs[t.card], fetches[i].err)
			continue
		}
		perCard[t.card] = append(perCard[t.card], fetches[i].index)
	}

	for i, r := range reqs {
		lookups[i] = market.CardLookup{Request: r, VariantsCount: len(searches[i].variants)}
		switch {
		case searches[i].err != nil:
			lookups[i].Err = searches[i].err
		case len(searches[i].variants) > 0 && len(perCard[i]) == 0:
			lookups[i].Err = fmt.Errorf("%w: %w", errAllFetchesFailed, errors.Join(fetchErrs[i]...))
		default:
			lookups[i].Index = market.MergeIndexes(perCard[i]...)
		}
		if lookups[i].Err != nil {
			metrics.MultiSearchCardFailuresTotal.Inc()
			eng.log.Warn("card lookup failed", "card", r.Name, "error", lookups[i].Err)
		} else if n := len(fetchErrs[i]); n > 0 {
			eng.log.Warn("variant fetches failed", "card", r.Name, "failed", n,
				"variants", len(searches[i].variants))
		}
	}

	rs := market.Match(lookups)
	metrics.MultiSearchMatchedSellers.Observe(float64(rs.Stats.MatchingSellers))
	eng.log.Info("multi-card match complete",
		"cards", rs.Stats.CardsRequested,
		"sellers_scanned", rs.Stats.TotalSellersScanned,
		"matching_sellers", rs.Stats.MatchingSellers,
		"duration", time.Since(start),
	)
	return &rs, nil
}

// searchPhase resolves every card name to its variants. Results are aligned
// with reqs; a failed search never cancels its siblings.
func (eng *Engine) searchPhase(ctx context.Context, reqs []domain.CardRequest) []searchOutcome {
	out := make([]searchOutcome, len(reqs))
	eng.forEach(len(reqs), func(i int) {
		variants, err := eng.catalog.Search(ctx, reqs[i].Name)
		if err != nil {
			out[i].err = fmt.Errorf("searching %q: %w", reqs[i].Name, err)
			return
		}
		out[i].variants = variants
	})
	return out
}

// fetchPhase fetches and indexes the listings of every (card, variant) task.
// Results are aligned with tasks.
func (eng *Engine) fetchPhase(ctx context.Context, tasks []fetchTask) []fetchOutcome {
	out := make([]fetchOutcome, len(tasks))
	eng.forEach(len(tasks), func(i int) {
		v := tasks[i].variant
		resp, err := eng.catalog.FetchListings(ctx, kapaipai.ListingsRequestFor(v))
		if err != nil {
			out[i].err = fmt.Errorf("fetching %s/%s: %w", v.CardKey, v.Rare, err)
			return
		}
		buyable := market.FilterBuyable(resp.Listings, eng.includeFlawed)
		out[i].index = market.BuildIndex(buyable, v)
	})
	return out
}
