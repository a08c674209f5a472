package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/pkg/market"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// ProductsResult is the buyable market of one variant.
type ProductsResult struct {
	Listings []domain.BuyableListing
	Snapshot domain.PriceSnapshot
}

// WatchCheck is the outcome of checking one watch. Exactly one of Snapshot
// and Err is set. Outcome accompanies Snapshot and carries any notification
// the check recorded.
type WatchCheck struct {
	Watch    *domain.Watch
	Snapshot *domain.PriceSnapshot
	Outcome  *WatchOutcome
	Err      error
}

// Products fetches one variant's listings and returns the buyable ones in
// canonical order together with their summary.
func (eng *Engine) Products(
	ctx context.Context,
	req kapaipai.ListingsRequest,
	includeFlawed bool,
) (*ProductsResult, error) {
	resp, err := eng.catalog.FetchListings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching listings: %w", err)
	}
	buyable := market.FilterBuyable(resp.Listings, includeFlawed)
	return &ProductsResult{
		Listings: buyable,
		Snapshot: market.Summarize(buyable, resp.Total, eng.nowFunc().UTC()),
	}, nil
}

// CheckOne fetches the watch's variant and summarizes its buyable market.
// The watch itself is not modified.
func (eng *Engine) CheckOne(ctx context.Context, w *domain.Watch) (*domain.PriceSnapshot, error) {
	snap, _, err := eng.observe(ctx, w)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// CheckWatch checks w and returns its snapshot plus a notification candidate
// when the lowest price is inside the target range and differs from last.
// Nothing is persisted or sent.
func (eng *Engine) CheckWatch(
	ctx context.Context,
	w *domain.Watch,
	last *domain.NotificationRecord,
) (*domain.PriceSnapshot, *domain.NotificationCandidate, error) {
	snap, cheapest, err := eng.observe(ctx, w)
	if err != nil {
		return nil, nil, err
	}
	cand := Evaluate(w, snap, cheapest)
	if cand == nil {
		return snap, nil, nil
	}
	if !ShouldNotify(cand, last) {
		eng.log.Debug("notification suppressed",
			"watch_id", w.ID,
			"triggered_price", cand.TriggeredPrice,
			"target_price", cand.TargetPriceMax,
		)
		return snap, nil, nil
	}
	return snap, cand, nil
}

// Evaluate returns a notification candidate when the snapshot's lowest
// price lies within the watch's target range, or nil.
func Evaluate(
	w *domain.Watch,
	snap *domain.PriceSnapshot,
	cheapest *domain.BuyableListing,
) *domain.NotificationCandidate {
	if snap == nil || snap.LowestPrice == nil || !w.InRange(*snap.LowestPrice) {
		return nil
	}
	return &domain.NotificationCandidate{
		TriggeredPrice:  *snap.LowestPrice,
		TargetPriceMax:  w.TargetPriceMax,
		TargetPriceMin:  w.TargetPriceMin,
		CheapestListing: cheapest,
	}
}

// CheckAll checks every watch independently under the worker cap without
// persisting anything. The result is aligned with watches and holds exactly
// one entry per watch.
func (eng *Engine) CheckAll(ctx context.Context, watches []domain.Watch) []WatchCheck {
	results := eng.checkEach(ctx, watches, func(ctx context.Context, w *domain.Watch) (*WatchOutcome, error) {
		snap, err := eng.CheckOne(ctx, w)
		if err != nil {
			return nil, err
		}
		return &WatchOutcome{WatchID: w.ID, Snapshot: snap}, nil
	})
	for i := range results {
		if results[i].Err != nil {
			eng.log.Warn("watch check failed", "watch_id", results[i].Watch.ID, "error", results[i].Err)
		}
	}
	return results
}

// checkEach runs check for every watch under the worker cap and collects
// the results in watch order.
func (eng *Engine) checkEach(
	ctx context.Context,
	watches []domain.Watch,
	check func(context.Context, *domain.Watch) (*WatchOutcome, error),
) []WatchCheck {
	out := make([]WatchCheck, len(watches))
	eng.forEach(len(watches), func(i int) {
		w := &watches[i]
		res, err := check(ctx, w)
		out[i] = WatchCheck{Watch: w, Err: err}
		if err == nil && res != nil {
			out[i].Snapshot = res.Snapshot
			out[i].Outcome = res
		}
	})
	return out
}

func (eng *Engine) observe(
	ctx context.Context,
	w *domain.Watch,
) (*domain.PriceSnapshot, *domain.BuyableListing, error) {
	req := kapaipai.ListingsRequest{
		CardKey:    w.CardKey,
		Rare:       w.Rare,
		PackID:     w.PackID,
		PackCardID: w.PackCardID,
	}
	resp, err := eng.catalog.FetchListings(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("checking watch %d: %w", w.ID, err)
	}

	buyable := market.FilterBuyable(resp.Listings, eng.includeFlawed)
	snap := market.Summarize(buyable, resp.Total, eng.nowFunc().UTC())
	snap.WatchID = w.ID

	var cheapest *domain.BuyableListing
	if len(buyable) > 0 {
		c := buyable[0]
		cheapest = &c
	}
	return &snap, cheapest, nil
}

// forEach runs fn for 0..n-1 with at most eng.workers in flight and waits
// for all of them.
func (eng *Engine) forEach(n int, fn func(i int)) {
	var g errgroup.Group
	g.SetLimit(eng.workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
