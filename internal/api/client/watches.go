package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mong0520/kapaipai-api/internal/engine"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// watchRequest contains only the fields the API accepts on create.
type watchRequest struct {
	UserID             string `json:"user_id"`
	CardKey            string `json:"card_key"`
	CardName           string `json:"card_name"`
	Rare               string `json:"rare"`
	PackID             string `json:"pack_id,omitempty"`
	PackName           string `json:"pack_name,omitempty"`
	PackCardID         string `json:"pack_card_id,omitempty"`
	ImageURL           string `json:"image_url,omitempty"`
	TargetPrice        int    `json:"target_price"`
	TargetPriceMin     int    `json:"target_price_min,omitempty"`
	NotificationTarget string `json:"notification_target,omitempty"`
}

// WatchUpdate is a partial update; nil fields are left unchanged.
type WatchUpdate struct {
	TargetPrice        *int    `json:"target_price,omitempty"`
	TargetPriceMin     *int    `json:"target_price_min,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
	NotificationTarget *string `json:"notification_target,omitempty"`
}

// ListWatchesParams filters the watch list.
type ListWatchesParams struct {
	UserID     string
	CardKey    string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// WatchList is a page of watches.
type WatchList struct {
	Watches []domain.Watch `json:"watches"`
	Total   int            `json:"total"`
}

// WatchDetail is a watch with its most recent snapshot.
type WatchDetail struct {
	domain.Watch
	LatestSnapshot *domain.PriceSnapshot `json:"latest_snapshot,omitempty"`
}

// ListWatches returns watches matching p.
func (c *Client) ListWatches(ctx context.Context, p *ListWatchesParams) (*WatchList, error) {
	q := url.Values{}
	if p != nil {
		if p.UserID != "" {
			q.Set("user_id", p.UserID)
		}
		if p.CardKey != "" {
			q.Set("card_key", p.CardKey)
		}
		if p.ActiveOnly {
			q.Set("active_only", "true")
		}
		if p.Limit > 0 {
			q.Set("limit", strconv.Itoa(p.Limit))
		}
		if p.Offset > 0 {
			q.Set("offset", strconv.Itoa(p.Offset))
		}
	}

	path := "/api/v1/watches"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list WatchList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetWatch returns a single watch by ID.
func (c *Client) GetWatch(ctx context.Context, id int64) (*WatchDetail, error) {
	var w WatchDetail
	if err := c.get(ctx, watchPath(id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWatch creates a watch, or re-activates and retargets an existing one.
func (c *Client) CreateWatch(ctx context.Context, w *domain.Watch) (*domain.Watch, error) {
	req := watchRequest{
		UserID:             w.UserID,
		CardKey:            w.CardKey,
		CardName:           w.CardName,
		Rare:               w.Rare,
		PackID:             w.PackID,
		PackName:           w.PackName,
		PackCardID:         w.PackCardID,
		ImageURL:           w.ImageURL,
		TargetPrice:        w.TargetPriceMax,
		TargetPriceMin:     w.TargetPriceMin,
		NotificationTarget: w.OwnerNotificationTarget,
	}

	var created domain.Watch
	if err := c.post(ctx, "/api/v1/watches", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWatch applies a partial update to a watch.
func (c *Client) UpdateWatch(ctx context.Context, id int64, u *WatchUpdate) (*domain.Watch, error) {
	var updated domain.Watch
	if err := c.patch(ctx, watchPath(id), u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetWatchActive enables or disables a watch.
func (c *Client) SetWatchActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, watchPath(id)+"/active", body, nil)
}

// DeleteWatch deletes a watch by ID.
func (c *Client) DeleteWatch(ctx context.Context, id int64) error {
	return c.del(ctx, watchPath(id), nil)
}

// CheckWatch runs a watch's price check now.
func (c *Client) CheckWatch(ctx context.Context, id int64) (*engine.WatchOutcome, error) {
	var out engine.WatchOutcome
	if err := c.post(ctx, watchPath(id)+"/check", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSnapshots returns a watch's price history, newest first.
func (c *Client) ListSnapshots(ctx context.Context, id int64, limit int) ([]domain.PriceSnapshot, error) {
	path := watchPath(id) + "/snapshots"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var snaps []domain.PriceSnapshot
	if err := c.get(ctx, path, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}

func watchPath(id int64) string {
	return fmt.Sprintf("/api/v1/watches/%d", id)
}
