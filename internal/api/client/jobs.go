package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mong0520/kapaipai-api/internal/engine"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// GetJobHistory returns the run history for a specific scheduled job.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := fmt.Sprintf("/api/v1/jobs/%s", url.PathEscape(jobName))
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunPriceCheck triggers a full price-check pass and waits for its summary.
func (c *Client) RunPriceCheck(ctx context.Context) (*engine.PriceCheckSummary, error) {
	var resp struct {
		Status  string                    `json:"status"`
		Summary *engine.PriceCheckSummary `json:"summary"`
	}
	if err := c.post(ctx, "/api/v1/price-check", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Summary == nil {
		return &engine.PriceCheckSummary{}, nil
	}
	return resp.Summary, nil
}

// ListNotifications returns recent notifications, optionally for one user.
func (c *Client) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error) {
	q := url.Values{}
	if userID != "" {
		q.Set("user_id", userID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/notifications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var recs []domain.NotificationRecord
	if err := c.get(ctx, path, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
