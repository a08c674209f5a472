package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mong0520/kapaipai-api/internal/metrics"
)

// DeliveryError is returned when a notification backend answers with a
// status it does not treat as delivered.
type DeliveryError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("%s rate limited (429)", e.Backend)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s returned %d", e.Backend, e.StatusCode)
	}
	return fmt.Sprintf("%s returned %d: %s", e.Backend, e.StatusCode, e.Body)
}

// jsonPoster POSTs JSON payloads to one backend endpoint.
type jsonPoster struct {
	backend  string
	url      string
	client   *http.Client
	header   http.Header
	accepted func(status int) bool
}

func (p *jsonPoster) post(ctx context.Context, payload any) error {
	defer observeDelivery(time.Now())

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s payload: %w", p.backend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", p.backend, err)
	}
	for k, vs := range p.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending %s request: %w", p.backend, err)
	}
	defer resp.Body.Close()

	if p.accepted(resp.StatusCode) {
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &DeliveryError{Backend: p.backend, StatusCode: resp.StatusCode, Body: string(respBody)}
}

func observeDelivery(start time.Time) {
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func isOK(status int) bool {
	return status == http.StatusOK
}
