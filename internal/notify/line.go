package notify

import (
	"context"
	"net/http"
	"time"
)

const defaultLinePushURL = "https://api.line.me/v2/bot/message/push"

// LineNotifier implements Notifier via the LINE Messaging API push endpoint.
type LineNotifier struct {
	token            string
	defaultRecipient string
	pushURL          string
	client           *http.Client
}

// LineOption configures a LineNotifier.
type LineOption func(*LineNotifier)

// WithLinePushURL overrides the push endpoint.
func WithLinePushURL(u string) LineOption {
	return func(n *LineNotifier) {
		n.pushURL = u
	}
}

// WithLineHTTPClient sets a custom HTTP client.
func WithLineHTTPClient(c *http.Client) LineOption {
	return func(n *LineNotifier) {
		n.client = c
	}
}

// WithDefaultRecipient sets the LINE user id used when an alert has none.
func WithDefaultRecipient(userID string) LineOption {
	return func(n *LineNotifier) {
		n.defaultRecipient = userID
	}
}

// NewLineNotifier creates a LineNotifier authenticating with the channel
// access token.
func NewLineNotifier(token string, opts ...LineOption) *LineNotifier {
	n := &LineNotifier{
		token:   token,
		pushURL: defaultLinePushURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type linePushPayload struct {
	To       string        `json:"to"`
	Messages []lineMessage `json:"messages"`
}

type lineMessage struct {
	Type               string `json:"type"`
	Text               string `json:"text,omitempty"`
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string `json:"previewImageUrl,omitempty"`
}

// SendPriceAlert pushes the alert text, followed by the card image when one
// is available.
func (n *LineNotifier) SendPriceAlert(ctx context.Context, alert *AlertPayload) error {
	to := alert.Recipient
	if to == "" {
		to = n.defaultRecipient
	}
	if to == "" {
		return ErrNoRecipient
	}

	msgs := []lineMessage{{Type: "text", Text: FormatMessage(alert)}}
	if alert.ImageURL != "" {
		msgs = append(msgs, lineMessage{
			Type:               "image",
			OriginalContentURL: alert.ImageURL,
			PreviewImageURL:    alert.ImageURL,
		})
	}

	p := &jsonPoster{
		backend:  "line",
		url:      n.pushURL,
		client:   n.client,
		header:   http.Header{"Authorization": {"Bearer " + n.token}},
		accepted: isOK,
	}
	return p.post(ctx, linePushPayload{To: to, Messages: msgs})
}
