package notify

import (
	"context"
	"fmt"
	"net/http"
)

const (
	colorGreen  = 0x2ECC71 // at or below the floor-free target
	colorYellow = 0xF1C40F // inside a bounded range
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendPriceAlert sends the alert as a single Discord embed.
func (d *DiscordNotifier) SendPriceAlert(ctx context.Context, alert *AlertPayload) error {
	return d.poster().post(ctx, discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert)},
	})
}

func (d *DiscordNotifier) poster() *jsonPoster {
	return &jsonPoster{backend: "discord", url: d.webhookURL, client: d.client, accepted: is2xx}
}

func buildEmbed(alert *AlertPayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Price Alert: %s", alert.CardName),
		URL:   alert.ProductURL,
		Color: rangeColor(alert),
		Fields: []discordEmbedField{
			{Name: "Current Price", Value: fmt.Sprintf("%d TWD", alert.TriggeredPrice), Inline: true},
			{Name: "Target Price", Value: targetRange(alert), Inline: true},
			{Name: "Rare", Value: alert.Rare, Inline: true},
			{Name: "Pack", Value: packInfo(alert), Inline: true},
		},
	}

	if alert.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: alert.ImageURL}
	}

	return embed
}

func rangeColor(alert *AlertPayload) int {
	if alert.TargetPriceMin > 0 {
		return colorYellow
	}
	return colorGreen
}
