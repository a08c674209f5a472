// Package notify defines the notification interface and implementations
// for price alert delivery.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecipient is returned when neither the alert nor the notifier
// supplies a recipient.
var ErrNoRecipient = errors.New("no notification recipient")

// AlertPayload contains the data needed to send a price alert.
type AlertPayload struct {
	Recipient      string
	WatchID        int64
	CardName       string
	PackName       string
	PackID         string
	Rare           string
	TargetPriceMax int
	TargetPriceMin int
	TriggeredPrice int
	ImageURL       string
	ProductURL     string
}

// Notifier defines the interface for sending price alert notifications.
type Notifier interface {
	SendPriceAlert(ctx context.Context, alert *AlertPayload) error
}

// FormatMessage renders the plain-text alert body shared by all backends.
func FormatMessage(alert *AlertPayload) string {
	var b strings.Builder
	b.WriteString("🔔 Price Alert!\n")
	fmt.Fprintf(&b, "Card: %s\n", alert.CardName)
	fmt.Fprintf(&b, "Pack: %s\n", packInfo(alert))
	fmt.Fprintf(&b, "Rare: %s\n", alert.Rare)
	fmt.Fprintf(&b, "Current Price: %d TWD\n", alert.TriggeredPrice)
	fmt.Fprintf(&b, "Target Price: %s\n", targetRange(alert))
	if alert.ProductURL != "" {
		fmt.Fprintf(&b, "%s\n", alert.ProductURL)
	}
	b.WriteString("💰 Price has reached your target!")
	return b.String()
}

func packInfo(alert *AlertPayload) string {
	if alert.PackID == "" {
		return alert.PackName
	}
	return fmt.Sprintf("%s (%s)", alert.PackName, alert.PackID)
}

func targetRange(alert *AlertPayload) string {
	if alert.TargetPriceMin > 0 {
		return fmt.Sprintf("%d - %d TWD", alert.TargetPriceMin, alert.TargetPriceMax)
	}
	return fmt.Sprintf("%d TWD", alert.TargetPriceMax)
}

// Multi fans an alert out to several notifiers. It attempts every backend
// and returns the joined errors of those that failed.
type Multi []Notifier

// SendPriceAlert implements Notifier.
func (m Multi) SendPriceAlert(ctx context.Context, alert *AlertPayload) error {
	var errs []error
	for _, n := range m {
		if err := n.SendPriceAlert(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
