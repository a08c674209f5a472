package kapaipai

import (
	"net/url"
	"strings"
)

// URLBuilder expands product page and card image URL templates. Templates
// may reference {game}, {card_key}, {pack_id}, {pack_card_id} and {rare};
// values are path-escaped. An empty template yields an empty URL.
type URLBuilder struct {
	Game          string
	ProductURLTpl string
	ImageURLTpl   string
}

// ProductURL returns the marketplace page for a variant.
func (b URLBuilder) ProductURL(req ListingsRequest) string {
	return b.expand(b.ProductURLTpl, req)
}

// ImageURL returns the card image for a variant.
func (b URLBuilder) ImageURL(req ListingsRequest) string {
	return b.expand(b.ImageURLTpl, req)
}

func (b URLBuilder) expand(tpl string, req ListingsRequest) string {
	if tpl == "" {
		return ""
	}
	r := strings.NewReplacer(
		"{game}", url.PathEscape(b.Game),
		"{card_key}", url.PathEscape(req.CardKey),
		"{pack_id}", url.PathEscape(req.PackID),
		"{pack_card_id}", url.PathEscape(req.PackCardID),
		"{rare}", url.PathEscape(req.Rare),
	)
	return r.Replace(tpl)
}
