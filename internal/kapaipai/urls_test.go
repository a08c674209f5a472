package kapaipai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
)

func TestURLBuilder(t *testing.T) {
	t.Parallel()

	req := kapaipai.ListingsRequest{CardKey: "g-001", Rare: "AR, SAR", PackID: "sv6", PackCardID: "88"}

	b := kapaipai.URLBuilder{
		Game:          "pkmtw",
		ProductURLTpl: "https://trade.kapaipai.tw/card/{game}/{card_key}?rare={rare}",
		ImageURLTpl:   "https://img.example.com/{pack_id}/{pack_card_id}.png",
	}

	assert.Equal(t, "https://trade.kapaipai.tw/card/pkmtw/g-001?rare=AR%2C%20SAR", b.ProductURL(req))
	assert.Equal(t, "https://img.example.com/sv6/88.png", b.ImageURL(req))
	assert.Empty(t, kapaipai.URLBuilder{}.ImageURL(req))
}
