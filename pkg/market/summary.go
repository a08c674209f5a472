package market

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// Summarize derives a snapshot from the buyable listings of one fetch.
// total is the upstream's total listing count. Lowest and average are nil
// when nothing is buyable; the average is rounded to two decimal places.
func Summarize(buyable []domain.BuyableListing, total int, observedAt time.Time) domain.PriceSnapshot {
	snap := domain.PriceSnapshot{
		BuyableCount: len(buyable),
		TotalCount:   total,
		ObservedAt:   observedAt,
	}
	if len(buyable) == 0 {
		return snap
	}

	lowest := buyable[0].Price
	sum := decimal.Zero
	for i := range buyable {
		lowest = min(lowest, buyable[i].Price)
		sum = sum.Add(decimal.NewFromInt(int64(buyable[i].Price)))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(buyable)))).Round(2)

	snap.LowestPrice = &lowest
	snap.AveragePrice = &avg
	return snap
}
