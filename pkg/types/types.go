// Package domain defines the core business types for the kapaipai price tracker.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request bounds for multi-card matching.
const (
	MaxCardRequests = 10
	MinQuantity     = 1
	MaxQuantity     = 99
)

// Condition represents the marketplace's card condition grade.
type Condition string

// Condition constants.
const (
	ConditionPerfect     Condition = "perfect"
	ConditionNearPerfect Condition = "near_perfect"
	ConditionGood        Condition = "good"
	ConditionFair        Condition = "fair"
	ConditionPoor        Condition = "poor"
	ConditionFlawed      Condition = "flawed"
)

var conditionLabels = map[Condition]string{
	ConditionPerfect:     "完美品",
	ConditionNearPerfect: "近完美",
	ConditionGood:        "良好",
	ConditionFair:        "普通",
	ConditionPoor:        "差",
	ConditionFlawed:      "瑕疵品",
}

// Label returns the zh-TW display label used by the marketplace. Unknown
// conditions fall back to the raw value.
func (c Condition) Label() string {
	if l, ok := conditionLabels[c]; ok {
		return l
	}
	return string(c)
}

// ListingStatus is the marketplace's listing state.
type ListingStatus string

// Listing status constants.
const (
	ListingActive   ListingStatus = "active"
	ListingInactive ListingStatus = "inactive"
)

// CardRequest asks for Quantity copies of the card named Name.
type CardRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ClampQuantity bounds q to [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	return min(max(q, MinQuantity), MaxQuantity)
}

// CardVariant is one (pack, rarity) combination returned by a name search.
type CardVariant struct {
	CardKey         string           `json:"card_key"`
	CardName        string           `json:"card_name"`
	PackID          string           `json:"pack_id"`
	PackName        string           `json:"pack_name"`
	PackCardID      string           `json:"pack_card_id"`
	Rare            string           `json:"rare"`
	ReferenceLowest *int             `json:"lowest_price,omitempty"`
	ReferenceAvg    *decimal.Decimal `json:"avg_price,omitempty"`
}

// Listing is a single seller's offer as fetched from the marketplace.
type Listing struct {
	Price           int           `json:"price"`
	Stock           int           `json:"stock"`
	Condition       Condition     `json:"condition"`
	SellerID        string        `json:"seller_id,omitempty"`
	SellerNickname  string        `json:"seller_nickname"`
	SellerArea      string        `json:"seller_area"`
	Credit          int           `json:"credit"`
	OrdersCompleted int           `json:"order_complete"`
	Status          ListingStatus `json:"status"`
	PackName        string        `json:"pack_name,omitempty"`
}

// Buyable reports whether the listing is active and in stock.
func (l *Listing) Buyable() bool {
	return l.Status == ListingActive && l.Stock >= 1
}

// BuyableListing is a Listing that passed the buyable filter, annotated with
// the variant it was fetched for.
type BuyableListing struct {
	Listing
	ConditionLabel  string `json:"condition_label"`
	CardKey         string `json:"card_key,omitempty"`
	CardName        string `json:"card_name,omitempty"`
	PackID          string `json:"pack_id,omitempty"`
	PackCardID      string `json:"pack_card_id,omitempty"`
	VariantPackName string `json:"variant_pack_name,omitempty"`
	VariantRare     string `json:"variant_rare,omitempty"`
}

// WithVariant returns a copy of b carrying the variant context v.
func (b BuyableListing) WithVariant(v CardVariant) BuyableListing {
	b.CardKey = v.CardKey
	b.CardName = v.CardName
	b.PackID = v.PackID
	b.PackCardID = v.PackCardID
	b.VariantPackName = v.PackName
	b.VariantRare = v.Rare
	return b
}

// SellerBucket aggregates one seller's buyable listings for one requested card.
type SellerBucket struct {
	SellerNickname  string           `json:"seller_nickname"`
	SellerArea      string           `json:"seller_area"`
	Credit          int              `json:"credit"`
	OrdersCompleted int              `json:"order_complete"`
	Listings        []BuyableListing `json:"products"`
	TotalStock      int              `json:"total_stock"`
}

// ListingAllocation records how many units were taken from one listing.
type ListingAllocation struct {
	Listing BuyableListing `json:"listing"`
	Units   int            `json:"units"`
}

// Exhausted reports whether the allocation consumed the listing's whole stock.
func (a ListingAllocation) Exhausted() bool {
	return a.Units == a.Listing.Stock
}

// Cost is Units times the listing's unit price.
func (a ListingAllocation) Cost() int {
	return a.Units * a.Listing.Price
}

// CardFulfillment describes how a seller fulfills one requested card.
type CardFulfillment struct {
	TotalStock     int                 `json:"total_stock"`
	LowestPrice    int                 `json:"lowest_price"`
	EstimatedCost  int                 `json:"estimated_cost"`
	ListingsUsed   []BuyableListing    `json:"products"`
	Allocations    []ListingAllocation `json:"allocations"`
	FoundCardNames []string            `json:"found_card_names"`
}

// MatchResult is one seller able to fulfill every requested card.
type MatchResult struct {
	SellerNickname  string                     `json:"seller_nickname"`
	SellerArea      string                     `json:"seller_area"`
	Credit          int                        `json:"credit"`
	OrdersCompleted int                        `json:"order_complete"`
	Cards           map[string]CardFulfillment `json:"cards"`
	TotalCost       int                        `json:"total_cost"`
}

// CardResolution is the per-card diagnostic of a multi-card match.
type CardResolution struct {
	VariantsCount int    `json:"variants_count"`
	Error         string `json:"error,omitempty"`
}

// Resolved reports whether the card produced a usable seller index.
func (r CardResolution) Resolved() bool {
	return r.Error == ""
}

// MatchStats summarizes a multi-card match.
type MatchStats struct {
	TotalSellersScanned int `json:"total_sellers_scanned"`
	MatchingSellers     int `json:"matching_sellers"`
	CardsRequested      int `json:"cards_requested"`
}

// MatchResultSet is the complete output of a multi-card match.
type MatchResultSet struct {
	Sellers     []MatchResult             `json:"sellers"`
	CardDetails map[string]CardResolution `json:"card_details"`
	Stats       MatchStats                `json:"stats"`
}

// PriceSnapshot is a point-in-time aggregate of one variant's market.
type PriceSnapshot struct {
	ID           int64            `json:"id,omitempty"            db:"id"`
	WatchID      int64            `json:"watch_id,omitempty"      db:"watch_id"`
	LowestPrice  *int             `json:"lowest_price,omitempty"  db:"lowest_price"`
	AveragePrice *decimal.Decimal `json:"avg_price,omitempty"     db:"avg_price"`
	BuyableCount int              `json:"buyable_count"           db:"buyable_count"`
	TotalCount   int              `json:"total_count"             db:"total_count"`
	ObservedAt   time.Time        `json:"checked_at"              db:"checked_at"`
}

// Watch is a user's standing request to be notified when a variant's
// lowest price falls into [TargetPriceMin, TargetPriceMax].
type Watch struct {
	ID                      int64     `json:"id"                            db:"id"`
	UserID                  string    `json:"user_id"                       db:"user_id"`
	CardKey                 string    `json:"card_key"                      db:"card_key"`
	CardName                string    `json:"card_name"                     db:"card_name"`
	PackID                  string    `json:"pack_id,omitempty"             db:"pack_id"`
	PackName                string    `json:"pack_name,omitempty"           db:"pack_name"`
	PackCardID              string    `json:"pack_card_id,omitempty"        db:"pack_card_id"`
	Rare                    string    `json:"rare"                          db:"rare"`
	ImageURL                string    `json:"image_url,omitempty"           db:"image_url"`
	TargetPriceMax          int       `json:"target_price"                  db:"target_price"`
	TargetPriceMin          int       `json:"target_price_min"              db:"target_price_min"`
	IsActive                bool      `json:"is_active"                     db:"is_active"`
	OwnerNotificationTarget string    `json:"notification_target,omitempty" db:"notification_target"`
	CreatedAt               time.Time `json:"created_at"                    db:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"                    db:"updated_at"`
}

// InRange reports whether price satisfies the watch's target range.
func (w *Watch) InRange(price int) bool {
	return price <= w.TargetPriceMax && price >= w.TargetPriceMin
}

// NotificationStatus is the delivery outcome of a notification.
type NotificationStatus string

// Notification status constants.
const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationRecord is a persisted notification for a watch.
type NotificationRecord struct {
	ID             int64              `json:"id"               db:"id"`
	WatchID        int64              `json:"watch_id"         db:"watch_id"`
	UserID         string             `json:"user_id"          db:"user_id"`
	TriggeredPrice int                `json:"triggered_price"  db:"triggered_price"`
	TargetPriceMax int                `json:"target_price"     db:"target_price"`
	Message        string             `json:"message"          db:"message"`
	Status         NotificationStatus `json:"status"           db:"status"`
	SentAt         time.Time          `json:"sent_at"          db:"sent_at"`
}

// NotificationCandidate is produced when a snapshot triggers a watch.
type NotificationCandidate struct {
	TriggeredPrice  int             `json:"triggered_price"`
	TargetPriceMax  int             `json:"target_price"`
	TargetPriceMin  int             `json:"target_price_min"`
	CheapestListing *BuyableListing `json:"cheapest_listing,omitempty"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
