package kapaipai

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// envelope is the common response wrapper; Code 0 means success.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// SearchData is the payload of the card search endpoint.
type SearchData struct {
	List []SearchCard `json:"list"`
}

// SearchCard is one card returned by a name search.
type SearchCard struct {
	GlobalKey string       `json:"globalKey"`
	NameZh    string       `json:"nameZh"`
	RareList  []RareOption `json:"rareList"`
}

// RareOption is one printing of a card.
type RareOption struct {
	PackID       FlexString       `json:"packId"`
	PackName     string           `json:"packName"`
	PackCardID   FlexString       `json:"packCardId"`
	Rare         []string         `json:"rare"`
	LowestPrice  *decimal.Decimal `json:"lowestPrice"`
	AveragePrice *decimal.Decimal `json:"averagePrice"`
}

// ProductData is the payload of the product listing endpoint.
type ProductData struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// Product is one listing on the marketplace.
type Product struct {
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	Condition      string          `json:"condition"`
	Status         string          `json:"status"`
	SellerID       FlexString      `json:"sellerId"`
	SellerNickname string          `json:"sellerNickname"`
	SellerArea     string          `json:"sellerArea"`
	Credit         int             `json:"credit"`
	OrderComplete  int             `json:"orderComplete"`
	PackName       string          `json:"packName"`
}

// FlexString decodes identifiers the marketplace sends as either JSON
// strings or numbers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
