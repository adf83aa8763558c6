package hyperliquid

import (
	"fmt"
	"strconv"
	"strings"
)

// Number decodes the API's numeric fields, which arrive as JSON strings
// ("limitPx": "109235.0") or occasionally as plain numbers.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// OpenOrder is one resting order from the openOrders response.
type OpenOrder struct {
	Coin      string `json:"coin"`
	Side      string `json:"side"` // "B" = bid, "A" = ask
	LimitPx   Number `json:"limitPx"`
	Sz        Number `json:"sz"`
	Oid       int64  `json:"oid"`
	Timestamp int64  `json:"timestamp"`
}

// Leverage describes a position's leverage setting.
type Leverage struct {
	Type  string `json:"type"` // cross or isolated
	Value Number `json:"value"`
}

// CumFunding holds cumulative funding paid or received on a position.
type CumFunding struct {
	AllTime     Number `json:"allTime"`
	SinceOpen   Number `json:"sinceOpen"`
	SinceChange Number `json:"sinceChange"`
}

// Position is one perpetual position inside clearinghouseState.
type Position struct {
	Coin           string     `json:"coin"`
	Szi            Number     `json:"szi"` // signed size, negative = short
	EntryPx        Number     `json:"entryPx"`
	PositionValue  Number     `json:"positionValue"`
	UnrealizedPnl  Number     `json:"unrealizedPnl"`
	ReturnOnEquity Number     `json:"returnOnEquity"`
	Leverage       Leverage   `json:"leverage"`
	MarginUsed     Number     `json:"marginUsed"`
	LiquidationPx  *Number    `json:"liquidationPx"`
	CumFunding     CumFunding `json:"cumFunding"`
}

// AssetPosition wraps a Position with its margining type.
type AssetPosition struct {
	Type     string   `json:"type"`
	Position Position `json:"position"`
}

// MarginSummary is the account-level margin state.
type MarginSummary struct {
	AccountValue    Number `json:"accountValue"`
	TotalNtlPos     Number `json:"totalNtlPos"`
	TotalRawUsd     Number `json:"totalRawUsd"`
	TotalMarginUsed Number `json:"totalMarginUsed"`
}

// ClearinghouseState is the perpetual account snapshot.
type ClearinghouseState struct {
	AssetPositions []AssetPosition `json:"assetPositions"`
	MarginSummary  MarginSummary   `json:"marginSummary"`
	Withdrawable   Number          `json:"withdrawable"`
}

// SpotBalance is one token balance inside spotClearinghouseState.
type SpotBalance struct {
	Coin     string `json:"coin"`
	Token    int    `json:"token"`
	Total    Number `json:"total"`
	Hold     Number `json:"hold"`
	EntryNtl Number `json:"entryNtl"`
}

// SpotClearinghouseState is the spot account snapshot.
type SpotClearinghouseState struct {
	Balances []SpotBalance `json:"balances"`
}
