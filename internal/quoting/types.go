package quoting

// Side labels one half of a market's book
type Side string

const (
	SideBid Side = "BID"
	SideAsk Side = "ASK"
)

// Order is one resting order snapshot
type Order struct {
	Market    string
	Side      Side
	Price     float64
	Size      float64
	Oid       int64
	Timestamp int64
}

// MarketBook holds one market's resting orders, best level first on each side
type MarketBook struct {
	Market string
	Bids   []Order // descending price
	Asks   []Order // ascending price
	Mid    float64 // 0 when no external mid and the book is one-sided
}

// SummaryRow is one market's aggregate quoting stats
type SummaryRow struct {
	Market           string  `csv:"market"`
	TotalOrders      int     `csv:"total_orders"`
	NumBids          int     `csv:"num_bids"`
	NumAsks          int     `csv:"num_asks"`
	BestBid          float64 `csv:"best_bid"`
	BestAsk          float64 `csv:"best_ask"`
	MidPrice         float64 `csv:"mid_price"`
	SpreadPct        float64 `csv:"spread_pct"`
	TotalBidSize     float64 `csv:"total_bid_size"`
	TotalAskSize     float64 `csv:"total_ask_size"`
	BidNotionalUSD   float64 `csv:"bid_notional_usd"`
	AskNotionalUSD   float64 `csv:"ask_notional_usd"`
	TotalNotionalUSD float64 `csv:"total_notional_usd"`
	AvgBidSpacingPct float64 `csv:"avg_bid_spacing_pct"`
	AvgAskSpacingPct float64 `csv:"avg_ask_spacing_pct"`
}

// LevelRow is one order enriched with its rank and distance metrics
type LevelRow struct {
	Market             string  `csv:"market"`
	Side               Side    `csv:"side"`
	Level              int     `csv:"level"`
	Price              float64 `csv:"price"`
	Size               float64 `csv:"size"`
	NotionalUSD        float64 `csv:"notional_usd"`
	DistanceFromMidBps float64 `csv:"distance_from_mid_bps"`
	PriceChangePct     float64 `csv:"price_change_pct"`
	SizeChangePct      float64 `csv:"size_change_pct"`
	Oid                int64   `csv:"oid"`
	Timestamp          int64   `csv:"timestamp"`
}

// TierRow is one order with its inferred size-tier assignment
type TierRow struct {
	Market             string  `csv:"market"`
	Side               Side    `csv:"side"`
	Tier               int     `csv:"tier"`
	Size               float64 `csv:"size"`
	LevelInTier        int     `csv:"level_in_tier"`
	Price              float64 `csv:"price"`
	MidPrice           float64 `csv:"mid_price"`
	DistanceFromMidBps float64 `csv:"distance_from_mid_bps"`
	Notional           float64 `csv:"notional"`
}

// Report is the full output of one analysis pass
type Report struct {
	Summary []SummaryRow
	Levels  []LevelRow
	Tiers   []TierRow
}
