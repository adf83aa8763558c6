// Package quoting derives descriptive statistics about one account's quoting
// behavior: per-market book structure, size tiering, spread and level spacing.
// The analysis is a pure function of the fetched order snapshot; degenerate
// inputs (one-sided books, missing mids) report zeroed metrics, never errors.
package quoting

import (
	"math"
	"sort"
)

// BuildBooks partitions orders by market and side, sorts each side best level
// first, and resolves the mid price. An externally quoted mid wins when
// non-zero; otherwise a two-sided book derives it from the touch, and a
// one-sided book reports mid 0. Markets keep first-appearance order.
func BuildBooks(orders []Order, mids map[string]float64) []*MarketBook {
	byMarket := make(map[string]*MarketBook)
	var sequence []string

	for _, o := range orders {
		book, ok := byMarket[o.Market]
		if !ok {
			book = &MarketBook{Market: o.Market}
			byMarket[o.Market] = book
			sequence = append(sequence, o.Market)
		}
		if o.Side == SideBid {
			book.Bids = append(book.Bids, o)
		} else {
			book.Asks = append(book.Asks, o)
		}
	}

	books := make([]*MarketBook, 0, len(sequence))
	for _, market := range sequence {
		book := byMarket[market]
		sort.SliceStable(book.Bids, func(i, j int) bool {
			return book.Bids[i].Price > book.Bids[j].Price
		})
		sort.SliceStable(book.Asks, func(i, j int) bool {
			return book.Asks[i].Price < book.Asks[j].Price
		})

		book.Mid = mids[market]
		if book.Mid == 0 && len(book.Bids) > 0 && len(book.Asks) > 0 {
			book.Mid = (book.Bids[0].Price + book.Asks[0].Price) / 2
		}
		books = append(books, book)
	}

	return books
}

// Analyze runs the full quoting analysis over an order snapshot. Summary rows
// are sorted by total notional descending; level and tier rows keep market
// first-appearance order, bids before asks.
func Analyze(orders []Order, mids map[string]float64) *Report {
	report := &Report{}

	for _, book := range BuildBooks(orders, mids) {
		report.Summary = append(report.Summary, summarize(book))
		report.Levels = append(report.Levels, levelRows(book.Market, SideBid, book.Bids, book.Mid)...)
		report.Levels = append(report.Levels, levelRows(book.Market, SideAsk, book.Asks, book.Mid)...)
		report.Tiers = append(report.Tiers, tierRows(book.Market, SideBid, book.Bids, book.Mid)...)
		report.Tiers = append(report.Tiers, tierRows(book.Market, SideAsk, book.Asks, book.Mid)...)
	}

	sort.SliceStable(report.Summary, func(i, j int) bool {
		return report.Summary[i].TotalNotionalUSD > report.Summary[j].TotalNotionalUSD
	})

	return report
}

func summarize(book *MarketBook) SummaryRow {
	row := SummaryRow{
		Market:           book.Market,
		TotalOrders:      len(book.Bids) + len(book.Asks),
		NumBids:          len(book.Bids),
		NumAsks:          len(book.Asks),
		MidPrice:         book.Mid,
		AvgBidSpacingPct: avgSpacing(book.Bids),
		AvgAskSpacingPct: avgSpacing(book.Asks),
	}

	if len(book.Bids) > 0 {
		row.BestBid = book.Bids[0].Price
	}
	if len(book.Asks) > 0 {
		row.BestAsk = book.Asks[0].Price
	}

	for _, b := range book.Bids {
		row.TotalBidSize += b.Size
		row.BidNotionalUSD += b.Price * b.Size
	}
	for _, a := range book.Asks {
		row.TotalAskSize += a.Size
		row.AskNotionalUSD += a.Price * a.Size
	}
	row.TotalNotionalUSD = row.BidNotionalUSD + row.AskNotionalUSD

	if row.MidPrice != 0 && row.BestBid != 0 && row.BestAsk != 0 {
		row.SpreadPct = (row.BestAsk - row.BestBid) / row.MidPrice * 100
	}

	return row
}

// levelRows ranks one side best-first and computes per-level deltas. The best
// level always reports zero change; size change falls back to zero when the
// better level's size is zero.
func levelRows(market string, side Side, levels []Order, mid float64) []LevelRow {
	rows := make([]LevelRow, 0, len(levels))

	for i, l := range levels {
		var priceChange, sizeChange float64
		if i > 0 {
			prev := levels[i-1]
			priceChange = (l.Price - prev.Price) / prev.Price * 100
			if prev.Size != 0 {
				sizeChange = (l.Size - prev.Size) / prev.Size * 100
			}
		}

		rows = append(rows, LevelRow{
			Market:             market,
			Side:               side,
			Level:              i + 1,
			Price:              l.Price,
			Size:               l.Size,
			NotionalUSD:        l.Price * l.Size,
			DistanceFromMidBps: distanceBps(l.Price, mid),
			PriceChangePct:     priceChange,
			SizeChangePct:      sizeChange,
			Oid:                l.Oid,
			Timestamp:          l.Timestamp,
		})
	}

	return rows
}

// avgSpacing returns the mean percentage gap between adjacent levels of a
// side. Fewer than two levels means no gaps, reported as 0.
func avgSpacing(levels []Order) float64 {
	if len(levels) < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < len(levels); i++ {
		sum += math.Abs(levels[i].Price-levels[i-1].Price) / levels[i-1].Price * 100
	}
	return sum / float64(len(levels)-1)
}

func distanceBps(price, mid float64) float64 {
	if mid == 0 {
		return 0
	}
	return math.Abs(price-mid) / mid * 10000
}
