// Package positions fetches the account's perpetual positions and writes
// them as one CSV table sorted by absolute position value.
package positions

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"quotewatch/internal/archive"
	"quotewatch/internal/hyperliquid"
	"quotewatch/internal/logger"
	"quotewatch/internal/report"
	"quotewatch/internal/store"
)

// Row is one perpetual position record.
type Row struct {
	Coin              string   `csv:"coin"`
	Side              string   `csv:"side"` // LONG or SHORT
	Size              float64  `csv:"size"`
	EntryPrice        float64  `csv:"entry_price"`
	PositionValue     float64  `csv:"position_value"`
	UnrealizedPnl     float64  `csv:"unrealized_pnl"`
	ReturnOnEquity    float64  `csv:"return_on_equity"`
	Leverage          int      `csv:"leverage"`
	MarginUsed        float64  `csv:"margin_used"`
	LiquidationPrice  *float64 `csv:"liquidation_price"` // blank when the exchange reports none
	CumulativeFunding float64  `csv:"cumulative_funding"`
}

// Rows transforms the clearinghouse snapshot into output rows, sorted by
// absolute position value descending.
func Rows(state *hyperliquid.ClearinghouseState) []Row {
	rows := make([]Row, 0, len(state.AssetPositions))

	for _, ap := range state.AssetPositions {
		p := ap.Position
		size := p.Szi.Float64()

		side := "LONG"
		if size < 0 {
			side = "SHORT"
		}

		leverage := int(p.Leverage.Value.Float64())
		if leverage == 0 {
			leverage = 1
		}

		var liqPx *float64
		if p.LiquidationPx != nil {
			v := p.LiquidationPx.Float64()
			liqPx = &v
		}

		rows = append(rows, Row{
			Coin:              p.Coin,
			Side:              side,
			Size:              size,
			EntryPrice:        p.EntryPx.Float64(),
			PositionValue:     math.Abs(size) * p.EntryPx.Float64(),
			UnrealizedPnl:     p.UnrealizedPnl.Float64(),
			ReturnOnEquity:    p.ReturnOnEquity.Float64(),
			Leverage:          leverage,
			MarginUsed:        p.MarginUsed.Float64(),
			LiquidationPrice:  liqPx,
			CumulativeFunding: p.CumFunding.AllTime.Float64(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].PositionValue) > math.Abs(rows[j].PositionValue)
	})

	return rows
}

// Run executes the positions fetch unit.
func Run(ctx context.Context, cfg *store.Config) error {
	client := hyperliquid.NewClient(cfg.API.BaseURL, cfg.Account, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	fmt.Printf("Fetching positions for %s...\n", cfg.Account)

	op := logger.StartOperation(ctx, "fetch_positions", "account", cfg.Account)
	state, err := client.ClearinghouseState(op.GetContext())
	if err != nil {
		op.EndWithError(err)
		return err
	}
	op.End("positions", len(state.AssetPositions))

	if len(state.AssetPositions) == 0 {
		fmt.Println("No positions found.")
		logger.Info(ctx, "No positions, nothing to do", "account", cfg.Account)
		return nil
	}

	rows := Rows(state)

	path, err := report.Write(cfg.Output.Dir, cfg.Output.PositionFile, &rows)
	if err != nil {
		return err
	}
	logger.Dataset(ctx, "positions", len(rows), path)
	fmt.Printf("Saved %d positions to %s\n", len(rows), path)

	var totalLong, totalShort, totalPnl float64
	for _, r := range rows {
		if r.Side == "LONG" {
			totalLong += r.PositionValue
		} else {
			totalShort += r.PositionValue
		}
		totalPnl += r.UnrealizedPnl
	}

	if cfg.Archive.Enabled {
		archive.Record(ctx, cfg.Archive.Path, "positions", len(rows), totalLong+totalShort)
	}

	fmt.Println("\nSummary:")
	fmt.Printf("  Total Long Exposure:  $%.2f\n", totalLong)
	fmt.Printf("  Total Short Exposure: $%.2f\n", totalShort)
	fmt.Printf("  Net Exposure:         $%.2f\n", totalLong-totalShort)
	fmt.Printf("  Unrealized PnL:       $%.2f\n", totalPnl)

	return nil
}
