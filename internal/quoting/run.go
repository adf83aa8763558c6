package quoting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quotewatch/internal/archive"
	"quotewatch/internal/hyperliquid"
	"quotewatch/internal/logger"
	"quotewatch/internal/report"
	"quotewatch/internal/store"
)

// Run executes the quoting-strategy fetch unit: one openOrders fetch, one
// allMids fetch, analysis, and three CSV outputs.
func Run(ctx context.Context, cfg *store.Config) error {
	client := hyperliquid.NewClient(cfg.API.BaseURL, cfg.Account, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	fmt.Printf("Fetching open orders for %s...\n", cfg.Account)

	op := logger.StartOperation(ctx, "fetch_orders", "account", cfg.Account)
	raw, err := client.OpenOrders(op.GetContext())
	if err != nil {
		op.EndWithError(err)
		return err
	}
	mids, err := client.AllMids(op.GetContext())
	if err != nil {
		op.EndWithError(err)
		return err
	}
	op.End("orders", len(raw))

	if len(raw) == 0 {
		fmt.Println("No open orders found.")
		logger.Info(ctx, "No open orders, nothing to do", "account", cfg.Account)
		return nil
	}

	orders := make([]Order, 0, len(raw))
	for _, o := range raw {
		side := SideAsk
		if o.Side == "B" {
			side = SideBid
		}
		orders = append(orders, Order{
			Market:    o.Coin,
			Side:      side,
			Price:     o.LimitPx.Float64(),
			Size:      o.Sz.Float64(),
			Oid:       o.Oid,
			Timestamp: o.Timestamp,
		})
	}

	midPrices := make(map[string]float64, len(mids))
	for market, mid := range mids {
		midPrices[market] = mid.Float64()
	}

	rep := Analyze(orders, midPrices)

	fmt.Printf("Found %d orders across %d markets\n", len(orders), len(rep.Summary))

	path, err := report.Write(cfg.Output.Dir, cfg.Output.SummaryFile, &rep.Summary)
	if err != nil {
		return err
	}
	logger.Dataset(ctx, "orders_summary", len(rep.Summary), path)
	fmt.Printf("Saved market summary to %s\n", path)

	path, err = report.Write(cfg.Output.Dir, cfg.Output.DetailFile, &rep.Levels)
	if err != nil {
		return err
	}
	logger.Dataset(ctx, "orders_detail", len(rep.Levels), path)
	fmt.Printf("Saved detailed orders to %s\n", path)

	path, err = report.Write(cfg.Output.Dir, cfg.Output.TiersFile, &rep.Tiers)
	if err != nil {
		return err
	}
	logger.Dataset(ctx, "orders_tiers", len(rep.Tiers), path)
	fmt.Printf("Saved tier analysis to %s\n", path)

	var totalNotional float64
	for _, row := range rep.Summary {
		totalNotional += row.TotalNotionalUSD
	}
	if cfg.Archive.Enabled {
		archive.Record(ctx, cfg.Archive.Path, "orders", len(orders), totalNotional)
	}

	printSummary(rep, len(orders))
	return nil
}

func printSummary(rep *Report, orderCount int) {
	var totalNotional, bidNotional, askNotional float64
	for _, row := range rep.Summary {
		totalNotional += row.TotalNotionalUSD
		bidNotional += row.BidNotionalUSD
		askNotional += row.AskNotionalUSD
	}

	rule := strings.Repeat("=", 60)

	fmt.Printf("\n%s\n", rule)
	fmt.Println("QUOTING STRATEGY SUMMARY")
	fmt.Println(rule)
	fmt.Printf("  Total Orders:       %d\n", orderCount)
	fmt.Printf("  Markets Quoted:     %d\n", len(rep.Summary))
	fmt.Printf("  Total Notional:     $%.0f\n", totalNotional)
	if totalNotional > 0 {
		fmt.Printf("  Bid Notional:       $%.0f (%.1f%%)\n", bidNotional, bidNotional/totalNotional*100)
		fmt.Printf("  Ask Notional:       $%.0f (%.1f%%)\n", askNotional, askNotional/totalNotional*100)
	}

	fmt.Printf("\n%s\n", rule)
	fmt.Println("TOP MARKETS BY NOTIONAL")
	fmt.Println(rule)
	for i, row := range rep.Summary {
		if i >= 10 {
			break
		}
		fmt.Printf("  %-8s $%12.0f  %3d orders  %6.2f bps spread\n",
			row.Market, row.TotalNotionalUSD, row.TotalOrders, row.SpreadPct*100)
	}

	var spreads []float64
	for _, row := range rep.Summary {
		if row.SpreadPct > 0 {
			spreads = append(spreads, row.SpreadPct*100)
		}
	}
	if len(spreads) > 0 {
		minSpread, maxSpread, sum := spreads[0], spreads[0], 0.0
		for _, s := range spreads {
			if s < minSpread {
				minSpread = s
			}
			if s > maxSpread {
				maxSpread = s
			}
			sum += s
		}

		fmt.Printf("\n%s\n", rule)
		fmt.Println("SPREAD STATISTICS")
		fmt.Println(rule)
		fmt.Printf("  Average Spread:     %.2f bps\n", sum/float64(len(spreads)))
		fmt.Printf("  Tightest Spread:    %.2f bps\n", minSpread)
		fmt.Printf("  Widest Spread:      %.2f bps\n", maxSpread)
	}
}
