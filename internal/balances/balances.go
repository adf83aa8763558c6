// Package balances fetches the account's spot token balances and writes
// them as one CSV table sorted by entry notional.
package balances

import (
	"context"
	"fmt"
	"sort"
	"time"

	"quotewatch/internal/archive"
	"quotewatch/internal/hyperliquid"
	"quotewatch/internal/logger"
	"quotewatch/internal/report"
	"quotewatch/internal/store"
)

// Row is one spot balance record.
type Row struct {
	Coin          string  `csv:"coin"`
	Total         float64 `csv:"total"`
	Hold          float64 `csv:"hold"`
	Available     float64 `csv:"available"`
	EntryNotional float64 `csv:"entry_notional"`
}

// Rows transforms the spot snapshot into output rows, sorted by entry
// notional descending.
func Rows(state *hyperliquid.SpotClearinghouseState) []Row {
	rows := make([]Row, 0, len(state.Balances))

	for _, b := range state.Balances {
		total := b.Total.Float64()
		hold := b.Hold.Float64()

		rows = append(rows, Row{
			Coin:          b.Coin,
			Total:         total,
			Hold:          hold,
			Available:     total - hold,
			EntryNotional: b.EntryNtl.Float64(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EntryNotional > rows[j].EntryNotional
	})

	return rows
}

// Run executes the balances fetch unit.
func Run(ctx context.Context, cfg *store.Config) error {
	client := hyperliquid.NewClient(cfg.API.BaseURL, cfg.Account, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	fmt.Printf("Fetching spot balances for %s...\n", cfg.Account)

	op := logger.StartOperation(ctx, "fetch_balances", "account", cfg.Account)
	state, err := client.SpotClearinghouseState(op.GetContext())
	if err != nil {
		op.EndWithError(err)
		return err
	}
	op.End("balances", len(state.Balances))

	if len(state.Balances) == 0 {
		fmt.Println("No balances found.")
		logger.Info(ctx, "No balances, nothing to do", "account", cfg.Account)
		return nil
	}

	rows := Rows(state)

	path, err := report.Write(cfg.Output.Dir, cfg.Output.BalanceFile, &rows)
	if err != nil {
		return err
	}
	logger.Dataset(ctx, "balances", len(rows), path)
	fmt.Printf("Saved %d balances to %s\n", len(rows), path)

	var totalValue float64
	for _, r := range rows {
		totalValue += r.EntryNotional
	}

	if cfg.Archive.Enabled {
		archive.Record(ctx, cfg.Archive.Path, "balances", len(rows), totalValue)
	}

	fmt.Println("\nTop balances by entry value:")
	for i, r := range rows {
		if i >= 10 {
			break
		}
		if r.EntryNotional > 1000 {
			fmt.Printf("  %s: %.2f ($%.2f)\n", r.Coin, r.Total, r.EntryNotional)
		}
	}

	return nil
}
