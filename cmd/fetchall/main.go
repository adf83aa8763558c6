// fetchall runs the three fetch units sequentially. A failing unit is
// reported as a warning and the remaining units still run; the orchestrator
// itself always exits 0.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"quotewatch/internal/balances"
	"quotewatch/internal/logger"
	"quotewatch/internal/positions"
	"quotewatch/internal/quoting"
	"quotewatch/internal/store"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	units := []struct {
		name string
		run  func(context.Context, *store.Config) error
	}{
		{"Quoting Strategy (open orders)", quoting.Run},
		{"Positions (inventory)", positions.Run},
		{"Spot Balances", balances.Run},
	}

	rule := strings.Repeat("=", 60)

	fmt.Println(rule)
	fmt.Println("Hyperliquid Account Data Fetcher")
	fmt.Println(rule)

	for _, unit := range units {
		fmt.Printf("\n%s\n", rule)
		fmt.Printf("Fetching %s...\n", unit.name)
		fmt.Println(rule)

		if err := unit.run(ctx, cfg); err != nil {
			logger.Warn(ctx, "Fetch unit failed", "unit", unit.name, "error", err)
			fmt.Printf("Warning: %s failed: %v\n", unit.name, err)
		}
	}

	fmt.Printf("\n%s\n", rule)
	fmt.Printf("Done! Data saved to %s/ directory.\n", cfg.Output.Dir)
	fmt.Println(rule)
	fmt.Println("\nKey files:")
	fmt.Printf("  - %s   (per-market stats)\n", cfg.Output.SummaryFile)
	fmt.Printf("  - %s  (per-order details)\n", cfg.Output.DetailFile)
	fmt.Printf("  - %s     (tier analysis)\n", cfg.Output.TiersFile)
}
