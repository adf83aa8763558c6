package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"quotewatch/internal/balances"
	"quotewatch/internal/logger"
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

	if err := balances.Run(ctx, cfg); err != nil {
		logger.ErrorWithErr(ctx, "Balance fetch failed", err)
		os.Exit(1)
	}
}
