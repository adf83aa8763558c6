package positions

import (
	"testing"

	"quotewatch/internal/hyperliquid"
)

func position(coin string, szi, entryPx float64) hyperliquid.AssetPosition {
	return hyperliquid.AssetPosition{
		Type: "oneWay",
		Position: hyperliquid.Position{
			Coin:    coin,
			Szi:     hyperliquid.Number(szi),
			EntryPx: hyperliquid.Number(entryPx),
		},
	}
}

func TestRowsSides(t *testing.T) {
	state := &hyperliquid.ClearinghouseState{
		AssetPositions: []hyperliquid.AssetPosition{
			position("BTC", 1.5, 100),
			position("ETH", -2, 100),
		},
	}

	rows := Rows(state)
	bySide := map[string]string{}
	for _, r := range rows {
		bySide[r.Coin] = r.Side
	}

	if bySide["BTC"] != "LONG" {
		t.Errorf("Expected BTC LONG, got %s", bySide["BTC"])
	}
	if bySide["ETH"] != "SHORT" {
		t.Errorf("Expected ETH SHORT, got %s", bySide["ETH"])
	}
}

func TestRowsPositionValueAndSort(t *testing.T) {
	state := &hyperliquid.ClearinghouseState{
		AssetPositions: []hyperliquid.AssetPosition{
			position("SMALL", 1, 10),
			position("BIG", -3, 1000), // |size| * entry = 3000
		},
	}

	rows := Rows(state)

	if rows[0].Coin != "BIG" {
		t.Errorf("Expected BIG first by absolute position value, got %s", rows[0].Coin)
	}
	if rows[0].PositionValue != 3000 {
		t.Errorf("Expected position value 3000, got %f", rows[0].PositionValue)
	}
}

func TestRowsLeverageDefault(t *testing.T) {
	ap := position("BTC", 1, 100)
	state := &hyperliquid.ClearinghouseState{AssetPositions: []hyperliquid.AssetPosition{ap}}

	rows := Rows(state)
	if rows[0].Leverage != 1 {
		t.Errorf("Expected default leverage 1, got %d", rows[0].Leverage)
	}

	ap.Position.Leverage = hyperliquid.Leverage{Type: "cross", Value: 20}
	state.AssetPositions[0] = ap
	rows = Rows(state)
	if rows[0].Leverage != 20 {
		t.Errorf("Expected leverage 20, got %d", rows[0].Leverage)
	}
}

func TestRowsLiquidationPrice(t *testing.T) {
	withLiq := position("BTC", 1, 100)
	liq := hyperliquid.Number(50.5)
	withLiq.Position.LiquidationPx = &liq

	state := &hyperliquid.ClearinghouseState{
		AssetPositions: []hyperliquid.AssetPosition{
			withLiq,
			position("ETH", 1, 10),
		},
	}

	rows := Rows(state)
	for _, r := range rows {
		switch r.Coin {
		case "BTC":
			if r.LiquidationPrice == nil || *r.LiquidationPrice != 50.5 {
				t.Errorf("Expected liquidation price 50.5, got %v", r.LiquidationPrice)
			}
		case "ETH":
			if r.LiquidationPrice != nil {
				t.Errorf("Expected blank liquidation price, got %v", *r.LiquidationPrice)
			}
		}
	}
}
