package quoting

import (
	"testing"
)

func sideWithSizes(sizes []float64) []Order {
	orders := make([]Order, 0, len(sizes))
	for i, s := range sizes {
		orders = append(orders, Order{
			Market: "BTC",
			Side:   SideBid,
			Price:  100 - float64(i), // descending, already in rank order
			Size:   s,
		})
	}
	return orders
}

func TestTierScenario(t *testing.T) {
	// 1.04 <= 1.05*1.0 joins tier 1; 1.10 > 1.05*1.04 opens tier 2;
	// 5.0 > 1.05*1.10 opens tier 3.
	rows := tierRows("BTC", SideBid, sideWithSizes([]float64{1.0, 1.04, 1.10, 5.0}), 100)

	want := map[float64]int{1.0: 1, 1.04: 1, 1.10: 2, 5.0: 3}
	for _, row := range rows {
		if row.Tier != want[row.Size] {
			t.Errorf("Size %f: expected tier %d, got %d", row.Size, want[row.Size], row.Tier)
		}
	}
}

func TestTierMonotonic(t *testing.T) {
	rows := tierRows("BTC", SideBid, sideWithSizes([]float64{3.0, 1.0, 2.9, 1.02, 0.5, 10}), 100)

	for _, a := range rows {
		for _, b := range rows {
			if a.Size <= b.Size && a.Tier > b.Tier {
				t.Errorf("Tier not monotonic: size %f tier %d vs size %f tier %d",
					a.Size, a.Tier, b.Size, b.Tier)
			}
		}
	}
}

func TestTierJoinsImmediatePredecessorOnly(t *testing.T) {
	// 1.051 > 1.05*1.0 opens tier 2. 1.1 <= 1.05*1.051 so it joins tier 2,
	// even though it sits closer to tier 2's lower boundary than 1.051 does
	// to tier 1's. The walk never reconsiders earlier clusters.
	rows := tierRows("BTC", SideBid, sideWithSizes([]float64{1.0, 1.051, 1.1}), 100)

	want := map[float64]int{1.0: 1, 1.051: 2, 1.1: 2}
	for _, row := range rows {
		if row.Tier != want[row.Size] {
			t.Errorf("Size %f: expected tier %d, got %d", row.Size, want[row.Size], row.Tier)
		}
	}
}

func TestTierEmptySide(t *testing.T) {
	if rows := tierRows("BTC", SideBid, nil, 100); rows != nil {
		t.Errorf("Expected no tier rows for empty side, got %d", len(rows))
	}
}

func TestTierZeroMid(t *testing.T) {
	if rows := tierRows("BTC", SideBid, sideWithSizes([]float64{1, 2}), 0); rows != nil {
		t.Errorf("Expected no tier rows for zero mid, got %d", len(rows))
	}
}

func TestNearEqualSizesCollapse(t *testing.T) {
	// differences beyond the 6th decimal collapse to one distinct size
	rows := tierRows("BTC", SideBid, sideWithSizes([]float64{1.0000001, 1.0000002}), 100)

	for _, row := range rows {
		if row.Tier != 1 {
			t.Errorf("Expected near-equal sizes in tier 1, got tier %d for size %f", row.Tier, row.Size)
		}
	}
}

func TestLevelInTierRestartsPerTier(t *testing.T) {
	rows := tierRows("BTC", SideBid, sideWithSizes([]float64{1.0, 1.0, 5.0, 5.0}), 100)

	counts := make(map[int][]int)
	for _, row := range rows {
		counts[row.Tier] = append(counts[row.Tier], row.LevelInTier)
	}

	for tier, ranks := range counts {
		for i, r := range ranks {
			if r != i+1 {
				t.Errorf("Tier %d: expected rank %d at position %d, got %d", tier, i+1, i, r)
			}
		}
	}
	if len(counts) != 2 {
		t.Fatalf("Expected 2 tiers, got %d", len(counts))
	}
}

func TestTierDistanceAndNotional(t *testing.T) {
	rows := tierRows("BTC", SideBid, []Order{{Market: "BTC", Side: SideBid, Price: 99, Size: 2}}, 100)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 tier row, got %d", len(rows))
	}
	if !almostEqual(rows[0].DistanceFromMidBps, 100) {
		t.Errorf("Expected 100 bps distance, got %f", rows[0].DistanceFromMidBps)
	}
	if !almostEqual(rows[0].Notional, 198) {
		t.Errorf("Expected notional 198, got %f", rows[0].Notional)
	}
	if rows[0].MidPrice != 100 {
		t.Errorf("Expected mid 100 on tier row, got %f", rows[0].MidPrice)
	}
}
