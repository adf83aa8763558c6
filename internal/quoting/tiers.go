package quoting

import (
	"math"
	"sort"
)

const (
	// sizes within 5% of the previous distinct size share a tier
	tierStep = 1.05
	// rounding precision that collapses near-equal float sizes to one key
	sizeDecimals = 1e6
)

func roundSize(s float64) float64 {
	return math.Round(s*sizeDecimals) / sizeDecimals
}

// sizeTiers maps each distinct rounded size to an integer tier, 1 = smallest.
// The walk is a single left-to-right pass over the ascending distinct sizes:
// a size joins its immediate sorted predecessor's tier unless it exceeds
// tierStep times that predecessor, which starts the next tier. A size never
// joins an earlier cluster, even when numerically closer to its boundary.
func sizeTiers(levels []Order) map[float64]int {
	seen := make(map[float64]struct{}, len(levels))
	sizes := make([]float64, 0, len(levels))
	for _, l := range levels {
		s := roundSize(l.Size)
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			sizes = append(sizes, s)
		}
	}
	sort.Float64s(sizes)

	tiers := make(map[float64]int, len(sizes))
	tier := 0
	for i, s := range sizes {
		if i == 0 || s > sizes[i-1]*tierStep {
			tier++
			tiers[s] = tier
		} else {
			tiers[s] = tiers[sizes[i-1]]
		}
	}

	return tiers
}

// tierRows assigns each order of a side its size tier and rank within that
// tier, counted in price order. An empty side or a zero mid yields no rows.
func tierRows(market string, side Side, levels []Order, mid float64) []TierRow {
	if len(levels) == 0 || mid == 0 {
		return nil
	}

	tiers := sizeTiers(levels)
	rank := make(map[int]int)
	rows := make([]TierRow, 0, len(levels))

	for _, l := range levels {
		t := tiers[roundSize(l.Size)]
		rank[t]++

		rows = append(rows, TierRow{
			Market:             market,
			Side:               side,
			Tier:               t,
			Size:               l.Size,
			LevelInTier:        rank[t],
			Price:              l.Price,
			MidPrice:           mid,
			DistanceFromMidBps: distanceBps(l.Price, mid),
			Notional:           l.Price * l.Size,
		})
	}

	return rows
}
