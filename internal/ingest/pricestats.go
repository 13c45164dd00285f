package ingest

import "sort"

// PriceStats summarizes the linked listing prices of one trim
type PriceStats struct {
	Count  int
	Min    int
	Median int
	Max    int
}

// ComputePriceStats returns the statistics of the positive prices, nil when there are none.
// The median of an even count is the upper middle value.
func ComputePriceStats(prices []int) *PriceStats {
	positive := make([]int, 0, len(prices))
	for _, p := range prices {
		if p > 0 {
			positive = append(positive, p)
		}
	}
	if len(positive) == 0 {
		return nil
	}

	sort.Ints(positive)
	return &PriceStats{
		Count:  len(positive),
		Min:    positive[0],
		Median: positive[len(positive)/2],
		Max:    positive[len(positive)-1],
	}
}
