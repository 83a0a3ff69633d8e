package core

import (
	"sort"

	"github.com/trafficlens/trafficlens/schema"
)

// FiveNumberSummary computes min, Q1, median, Q3 and max for a sample set.
// Quartiles use the lower-bound nearest-rank method: after sorting
// ascending, Q1 is the element at floor(n*0.25), the median at
// floor(n*0.5), Q3 at floor(n*0.75). No interpolation. Downstream
// consumers depend on this exact indexing, so it must not be swapped for a
// percentile formula. ok=false means the sample set was empty.
func FiveNumberSummary(samples []float64) (schema.BoxSummary, bool) {
	n := len(samples)
	if n == 0 {
		return schema.BoxSummary{}, false
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	return schema.BoxSummary{
		Min:    sorted[0],
		Q1:     sorted[n/4],
		Median: sorted[n/2],
		Q3:     sorted[n*3/4],
		Max:    sorted[n-1],
	}, true
}
