package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trafficlens/trafficlens/schema"
)

// TestFiveNumberSummary tests the nearest-rank quartile indexing that
// downstream output parity depends on.
func TestFiveNumberSummary(t *testing.T) {
	t.Run("eight samples", func(t *testing.T) {
		summary, ok := FiveNumberSummary([]float64{1, 2, 3, 4, 5, 6, 7, 8})
		assert.True(t, ok)
		assert.Equal(t, schema.BoxSummary{Min: 1, Q1: 3, Median: 5, Q3: 7, Max: 8}, summary)
	})

	t.Run("unsorted input", func(t *testing.T) {
		summary, ok := FiveNumberSummary([]float64{8, 1, 6, 3, 5, 2, 7, 4})
		assert.True(t, ok)
		assert.Equal(t, schema.BoxSummary{Min: 1, Q1: 3, Median: 5, Q3: 7, Max: 8}, summary)
	})

	t.Run("five samples", func(t *testing.T) {
		summary, ok := FiveNumberSummary([]float64{10, 20, 30, 40, 50})
		assert.True(t, ok)
		// floor(5*.25)=1, floor(5*.5)=2, floor(5*.75)=3
		assert.Equal(t, schema.BoxSummary{Min: 10, Q1: 20, Median: 30, Q3: 40, Max: 50}, summary)
	})

	t.Run("single sample", func(t *testing.T) {
		summary, ok := FiveNumberSummary([]float64{7})
		assert.True(t, ok)
		assert.Equal(t, schema.BoxSummary{Min: 7, Q1: 7, Median: 7, Q3: 7, Max: 7}, summary)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := FiveNumberSummary(nil)
		assert.False(t, ok)
	})

	t.Run("input left untouched", func(t *testing.T) {
		samples := []float64{3, 1, 2}
		_, _ = FiveNumberSummary(samples)
		assert.Equal(t, []float64{3, 1, 2}, samples)
	})
}
