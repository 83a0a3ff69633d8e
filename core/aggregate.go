package core

import (
	"sort"

	"github.com/trafficlens/trafficlens/schema"
)

// KeyFunc extracts a grouping key from a record. ok=false means the record
// has no usable key and must be skipped for this dimension.
type KeyFunc func(schema.EventRecord) (string, bool)

// FieldKey returns a KeyFunc over a plain string field. Missing, non-string
// and junk-sentinel values are rejected.
func FieldKey(field string) KeyFunc {
	return func(rec schema.EventRecord) (string, bool) {
		return rec.Field(field)
	}
}

// TimeBucketKey returns a KeyFunc that buckets a time field at the given
// granularity. Records with unparseable time values are rejected.
func TimeBucketKey(field string, g schema.Granularity) KeyFunc {
	return func(rec schema.EventRecord) (string, bool) {
		raw, ok := rec.Raw(field)
		if !ok {
			return "", false
		}
		return BucketTime(raw, g)
	}
}

// CountResult is a flat count per key. Order holds keys in first-encounter
// order, which is the tie-break for top-N truncation.
type CountResult struct {
	Counts map[string]int
	Order  []string
}

// CountBy groups records by a single key and counts them. Records without a
// usable key are skipped, never counted.
func CountBy(records []schema.EventRecord, keyFn KeyFunc) CountResult {
	res := CountResult{Counts: make(map[string]int)}
	for _, rec := range records {
		key, ok := keyFn(rec)
		if !ok {
			continue
		}
		if _, seen := res.Counts[key]; !seen {
			res.Order = append(res.Order, key)
		}
		res.Counts[key]++
	}
	return res
}

// TopKeys returns up to n keys by descending count. Ties keep
// first-encounter order, so the sort must be stable over Order.
func (r CountResult) TopKeys(n int) []string {
	keys := make([]string, len(r.Order))
	copy(keys, r.Order)
	sort.SliceStable(keys, func(i, j int) bool {
		return r.Counts[keys[i]] > r.Counts[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// SortedKeys returns all keys in default string order.
func (r CountResult) SortedKeys() []string {
	keys := make([]string, len(r.Order))
	copy(keys, r.Order)
	sort.Strings(keys)
	return keys
}

// PairCountResult is a nested count over two keys, plus the discovered key
// universes for both axes in deterministic sorted order.
type PairCountResult struct {
	Counts    map[string]map[string]int
	OuterKeys []string
	InnerKeys []string

	// Encounter order per axis, kept for top-N tie-breaks.
	outerOrder []string
	innerOrder []string
	outerTotal map[string]int
	innerTotal map[string]int
}

// CountByPair groups records by two keys simultaneously. A record missing
// either key is skipped entirely; it contributes to neither axis. Key
// universes are the union of keys seen, sorted with default string
// comparison (time bucket keys therefore sort lexically, matching the
// formatted output this engine has always produced).
func CountByPair(records []schema.EventRecord, outerFn, innerFn KeyFunc) PairCountResult {
	res := PairCountResult{
		Counts:     make(map[string]map[string]int),
		outerTotal: make(map[string]int),
		innerTotal: make(map[string]int),
	}
	for _, rec := range records {
		outer, ok := outerFn(rec)
		if !ok {
			continue
		}
		inner, ok := innerFn(rec)
		if !ok {
			continue
		}
		if res.Counts[outer] == nil {
			res.Counts[outer] = make(map[string]int)
			res.outerOrder = append(res.outerOrder, outer)
		}
		if _, seen := res.innerTotal[inner]; !seen {
			res.innerOrder = append(res.innerOrder, inner)
		}
		res.Counts[outer][inner]++
		res.outerTotal[outer]++
		res.innerTotal[inner]++
	}

	res.OuterKeys = append([]string(nil), res.outerOrder...)
	sort.Strings(res.OuterKeys)
	res.InnerKeys = append([]string(nil), res.innerOrder...)
	sort.Strings(res.InnerKeys)
	return res
}

// Count returns the count for an (outer, inner) pair, zero when absent.
func (r PairCountResult) Count(outer, inner string) int {
	return r.Counts[outer][inner]
}

// Total returns the sum of all cell counts.
func (r PairCountResult) Total() int {
	total := 0
	for _, inner := range r.Counts {
		for _, c := range inner {
			total += c
		}
	}
	return total
}

// TopOuterKeys returns up to n outer keys by descending total count, ties
// in first-encounter order.
func (r PairCountResult) TopOuterKeys(n int) []string {
	return topByCount(r.outerOrder, r.outerTotal, n)
}

// TopInnerKeys returns up to n inner keys by descending total count, ties
// in first-encounter order.
func (r PairCountResult) TopInnerKeys(n int) []string {
	return topByCount(r.innerOrder, r.innerTotal, n)
}

func topByCount(order []string, totals map[string]int, n int) []string {
	keys := make([]string, len(order))
	copy(keys, order)
	sort.SliceStable(keys, func(i, j int) bool {
		return totals[keys[i]] > totals[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
