// Package stats computes the aggregate figures shown on every page. Values
// are recomputed from the collection on each call.
package stats

// CountBy groups records by key and counts each group. The counts always
// add up to len(records).
func CountBy[T any, K comparable](records []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, r := range records {
		out[key(r)]++
	}
	return out
}

// Count returns how many records satisfy pred.
func Count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Sum adds value over all records; it is 0 for an empty collection.
func Sum[T any](records []T, value func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += value(r)
	}
	return total
}

// MeanWhere averages value over the records satisfying pred, and is 0 when
// none does.
func MeanWhere[T any](records []T, value func(T) float64, pred func(T) bool) float64 {
	var total float64
	n := 0
	for _, r := range records {
		if pred(r) {
			total += value(r)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// StringKeys converts a count-by-status map to plain string keys.
func StringKeys[K ~string](counts map[K]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, n := range counts {
		out[string(k)] = n
	}
	return out
}
