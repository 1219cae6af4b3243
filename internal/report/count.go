package report

import "sort"

// counter tallies values and remembers the order they were first seen
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(k K) {
	if _, ok := c.counts[k]; !ok {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

// mode returns the most frequent value. Ties go to the value seen first
func (c *counter[K]) mode() (K, int, bool) {
	var best K
	n := 0
	for _, k := range c.order {
		if c.counts[k] > n {
			best, n = k, c.counts[k]
		}
	}
	return best, n, n > 0
}

// byCount lists values by descending count, first-seen order on ties
func (c *counter[K]) byCount() []K {
	out := make([]K, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool { return c.counts[out[i]] > c.counts[out[j]] })
	return out
}

// Count is one value and how often it occurred
type Count struct {
	Value string
	N     int
}

func stringCounts(c *counter[string], keys []string) []Count {
	out := make([]Count, 0, len(keys))
	for _, k := range keys {
		out = append(out, Count{Value: k, N: c.counts[k]})
	}
	return out
}
