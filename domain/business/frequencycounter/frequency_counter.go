package frequencycounter

import "sort"

// ValueCount pair of a value and the amount of times it was seen
type ValueCount[T comparable] struct {
	Value T
	Count int
}

// FrequencyCounter struct that counts how many times each value appears
// + counters: amount of occurrences per value
// + order: values in the order they were first seen. Used to break ties
type FrequencyCounter[T comparable] struct {
	counters map[T]int
	order    []T
}

func NewFrequencyCounter[T comparable]() *FrequencyCounter[T] {
	return &FrequencyCounter[T]{
		counters: make(map[T]int),
	}
}

func (fc *FrequencyCounter[T]) UpdateCounter(value T) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
}

// Mode returns the most frequent value. If there is a tie the value seen first wins.
// The boolean is false when no value was counted.
func (fc *FrequencyCounter[T]) Mode() (T, bool) {
	var mode T
	best := 0
	for _, value := range fc.order {
		if fc.counters[value] > best {
			mode = value
			best = fc.counters[value]
		}
	}
	return mode, best > 0
}

// ValueCounts returns every distinct value with its count, sorted by count in
// descending order. Values with the same count keep the order they were first seen.
func (fc *FrequencyCounter[T]) ValueCounts() []ValueCount[T] {
	valueCounts := make([]ValueCount[T], 0, len(fc.order))
	for _, value := range fc.order {
		valueCounts = append(valueCounts, ValueCount[T]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}
