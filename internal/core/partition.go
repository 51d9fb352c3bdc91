package core

import "sort"

// SplitBounds holds the per-label split boundaries.
// The test slice is [0, TestSize) and the train slice is [TrainOffset, end).
type SplitBounds struct {
	TestSize    int
	TrainOffset int
}

// DefaultSplitBounds leaves records 10 and 11 of each label out of both slices
var DefaultSplitBounds = SplitBounds{TestSize: 10, TrainOffset: 12}

// FilterByLabel returns the records carrying the label, preserving order
func FilterByLabel(records []FilteredRecord, label Label) []FilteredRecord {
	out := make([]FilteredRecord, 0, len(records))
	for _, r := range records {
		if r.Spam == label {
			out = append(out, r)
		}
	}
	return out
}

// sliceRange returns records[lo:hi] clamped to the slice length
func sliceRange(records []FilteredRecord, lo, hi int) []FilteredRecord {
	if lo > len(records) {
		lo = len(records)
	}
	if hi < 0 || hi > len(records) {
		hi = len(records)
	}
	if lo >= hi {
		return []FilteredRecord{}
	}
	out := make([]FilteredRecord, hi-lo)
	copy(out, records[lo:hi])
	return out
}

// Partition splits the records into the four named test and train splits
func Partition(records []FilteredRecord, bounds SplitBounds) []Split {
	spam := FilterByLabel(records, Spam)
	ham := FilterByLabel(records, Ham)

	return []Split{
		{Name: SpamTest, Records: sliceRange(spam, 0, bounds.TestSize)},
		{Name: SpamTrain, Records: sliceRange(spam, bounds.TrainOffset, -1)},
		{Name: HamTest, Records: sliceRange(ham, 0, bounds.TestSize)},
		{Name: HamTrain, Records: sliceRange(ham, bounds.TrainOffset, -1)},
	}
}

// CountByLabel counts the records per label, sorted by label
func CountByLabel(records []Record) []LabelCount {
	counts := make(map[Label]int)
	for _, r := range records {
		counts[r.Spam]++
	}

	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
