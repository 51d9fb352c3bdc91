package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Label is the class of an email in the corpus
type Label int

const (
	// Ham is a legitimate email
	Ham Label = 0
	// Spam is an unsolicited email
	Spam Label = 1
)

// ParseLabel parses a label column value.
// Integral floats such as "1.0" are accepted as their integer value.
func ParseLabel(value string) (Label, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Label(n), nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, value)
	}
	return Label(int(f)), nil
}

// String returns the label as it appears in the corpus files
func (l Label) String() string {
	return strconv.Itoa(int(l))
}

// Record represents one labelled email from the source dataset
type Record struct {
	Text string
	Spam Label
}

// FilteredRecord is a Record with its normalized text
type FilteredRecord struct {
	Record
	FilteredText string
}

// Split names
const (
	SpamTest  = "spam_test"
	SpamTrain = "spam_train"
	HamTest   = "ham_test"
	HamTrain  = "ham_train"
)

// SplitNames lists the splits in the order they are written
var SplitNames = []string{SpamTest, SpamTrain, HamTest, HamTrain}

// Split is a named, ordered slice of filtered records
type Split struct {
	Name    string
	Records []FilteredRecord
}

// LabelCount is the number of source records carrying a label
type LabelCount struct {
	Label Label
	Count int
}

// RunSummary describes a completed preparation run
type RunSummary struct {
	RunID  string
	Counts []LabelCount
	Splits map[string]int
}
