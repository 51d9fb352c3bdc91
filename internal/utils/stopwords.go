package utils

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed stopwords_english.txt
var englishStopWords string

// StopWords is an immutable set of words excluded from filtered text
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords creates a stop-word set from the given words
func NewStopWords(words []string) *StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set[w] = struct{}{}
		}
	}
	return &StopWords{words: set}
}

// EnglishStopWords returns the English stop-word list used by NLTK
func EnglishStopWords() *StopWords {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(englishStopWords))
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return NewStopWords(words)
}

// Contains reports whether word is a stop word. Matching is case-sensitive.
func (s *StopWords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words
func (s *StopWords) Len() int {
	return len(s.words)
}
