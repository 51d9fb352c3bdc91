package utils

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces a word to its dictionary form
type Lemmatizer interface {
	Lemmatize(word string) string
}

// Dictionary looks up the lemma of an inflected form.
// Unknown forms are returned unchanged.
type Dictionary interface {
	Lemma(word string) string
}

//go:embed noun_exceptions.txt
var englishNounExceptions string

// nounSuffixes are the noun detachment rules of WordNet's morphy
var nounSuffixes = [][2]string{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// NounLemmatizer lemmatizes a string as a single noun
type NounLemmatizer struct {
	dict       Dictionary
	exceptions map[string]string
}

// NewNounLemmatizer creates a noun lemmatizer backed by dict and the
// irregular English noun plurals
func NewNounLemmatizer(dict Dictionary) *NounLemmatizer {
	return &NounLemmatizer{
		dict:       dict,
		exceptions: parseNounExceptions(englishNounExceptions),
	}
}

// parseNounExceptions reads "form lemma" lines
func parseNounExceptions(data string) map[string]string {
	exceptions := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 {
			exceptions[fields[0]] = fields[1]
		}
	}
	return exceptions
}

// NewEnglishLemmatizer loads the English dictionary
func NewEnglishLemmatizer() (*NounLemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
	}
	return NewNounLemmatizer(dict), nil
}

// Lemmatize returns the noun lemma of word, or word itself when none applies.
// The whole input is treated as one word: anything containing a space has
// no dictionary entry and passes through unchanged. Irregular plurals are
// resolved before the dictionary.
func (l *NounLemmatizer) Lemmatize(word string) string {
	if word == "" || strings.ContainsRune(word, ' ') {
		return word
	}
	if lemma, ok := l.exceptions[word]; ok {
		return lemma
	}

	lemma := l.dict.Lemma(word)
	if lemma == "" || lemma == word {
		return word
	}
	for _, rule := range nounSuffixes {
		if strings.HasSuffix(word, rule[0]) && strings.TrimSuffix(word, rule[0])+rule[1] == lemma {
			return lemma
		}
	}
	return word
}
