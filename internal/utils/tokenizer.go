package utils

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// Tokenizer splits text into word tokens
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer is a Penn Treebank word tokenizer.
// It follows the English conventions of NLTK's word_tokenize, so
// "cannot" becomes "can" "not" and punctuation is split off.
type WordTokenizer struct {
	treebank *tokenize.TreebankWordTokenizer
}

// NewWordTokenizer creates a new WordTokenizer
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{treebank: tokenize.NewTreebankWordTokenizer()}
}

// Tokenize returns the non-empty tokens of text
func (t *WordTokenizer) Tokenize(text string) []string {
	tokens := t.treebank.Tokenize(strings.TrimSpace(text))

	out := tokens[:0]
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
