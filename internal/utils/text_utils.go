package utils

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// NumberToken replaces every run of digits in the filtered text
const NumberToken = "thisisanumber"

var (
	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)
	digitRun        = regexp.MustCompile(`[0-9]+`)
)

// TextProcessor normalizes email bodies into filtered text
type TextProcessor struct {
	stopWords  *StopWords
	tokenizer  Tokenizer
	lemmatizer Lemmatizer
	logger     *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(stopWords *StopWords, tokenizer Tokenizer, lemmatizer Lemmatizer, logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		stopWords:  stopWords,
		tokenizer:  tokenizer,
		lemmatizer: lemmatizer,
		logger:     logger,
	}
}

// CleanText replaces non-alphanumeric runs with a space and digit runs
// with NumberToken
func (tp *TextProcessor) CleanText(text string) string {
	text = nonAlphanumeric.ReplaceAllLiteralString(text, " ")
	return digitRun.ReplaceAllLiteralString(text, NumberToken)
}

// FilterTokens drops the first token, then drops stop words and lower-cases
// the rest. Stop words are matched before lower-casing.
func (tp *TextProcessor) FilterTokens(tokens []string) []string {
	if len(tokens) <= 1 {
		return nil
	}

	kept := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		if tp.stopWords.Contains(tok) {
			continue
		}
		kept = append(kept, strings.ToLower(tok))
	}
	return kept
}

// Normalize derives the filtered text of an email body.
// The lemmatizer sees the joined string as a whole, not each token.
func (tp *TextProcessor) Normalize(text string) string {
	cleaned := tp.CleanText(text)
	tokens := tp.tokenizer.Tokenize(cleaned)
	kept := tp.FilterTokens(tokens)
	filtered := tp.lemmatizer.Lemmatize(strings.Join(kept, " "))

	if ce := tp.logger.Check(zap.DebugLevel, "Text normalized"); ce != nil {
		ce.Write(
			zap.Int("original_size", len(text)),
			zap.Int("tokens", len(tokens)),
			zap.Int("kept", len(kept)))
	}

	return filtered
}
