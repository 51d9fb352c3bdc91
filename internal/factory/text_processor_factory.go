package factory

import (
	"github.com/mikey/spam-corpus-prep/internal/utils"
	"go.uber.org/zap"
)

// TextProcessorFactory creates text processors
type TextProcessorFactory struct {
	logger *zap.Logger
}

// NewTextProcessorFactory creates a new TextProcessorFactory
func NewTextProcessorFactory(logger *zap.Logger) *TextProcessorFactory {
	return &TextProcessorFactory{
		logger: logger,
	}
}

// CreateTextProcessor creates a TextProcessor with the English stop words,
// the Treebank tokenizer and the English noun lemmatizer
func (f *TextProcessorFactory) CreateTextProcessor() (*utils.TextProcessor, error) {
	lemmatizer, err := utils.NewEnglishLemmatizer()
	if err != nil {
		return nil, err
	}

	stopWords := utils.EnglishStopWords()
	f.logger.Debug("Loaded text resources", zap.Int("stop_words", stopWords.Len()))

	return utils.NewTextProcessor(stopWords, utils.NewWordTokenizer(), lemmatizer, f.logger), nil
}
