// Package sentiment implements the rule-based scoring pipeline:
// normalization, lexical scoring and three-way classification.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/naz445/news-sentiment/internal/lexicon"
)

// Label is the three-way sentiment classification of a headline.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Labels lists all labels in reporting order.
var Labels = []Label{Positive, Neutral, Negative}

// Headline is one extracted news title together with its computed sentiment.
type Headline struct {
	Source     string
	Raw        string
	Normalized string
	Score      int
	Label      Label
}

// Normalize lower-cases s, collapses whitespace runs to single spaces and
// trims the ends. Empty input yields empty output.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Score sums lexicon polarities over the whitespace-delimited tokens of a
// normalized string. Trailing punctuation is stripped from each token.
// Repeated keywords contribute on every occurrence.
func Score(normalized string, lex *lexicon.Lexicon) int {
	score := 0
	for _, tok := range strings.Fields(normalized) {
		tok = strings.TrimRightFunc(tok, unicode.IsPunct)
		score += lex.Polarity(tok)
	}
	return score
}

// Classify maps a score to its label: positive above zero, negative below,
// neutral at exactly zero.
func Classify(score int) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// Analyze runs the normalize → score → classify chain for one raw headline.
func Analyze(lex *lexicon.Lexicon, source, raw string) Headline {
	normalized := Normalize(raw)
	score := Score(normalized, lex)
	return Headline{
		Source:     source,
		Raw:        raw,
		Normalized: normalized,
		Score:      score,
		Label:      Classify(score),
	}
}
