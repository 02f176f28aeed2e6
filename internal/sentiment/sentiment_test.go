package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naz445/news-sentiment/internal/lexicon"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New(
		[]string{"grows"},
		[]string{"fall", "crisis"},
	)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"mixed case", "Economy Grows", "economy grows"},
		{"extra whitespace", "economy   grows", "economy grows"},
		{"leading and trailing", "  Markets Fall \t", "markets fall"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, strings.ToLower(got), got)
			assert.NotContains(t, got, "  ")
		})
	}
}

func TestScoreCountsEachOccurrence(t *testing.T) {
	lex := lexicon.New([]string{"gain"}, []string{"loss"})

	assert.Equal(t, 2, Score("gain after gain", lex))
	assert.Equal(t, -2, Score("loss upon loss", lex))
	assert.Equal(t, 0, Score("gain and loss", lex))
	assert.Equal(t, 0, Score("", lex))
	assert.Equal(t, 0, Score("nothing notable here", lex))
}

func TestScoreStripsTrailingPunctuation(t *testing.T) {
	lex := lexicon.New([]string{"gain"}, []string{"crisis"})

	assert.Equal(t, 1, Score("markets expect gain.", lex))
	assert.Equal(t, -1, Score("crisis!", lex))
	assert.Equal(t, -1, Score("crisis, again", lex))
}

func TestScoreIsPositiveMinusNegative(t *testing.T) {
	lex := lexicon.New([]string{"up"}, []string{"down"})

	// k positive occurrences and m negative occurrences score k - m.
	assert.Equal(t, 3-1, Score("up up up down", lex))
	assert.Equal(t, 1-2, Score("up down down", lex))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Neutral, Classify(0))
	for _, x := range []int{1, 2, 5, 100} {
		assert.Equal(t, Positive, Classify(x))
		assert.Equal(t, Negative, Classify(-x))
	}
}

func TestAnalyzeNeutralHeadline(t *testing.T) {
	h := Analyze(testLexicon(), "BBC News", "Economy Grows Despite Crisis")

	assert.Equal(t, "economy grows despite crisis", h.Normalized)
	assert.Equal(t, 0, h.Score)
	assert.Equal(t, Neutral, h.Label)
	assert.Equal(t, "BBC News", h.Source)
	assert.Equal(t, "Economy Grows Despite Crisis", h.Raw)
}

func TestAnalyzeNegativeHeadline(t *testing.T) {
	h := Analyze(testLexicon(), "BBC News", "Markets Fall Sharply")

	assert.Equal(t, -1, h.Score)
	assert.Equal(t, Negative, h.Label)
}
