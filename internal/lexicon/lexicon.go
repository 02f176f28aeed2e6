// Package lexicon holds the keyword → polarity table that drives scoring.
// The table is built once at startup and never mutated afterwards.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Built-in keyword lists, used when no lexicon file is configured.
var defaultPositive = []string{
	"success", "growth", "improve", "recovery", "record",
	"gain", "boost", "strong", "optimistic", "progress",
	"win", "peace", "stability", "support", "benefit",
	"hope", "upgrade", "rise",
}

var defaultNegative = []string{
	"crisis", "war", "conflict", "inflation", "recession",
	"loss", "drop", "decline", "strike", "attack",
	"risk", "fear", "collapse", "tension", "violence",
	"negative", "downturn", "cuts",
}

// Lexicon maps lowercase keywords to a signed unit polarity (+1 or -1).
type Lexicon struct {
	polarity map[string]int
}

// fileConfig is the YAML lexicon structure:
//
//	positive:
//	  - growth
//	negative:
//	  - crisis
type fileConfig struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// New builds a lexicon from positive and negative keyword lists. Keywords
// are lower-cased and trimmed; a word listed on both sides counts as
// negative.
func New(positive, negative []string) *Lexicon {
	m := make(map[string]int, len(positive)+len(negative))
	for _, w := range positive {
		m[strings.ToLower(strings.TrimSpace(w))] = 1
	}
	for _, w := range negative {
		m[strings.ToLower(strings.TrimSpace(w))] = -1
	}
	delete(m, "")
	return &Lexicon{polarity: m}
}

// Default returns the built-in keyword table.
func Default() *Lexicon {
	return New(defaultPositive, defaultNegative)
}

// Load reads a lexicon from a YAML file with positive/negative keyword lists.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg fileConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode lexicon %s: %w", path, err)
	}
	if len(cfg.Positive) == 0 && len(cfg.Negative) == 0 {
		return nil, fmt.Errorf("lexicon %s defines no keywords", path)
	}
	return New(cfg.Positive, cfg.Negative), nil
}

// Polarity returns +1 or -1 for a known keyword and 0 for anything else.
func (l *Lexicon) Polarity(token string) int {
	return l.polarity[token]
}

// Size returns the number of distinct keywords in the table.
func (l *Lexicon) Size() int {
	return len(l.polarity)
}
