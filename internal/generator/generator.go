// Package generator builds typing text sequences.
package generator

import (
	"errors"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// ErrEmptyWordList is returned when a generator is built without words.
var ErrEmptyWordList = errors.New("word list is empty")

// Generator produces randomized typing text from a fixed word list.
type Generator struct {
	rnd      *rand.Rand
	words    []string
	capsPct  float64
	punctPct float64
	punctSet []rune
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the word sequence deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithCaps sets the probability of capitalizing the first letter of a word.
func WithCaps(pct float64) Option {
	return func(g *Generator) {
		g.capsPct = pct
	}
}

// WithPunct sets the probability of appending a punctuation rune from set.
func WithPunct(pct float64, set string) Option {
	return func(g *Generator) {
		g.punctPct = pct
		g.punctSet = []rune(set)
	}
}

// New returns a Generator over words seeded with the current time.
func New(words []string, opts ...Option) (*Generator, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	g := &Generator{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		words: append([]string(nil), words...),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate selects count words uniformly with replacement and joins them
// with single spaces.
func (g *Generator) Generate(count int) string {
	if count <= 0 {
		return ""
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := g.words[g.rnd.Intn(len(g.words))]
		word = applyCaps(g.rnd, word, g.capsPct)
		word = applyPunct(g.rnd, word, g.punctPct, g.punctSet)
		result = append(result, word)
	}
	return strings.Join(result, " ")
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
