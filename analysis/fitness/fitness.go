// Package fitness scores candidate decryptions.  Every scorer answers the
// same question, how much a sequence of letter indices looks like the
// plaintext we are hunting for, and a higher score is always better.  The
// search engine takes a Function as a parameter so that any scorer can
// drive any stage.
package fitness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bgallie/enigma/analysis/ngram"
	"github.com/bgallie/enigma/cryptors"
)

// ErrUnknown is returned by ByName for a scorer it does not know.
var ErrUnknown = errors.New("fitness: unknown function")

// Function scores a decryption given as letter indices.  Implementations
// hold no state that changes between calls, so one value may be shared by
// every goroutine of a search.
type Function interface {
	Score(text []byte) float64
}

// IndexOfCoincidence scores text by the chance that two letters drawn from
// it at random are the same.  It ignores the plugboard's effect on which
// letters appear, which makes it the scorer of choice before the plugboard
// is known.
type IndexOfCoincidence struct{}

// Score implements Function.
func (IndexOfCoincidence) Score(text []byte) float64 {
	var h Histogram
	for _, c := range text {
		h.Add(c)
	}
	return h.IoC()
}

func (IndexOfCoincidence) String() string { return "ioc" }

// Histogram counts letters as they are produced so that the index of
// coincidence of a growing text can be read at any time.  Reset starts a
// new text.
type Histogram struct {
	counts [cryptors.AlphabetSize]int
	n      int
}

// Add counts one letter.
func (h *Histogram) Add(c byte) {
	h.counts[c]++
	h.n++
}

// Reset forgets every letter counted so far.
func (h *Histogram) Reset() {
	*h = Histogram{}
}

// Len returns the number of letters counted.
func (h *Histogram) Len() int {
	return h.n
}

// IoC returns the index of coincidence of the letters counted so far, or 0
// for fewer than two letters.
func (h *Histogram) IoC() float64 {
	if h.n < 2 {
		return 0
	}
	sum := 0
	for _, v := range h.counts {
		sum += v * (v - 1)
	}
	return float64(sum) / float64(h.n*(h.n-1))
}

// Bigram sums the table score of every overlapping letter pair.
type Bigram struct {
	Table *ngram.Table
}

// Score implements Function.
func (b Bigram) Score(text []byte) float64 {
	score := 0.0
	for i := 1; i < len(text); i++ {
		score += b.Table.Lookup2(text[i-1], text[i])
	}
	return score
}

func (Bigram) String() string { return "bigram" }

// Quadgram sums the table score of every overlapping run of four letters.
type Quadgram struct {
	Table *ngram.Table
}

// Score implements Function.
func (q Quadgram) Score(text []byte) float64 {
	score := 0.0
	for i := 3; i < len(text); i++ {
		score += q.Table.Lookup4(text[i-3], text[i-2], text[i-1], text[i])
	}
	return score
}

func (Quadgram) String() string { return "quadgram" }

// KnownPlaintext counts the positions where a decryption agrees with a crib.
// Only the positions both texts cover are compared.
type KnownPlaintext struct {
	crib []byte
}

// NewKnownPlaintext builds a scorer from a crib written as letters.  Case,
// spaces and punctuation are ignored.
func NewKnownPlaintext(crib string) (KnownPlaintext, error) {
	norm := cryptors.Normalize(crib)
	if norm == "" {
		return KnownPlaintext{}, fmt.Errorf("fitness: crib %q has no letters", crib)
	}
	return KnownPlaintextIndices(cryptors.MustIndices(norm)), nil
}

// KnownPlaintextIndices builds a scorer from a crib already in index form.
func KnownPlaintextIndices(crib []byte) KnownPlaintext {
	return KnownPlaintext{crib: append([]byte(nil), crib...)}
}

// Len returns the length of the crib.
func (k KnownPlaintext) Len() int {
	return len(k.crib)
}

// Score implements Function.
func (k KnownPlaintext) Score(text []byte) float64 {
	n := len(text)
	if len(k.crib) < n {
		n = len(k.crib)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if text[i] == k.crib[i] {
			matches++
		}
	}
	return float64(matches)
}

func (KnownPlaintext) String() string { return "known" }

// Names lists the scorers ByName understands.
var Names = []string{"ioc", "bigram", "quadgram", "known"}

// ByName returns the scorer called name.  Bigram and quadgram scorers use
// tables, which default to the built in English tables when nil.  The known
// plaintext scorer needs a crib.
func ByName(name string, bigrams, quadgrams *ngram.Table, crib string) (Function, error) {
	var err error
	switch strings.ToLower(name) {
	case "ioc":
		return IndexOfCoincidence{}, nil
	case "bigram":
		if bigrams == nil {
			if bigrams, err = ngram.English(2); err != nil {
				return nil, err
			}
		}
		if bigrams.N() != 2 {
			return nil, fmt.Errorf("fitness: bigram scorer given a %d-gram table", bigrams.N())
		}
		return Bigram{Table: bigrams}, nil
	case "quadgram":
		if quadgrams == nil {
			if quadgrams, err = ngram.English(4); err != nil {
				return nil, err
			}
		}
		if quadgrams.N() != 4 {
			return nil, fmt.Errorf("fitness: quadgram scorer given a %d-gram table", quadgrams.N())
		}
		return Quadgram{Table: quadgrams}, nil
	case "known":
		return NewKnownPlaintext(crib)
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknown, name, strings.Join(Names, ", "))
}
