// Package ngram holds read-only tables of n-gram log probabilities used to
// judge how much a candidate decryption looks like natural language.
package ngram

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/bgallie/enigma/cryptors"
)

// MaxOrder is the longest n-gram a Table can hold.
const MaxOrder = 4

var (
	// ErrOrder is returned for an n-gram length outside 1-MaxOrder.
	ErrOrder = errors.New("ngram: unsupported order")
	// ErrMalformed is returned for a table line that cannot be parsed.
	ErrMalformed = errors.New("ngram: malformed line")
	// ErrEmpty is returned when a table would be built from no n-grams.
	ErrEmpty = errors.New("ngram: no n-grams")
)

//go:embed english.txt
var englishCorpus string

// Table maps every n-gram, written as letter indices, to the base 10 log of
// its probability.  N-grams never seen get a floor well below any observed
// n-gram.  A Table is never modified after it is built and may be shared
// between goroutines.
type Table struct {
	n      int
	scores []float64
	floor  float64
}

// Parse reads a table in the common published format: one n-gram and its
// count per line, separated by white space ("TION 13168375").  Blank lines
// and lines starting with '#' are skipped.  Counts for an n-gram that
// appears more than once are added together.
func Parse(r io.Reader, n int) (*Table, error) {
	size, err := tableSize(n)
	if err != nil {
		return nil, err
	}
	counts := make([]float64, size)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 || len(fields[0]) != n {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformed, line, text)
		}
		idx, err := cryptors.Indices(strings.ToUpper(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMalformed, line, err)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w %d: bad count %q", ErrMalformed, line, fields[1])
		}
		counts[pack(idx)] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ngram: reading table: %w", err)
	}
	return fromCounts(n, counts)
}

// FromText builds a table by counting the overlapping n-grams of text,
// given as letter indices.
func FromText(n int, text []byte) (*Table, error) {
	size, err := tableSize(n)
	if err != nil {
		return nil, err
	}
	counts := make([]float64, size)
	for i := 0; i+n <= len(text); i++ {
		counts[pack(text[i:i+n])]++
	}
	return fromCounts(n, counts)
}

var english struct {
	once   [MaxOrder + 1]sync.Once
	tables [MaxOrder + 1]*Table
	errs   [MaxOrder + 1]error
}

// English returns a table trained on a built in sample of English prose.
// The table for each order is built once and shared.
func English(n int) (*Table, error) {
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("%w: %d", ErrOrder, n)
	}
	english.once[n].Do(func() {
		text := cryptors.MustIndices(cryptors.Normalize(englishCorpus))
		english.tables[n], english.errs[n] = FromText(n, text)
	})
	return english.tables[n], english.errs[n]
}

func tableSize(n int) (int, error) {
	if n < 1 || n > MaxOrder {
		return 0, fmt.Errorf("%w: %d", ErrOrder, n)
	}
	size := 1
	for i := 0; i < n; i++ {
		size *= cryptors.AlphabetSize
	}
	return size, nil
}

func pack(idx []byte) int {
	v := 0
	for _, c := range idx {
		v = v*cryptors.AlphabetSize + int(c)
	}
	return v
}

func fromCounts(n int, counts []float64) (*Table, error) {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrEmpty
	}
	t := &Table{
		n:      n,
		scores: make([]float64, len(counts)),
		floor:  math.Log10(0.01 / total),
	}
	for i, c := range counts {
		if c > 0 {
			t.scores[i] = math.Log10(c / total)
		} else {
			t.scores[i] = t.floor
		}
	}
	return t, nil
}

// N returns the n-gram length of the table.
func (t *Table) N() int {
	return t.n
}

// Floor returns the score given to n-grams that were never seen.
func (t *Table) Floor() float64 {
	return t.floor
}

// Lookup returns the score of one n-gram.  len(gram) must be N.
func (t *Table) Lookup(gram []byte) float64 {
	return t.scores[pack(gram)]
}

// Lookup2 is Lookup for a bigram table.
func (t *Table) Lookup2(a, b byte) float64 {
	return t.scores[int(a)*26+int(b)]
}

// Lookup4 is Lookup for a quadgram table.
func (t *Table) Lookup4(a, b, c, d byte) float64 {
	return t.scores[((int(a)*26+int(b))*26+int(c))*26+int(d)]
}

// Score sums the scores of every overlapping n-gram of text.  Text shorter
// than N scores 0.
func (t *Table) Score(text []byte) float64 {
	if len(text) < t.n {
		return 0
	}
	high := len(t.scores) / cryptors.AlphabetSize
	idx := pack(text[:t.n-1])
	score := 0.0
	for _, c := range text[t.n-1:] {
		idx = idx%high*cryptors.AlphabetSize + int(c)
		score += t.scores[idx]
	}
	return score
}
