// Package plugboard implements the Enigma plugboard (Steckerbrett), a static
// permutation that swaps up to 13 pairs of letters before and after the
// rotors.
package plugboard

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// MaxPlugs is the number of pairs that exhausts the alphabet.
const MaxPlugs = cryptors.AlphabetSize / 2

var (
	// ErrAlreadyPlugged is returned when a letter would be used by two plugs.
	ErrAlreadyPlugged = errors.New("plugboard: letter already plugged")
	// ErrInvalidPair is returned for a pair that is not two different letters.
	ErrInvalidPair = errors.New("plugboard: invalid pair")
	// ErrTooManyPlugs is returned when more than MaxPlugs pairs are asked for.
	ErrTooManyPlugs = errors.New("plugboard: too many plugs")
)

// Plugboard is a value type; copying one copies its wiring.  The zero value
// has no plugs and passes every letter through unchanged.  A Plugboard can
// only be built through New, Parse, With and Random, which keep it an
// involution.
type Plugboard struct {
	wiring  [cryptors.AlphabetSize]byte
	plugged [(cryptors.AlphabetSize + 7) / 8]byte
	count   int
}

// New builds a plugboard from pairs of letters such as "AC", "FG".
func New(pairs ...string) (Plugboard, error) {
	var p Plugboard
	for _, pair := range pairs {
		if len(pair) != 2 {
			return Plugboard{}, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		a, err := cryptors.Index(upper(pair[0]))
		if err != nil {
			return Plugboard{}, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		b, err := cryptors.Index(upper(pair[1]))
		if err != nil {
			return Plugboard{}, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		if p, err = p.With(a, b); err != nil {
			return Plugboard{}, err
		}
	}
	return p, nil
}

// Parse builds a plugboard from a list of pairs separated by spaces or
// commas, e.g. "AC FG JY LW".
func Parse(s string) (Plugboard, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	return New(fields...)
}

// Random draws k disjoint pairs uniformly at random.
func Random(k int, rnd *rand.Rand) (Plugboard, error) {
	if k < 0 || k > MaxPlugs {
		return Plugboard{}, fmt.Errorf("%w: %d", ErrTooManyPlugs, k)
	}
	var p Plugboard
	perm := rnd.Perm(cryptors.AlphabetSize)
	for i := 0; i < k; i++ {
		var err error
		if p, err = p.With(byte(perm[2*i]), byte(perm[2*i+1])); err != nil {
			return Plugboard{}, err
		}
	}
	return p, nil
}

// With returns a copy of p with a and b (letter indices) swapped.  p itself
// is not changed.
func (p Plugboard) With(a, b byte) (Plugboard, error) {
	if a >= cryptors.AlphabetSize || b >= cryptors.AlphabetSize || a == b {
		return p, fmt.Errorf("%w: %d-%d", ErrInvalidPair, a, b)
	}
	if p.IsPlugged(a) {
		return p, fmt.Errorf("%w: %c", ErrAlreadyPlugged, cryptors.Letter(a))
	}
	if p.IsPlugged(b) {
		return p, fmt.Errorf("%w: %c", ErrAlreadyPlugged, cryptors.Letter(b))
	}
	if p.count == 0 {
		for i := range p.wiring {
			p.wiring[i] = byte(i)
		}
	}
	p.wiring[a], p.wiring[b] = b, a
	bitops.SetBit(p.plugged[:], uint(a))
	bitops.SetBit(p.plugged[:], uint(b))
	p.count++
	return p, nil
}

// Forward swaps c if it is plugged.  Applied twice it returns c.
func (p *Plugboard) Forward(c byte) byte {
	if p.count == 0 {
		return c
	}
	return p.wiring[c]
}

// Apply runs every letter of text through the plugboard in place.
func (p *Plugboard) Apply(text []byte) {
	if p.count == 0 {
		return
	}
	for i, c := range text {
		text[i] = p.wiring[c]
	}
}

// IsPlugged reports whether letter c is part of a pair.
func (p *Plugboard) IsPlugged(c byte) bool {
	return bitops.GetBit(p.plugged[:], uint(c))
}

// Len returns the number of pairs.
func (p *Plugboard) Len() int {
	return p.count
}

// Free returns the number of letters not yet plugged.
func (p *Plugboard) Free() int {
	return cryptors.AlphabetSize - bitops.Count(p.plugged[:])
}

// Pairs returns the pairs ordered by their first letter.
func (p *Plugboard) Pairs() [][2]byte {
	pairs := make([][2]byte, 0, p.count)
	for i := byte(0); i < cryptors.AlphabetSize; i++ {
		if p.IsPlugged(i) && p.wiring[i] > i {
			pairs = append(pairs, [2]byte{i, p.wiring[i]})
		}
	}
	return pairs
}

// String lists the pairs, e.g. "AC FG JY LW".
func (p Plugboard) String() string {
	var sb strings.Builder
	for i, pair := range p.Pairs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cryptors.Letter(pair[0]))
		sb.WriteByte(cryptors.Letter(pair[1]))
	}
	return sb.String()
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
