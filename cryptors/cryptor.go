// Package cryptors holds the pieces shared by every stage of the Enigma
// machine: the 26 letter alphabet, its conversion to and from the indices
// used internally, and the widened tables that let the hot paths avoid the
// modulo operator.
package cryptors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// AlphabetSize is the number of letters the machine enciphers.
	AlphabetSize = 26
	// WideSize is the length of the triple-length lookup tables.  An index
	// into one of them is the sum of a letter and up to two offsets.
	WideSize = 3 * AlphabetSize
	// Alphabet lists the letters in index order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	// ErrInvalidLetter is returned when text contains anything but A-Z.
	ErrInvalidLetter = errors.New("cryptors: letter outside A-Z")

	// Mod26 reduces any value in [0, WideSize) modulo 26.
	Mod26 [WideSize]byte
)

func init() {
	for i := range Mod26 {
		Mod26[i] = byte(i % AlphabetSize)
	}
}

// Crypter is a single substitution stage of the machine.
type Crypter interface {
	Forward(c byte) byte
}

// IsInvolution reports whether applying c twice returns every letter
// unchanged.  Reflectors and plugboards must satisfy this.
func IsInvolution(c Crypter) bool {
	for i := byte(0); i < AlphabetSize; i++ {
		if c.Forward(c.Forward(i)) != i {
			return false
		}
	}
	return true
}

// Index converts the letter r to its index 0-25.
func Index(r byte) (byte, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
	}
	return r - 'A', nil
}

// Letter converts the index c back to its letter.
func Letter(c byte) byte {
	return Alphabet[c%AlphabetSize]
}

// Indices converts text to letter indices.  Text must already be upper case
// A-Z with no spaces or punctuation; see Normalize.
func Indices(text string) ([]byte, error) {
	idx := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c, err := Index(text[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		idx[i] = c
	}
	return idx, nil
}

// CheckIndices returns an error if any of idx is not a letter index 0-25.
// The machine's tables are only defined for letter indices, so text built
// outside Indices must pass this before it is enciphered.
func CheckIndices(idx []byte) error {
	for i, c := range idx {
		if c >= AlphabetSize {
			return fmt.Errorf("position %d: %w: index %d", i, ErrInvalidLetter, c)
		}
	}
	return nil
}

// MustIndices is like Indices but panics on bad input.  It is meant for
// literals in tests and tables.
func MustIndices(text string) []byte {
	idx, err := Indices(text)
	if err != nil {
		panic(err)
	}
	return idx
}

// Letters converts letter indices back to text.
func Letters(idx []byte) string {
	var sb strings.Builder
	sb.Grow(len(idx))
	for _, c := range idx {
		sb.WriteByte(Letter(c))
	}
	return sb.String()
}

// Normalize upper cases text and removes everything that is not a letter,
// the way an operator would prepare a message for keying.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
