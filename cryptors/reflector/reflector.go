// Package reflector provides the fixed reflectors (Umkehrwalzen) of the
// three rotor Enigma.
package reflector

import (
	"errors"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
)

// ErrUnknownReflector is returned by Lookup for names other than A, B, C or I.
var ErrUnknownReflector = errors.New("reflector: unknown reflector")

// Reflector is an involutive wiring with no moving parts.
type Reflector struct {
	Name   byte
	wiring [cryptors.AlphabetSize]byte
}

func newReflector(name byte, wiring string) Reflector {
	r := Reflector{Name: name}
	for i := range r.wiring {
		r.wiring[i] = wiring[i] - 'A'
	}
	if !cryptors.IsInvolution(&r) {
		panic(fmt.Sprintf("reflector %c: wiring %s is not an involution", name, wiring))
	}
	return r
}

var (
	// A is the pre-war Umkehrwalze A.
	A = newReflector('A', "EJMZALYXVBWFCRQUONTSPIKHGD")
	// B is Umkehrwalze B, the reflector used for most wartime traffic.
	B = newReflector('B', "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	// C is Umkehrwalze C.
	C = newReflector('C', "FVPJIAOYEDRZXWGCTKUQSBNMHL")
	// Identity sends every letter back unchanged.
	Identity = newReflector('I', cryptors.Alphabet)
)

// Lookup returns the reflector with the given name.
func Lookup(name byte) (*Reflector, error) {
	switch name {
	case 'A', 'a':
		return &A, nil
	case 'B', 'b':
		return &B, nil
	case 'C', 'c':
		return &C, nil
	case 'I', 'i':
		return &Identity, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
}

// Forward reflects c.
func (r *Reflector) Forward(c byte) byte {
	return r.wiring[c]
}

// Wiring returns the wiring as letters.
func (r *Reflector) Wiring() string {
	return cryptors.Letters(r.wiring[:])
}
