// rotor
package rotor

import (
	"errors"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
)

// noNotch marks an unused second notch.
const noNotch = -1

// ErrUnknownRotor is returned by Lookup for ids outside the catalog.
var ErrUnknownRotor = errors.New("rotor: unknown rotor")

// Spec is the fixed wiring of one rotor type.  Specs are built once at
// start up and never change.
type Spec struct {
	ID       int
	Name     string
	forward  [cryptors.WideSize]byte
	backward [cryptors.WideSize]byte
	notches  [2]int
}

func newSpec(id int, name, wiring, notches string) Spec {
	s := Spec{ID: id, Name: name, notches: [2]int{noNotch, noNotch}}
	for i := 0; i < cryptors.AlphabetSize; i++ {
		c := wiring[i] - 'A'
		s.forward[i] = c
		s.backward[c] = byte(i)
	}
	// Repeat the table twice more so that a letter plus an offset never
	// needs reducing before the lookup.
	for i := cryptors.AlphabetSize; i < cryptors.WideSize; i++ {
		s.forward[i] = s.forward[i-cryptors.AlphabetSize]
		s.backward[i] = s.backward[i-cryptors.AlphabetSize]
	}
	for i := 0; i < len(notches); i++ {
		s.notches[i] = int(notches[i] - 'A')
	}
	return s
}

// Wiring returns the forward wiring as letters.
func (s *Spec) Wiring() string {
	return cryptors.Letters(s.forward[:cryptors.AlphabetSize])
}

// Notches returns the absolute notch positions, independent of any ring
// setting.
func (s *Spec) Notches() []int {
	if s.notches[1] == noNotch {
		return []int{s.notches[0]}
	}
	return []int{s.notches[0], s.notches[1]}
}

// Rotor is a Spec mounted in the machine with a ring setting and a current
// rotational offset.  The zero value is not usable; use New.
type Rotor struct {
	spec   *Spec
	ring   int
	offset int
	notch  [2]int // notch positions adjusted for the ring setting
}

// New mounts spec with its window showing position and the given ring
// setting.  Both are 0-25.
func New(spec *Spec, position, ring int) Rotor {
	r := Rotor{spec: spec, ring: ring, notch: [2]int{noNotch, noNotch}}
	for i, n := range spec.notches {
		if n != noNotch {
			r.notch[i] = (n + cryptors.AlphabetSize - ring) % cryptors.AlphabetSize
		}
	}
	r.SetPosition(position)
	return r
}

// ID returns the catalog id of the rotor.
func (r *Rotor) ID() int {
	return r.spec.ID
}

// Ring returns the ring setting.
func (r *Rotor) Ring() int {
	return r.ring
}

// Offset returns the current rotational offset, the position less the ring
// setting.
func (r *Rotor) Offset() int {
	return r.offset
}

// Position returns the letter index showing in the window.
func (r *Rotor) Position() int {
	return (r.offset + r.ring) % cryptors.AlphabetSize
}

// SetPosition turns the rotor so that position shows in the window.
func (r *Rotor) SetPosition(position int) {
	r.offset = (position + cryptors.AlphabetSize - r.ring) % cryptors.AlphabetSize
}

// SetOffset turns the rotor to the given rotational offset.
func (r *Rotor) SetOffset(offset int) {
	r.offset = offset % cryptors.AlphabetSize
}

// Forward passes c through the rotor towards the reflector.
func (r *Rotor) Forward(c byte) byte {
	return r.ForwardAt(c, r.offset)
}

// Backward passes c through the rotor on the way back from the reflector.
func (r *Rotor) Backward(c byte) byte {
	return r.BackwardAt(c, r.offset)
}

// ForwardAt is Forward as if the rotor stood at offset.
func (r *Rotor) ForwardAt(c byte, offset int) byte {
	return cryptors.Mod26[int(r.spec.forward[int(c)+offset])+cryptors.AlphabetSize-offset]
}

// BackwardAt is Backward as if the rotor stood at offset.
func (r *Rotor) BackwardAt(c byte, offset int) byte {
	return cryptors.Mod26[int(r.spec.backward[int(c)+offset])+cryptors.AlphabetSize-offset]
}

// AtNotch reports whether the rotor sits at one of its notches, i.e.
// whether it will carry the next rotor along on the next step.
func (r *Rotor) AtNotch() bool {
	return r.NotchAt(r.offset)
}

// NotchAt reports whether offset is a notch position for this rotor.
func (r *Rotor) NotchAt(offset int) bool {
	return offset == r.notch[0] || offset == r.notch[1]
}

// Turnover advances the rotor by one position.
func (r *Rotor) Turnover() {
	if r.offset++; r.offset >= cryptors.AlphabetSize {
		r.offset = 0
	}
}

func (r *Rotor) String() string {
	return fmt.Sprintf("%s %c/%02d", r.spec.Name, cryptors.Letter(byte(r.Position())), r.ring+1)
}
