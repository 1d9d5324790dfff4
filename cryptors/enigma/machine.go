// Package enigma composes rotors, a reflector and a plugboard into the three
// rotor Enigma cipher machine.
package enigma

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Machine is an Enigma set up with a key.  Enciphering advances the rotors,
// so a Machine must be Reset (or a new one built) to process the same text
// again from the same key.  A Machine is not safe for concurrent use.
type Machine struct {
	key       Key
	rotors    [3]rotor.Rotor
	reflector *reflector.Reflector
	plugboard plugboard.Plugboard

	// The left rotor rarely turns, so the left rotor, the reflector and the
	// left rotor again are folded into one table.
	combined [cryptors.AlphabetSize]byte

	sched schedule
}

// New builds a machine for key.
func New(key Key) (*Machine, error) {
	m := new(Machine)
	if err := m.Load(key); err != nil {
		return nil, err
	}
	return m, nil
}

// Load re-keys m.  On error m is left unchanged.
func (m *Machine) Load(key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	refl, _ := reflector.Lookup(key.ReflectorName())
	for i, id := range key.Rotors {
		spec, _ := rotor.Lookup(id)
		m.rotors[i] = rotor.New(spec, key.Positions[i], key.Rings[i])
	}
	m.key = key
	m.reflector = refl
	m.plugboard = key.Plugboard
	m.updateCombined()
	return nil
}

// Key returns the key m was loaded with.
func (m *Machine) Key() Key {
	return m.key
}

// Reset returns the rotors to the key's starting positions.
func (m *Machine) Reset() {
	for i := range m.rotors {
		m.rotors[i].SetPosition(m.key.Positions[i])
	}
	m.updateCombined()
}

// Positions returns the letters showing in the windows, left to right.
func (m *Machine) Positions() [3]int {
	return [3]int{m.rotors[Left].Position(), m.rotors[Middle].Position(), m.rotors[Right].Position()}
}

// Offsets returns the rotational offsets (position less ring setting).
func (m *Machine) Offsets() [3]int {
	return [3]int{m.rotors[Left].Offset(), m.rotors[Middle].Offset(), m.rotors[Right].Offset()}
}

func (m *Machine) updateCombined() {
	left := &m.rotors[Left]
	for i := range m.combined {
		m.combined[i] = left.Backward(m.reflector.Forward(left.Forward(byte(i))))
	}
}

// Step advances the rotors as a key press does, before the letter is
// enciphered.  A middle rotor sitting at its notch steps itself and the left
// rotor (the double step); otherwise the right rotor at its notch carries
// the middle rotor.  The right rotor always steps.
func (m *Machine) Step() {
	left, middle, right := &m.rotors[Left], &m.rotors[Middle], &m.rotors[Right]
	if middle.AtNotch() {
		middle.Turnover()
		left.Turnover()
		m.updateCombined()
	} else if right.AtNotch() {
		middle.Turnover()
	}
	right.Turnover()
}

// EncryptLetter steps the rotors and enciphers the letter index c.
func (m *Machine) EncryptLetter(c byte) byte {
	m.Step()
	middle, right := &m.rotors[Middle], &m.rotors[Right]
	c = m.plugboard.Forward(c)
	c = right.Forward(c)
	c = middle.Forward(c)
	c = m.combined[c]
	c = middle.Backward(c)
	c = right.Backward(c)
	return m.plugboard.Forward(c)
}

// Encrypt enciphers src into dst one letter at a time.  dst must be at least
// as long as src and may be src itself.  Decryption is the same operation.
func (m *Machine) Encrypt(dst, src []byte) {
	for i, c := range src {
		dst[i] = m.EncryptLetter(c)
	}
}

// Encrypt enciphers text (letters A-Z) with a machine freshly set to key.
// Because the machine is self-inverse it also decrypts.
func Encrypt(text string, key Key) (string, error) {
	idx, err := cryptors.Indices(text)
	if err != nil {
		return "", fmt.Errorf("enigma: %w", err)
	}
	m, err := New(key)
	if err != nil {
		return "", err
	}
	m.Encrypt(idx, idx)
	return cryptors.Letters(idx), nil
}
