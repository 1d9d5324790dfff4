package enigma

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Sweeper deciphers one text under every starting position of a fixed rotor
// order, ring setting, plugboard and reflector.  The passes through the
// right and middle rotors are shared by every position that agrees on those
// rotors, which makes a full 26x26x26 sweep several times cheaper than
// building a Machine per position.  A Sweeper is not safe for concurrent
// use; give each goroutine its own.
type Sweeper struct {
	key    Key
	rotors [3]rotor.Rotor

	// combined[o] is left rotor, reflector, left rotor with the left rotor
	// at offset o.
	combined [cryptors.AlphabetSize][cryptors.AlphabetSize]byte

	in         []byte
	rightCarry []bool
	rightOff   []byte
	afterRight []byte
	middleOff  []byte
	leftTurn   []bool
	afterMid   []byte
	out        []byte
}

// NewSweeper prepares a sweep for key.  The key's positions are ignored.
func NewSweeper(key Key) (*Sweeper, error) {
	key.Positions = [3]int{}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	s := &Sweeper{key: key}
	for i, id := range key.Rotors {
		spec, _ := rotor.Lookup(id)
		s.rotors[i] = rotor.New(spec, 0, key.Rings[i])
	}
	refl, _ := reflector.Lookup(key.ReflectorName())
	left := &s.rotors[Left]
	for o := 0; o < cryptors.AlphabetSize; o++ {
		for c := 0; c < cryptors.AlphabetSize; c++ {
			s.combined[o][c] = left.BackwardAt(refl.Forward(left.ForwardAt(byte(c), o)), o)
		}
	}
	return s, nil
}

// Key returns the key being swept, with zero positions.
func (s *Sweeper) Key() Key {
	return s.key
}

func (s *Sweeper) grow(n int) {
	if cap(s.in) < n {
		s.in = make([]byte, n)
		s.rightCarry = make([]bool, n)
		s.rightOff = make([]byte, n)
		s.afterRight = make([]byte, n)
		s.middleOff = make([]byte, n)
		s.leftTurn = make([]bool, n)
		s.afterMid = make([]byte, n)
		s.out = make([]byte, n)
	}
	s.in = s.in[:n]
	s.rightCarry = s.rightCarry[:n]
	s.rightOff = s.rightOff[:n]
	s.afterRight = s.afterRight[:n]
	s.middleOff = s.middleOff[:n]
	s.leftTurn = s.leftTurn[:n]
	s.afterMid = s.afterMid[:n]
	s.out = s.out[:n]
}

// Sweep deciphers text with the right rotor starting at rightPos and every
// combination of middle and left starting positions, middle outermost.  For
// each it calls visit with the positions (left, middle, right) and the
// deciphered text.  The text slice is reused between calls; visit must copy
// it to keep it.
func (s *Sweeper) Sweep(text []byte, rightPos int, visit func(positions [3]int, plaintext []byte)) {
	n := len(text)
	s.grow(n)
	left, middle, right := &s.rotors[Left], &s.rotors[Middle], &s.rotors[Right]
	pb := &s.key.Plugboard

	copy(s.in, text)
	pb.Apply(s.in)

	rOff := offsetOf(rightPos, right.Ring())
	for t := 0; t < n; t++ {
		s.rightCarry[t] = right.NotchAt(rOff)
		rOff = next(rOff)
		s.rightOff[t] = byte(rOff)
		s.afterRight[t] = right.ForwardAt(s.in[t], rOff)
	}

	for pm := 0; pm < cryptors.AlphabetSize; pm++ {
		mOff := offsetOf(pm, middle.Ring())
		for t := 0; t < n; t++ {
			turn := false
			if middle.NotchAt(mOff) {
				mOff = next(mOff)
				turn = true
			} else if s.rightCarry[t] {
				mOff = next(mOff)
			}
			s.middleOff[t] = byte(mOff)
			s.leftTurn[t] = turn
			s.afterMid[t] = middle.ForwardAt(s.afterRight[t], mOff)
		}

		for pl := 0; pl < cryptors.AlphabetSize; pl++ {
			lOff := offsetOf(pl, left.Ring())
			for t := 0; t < n; t++ {
				if s.leftTurn[t] {
					lOff = next(lOff)
				}
				c := s.combined[lOff][s.afterMid[t]]
				c = middle.BackwardAt(c, int(s.middleOff[t]))
				c = right.BackwardAt(c, int(s.rightOff[t]))
				s.out[t] = pb.Forward(c)
			}
			visit([3]int{pl, pm, rightPos}, s.out)
		}
	}
}

func offsetOf(position, ring int) int {
	return (position + cryptors.AlphabetSize - ring) % cryptors.AlphabetSize
}
