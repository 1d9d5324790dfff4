// Package bitops manipulates bit sets packed into byte slices.  Bit n lives in
// byte n/8 at position n%8.
package bitops

import "math/bits"

// SetBit turns bit on and returns ary for chaining.
func SetBit(ary []byte, bit uint) []byte {
	ary[bit>>3] |= 1 << (bit & 7)
	return ary
}

// GetBit reports whether bit is on.
func GetBit(ary []byte, bit uint) bool {
	return ary[bit>>3]&(1<<(bit&7)) != 0
}

// Count returns the number of bits that are on.
func Count(ary []byte) int {
	n := 0
	for _, b := range ary {
		n += bits.OnesCount8(b)
	}
	return n
}
