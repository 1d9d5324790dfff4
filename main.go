// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma simulates the three rotor Enigma cipher machine and
// recovers Enigma keys from ciphertext alone using the rotor, ring setting
// and plugboard attack popularised by James Gillogly's "Ciphertext-only
// Cryptanalysis of Enigma" (Cryptologia, 1995).
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}
