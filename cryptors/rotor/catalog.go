package rotor

import (
	"fmt"
	"strconv"
	"strings"
)

// Catalog size: the identity rotor plus rotors I to VIII.
const catalogSize = 9

var catalog = [catalogSize]Spec{
	newSpec(0, "identity", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "A"),
	newSpec(1, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"),
	newSpec(2, "II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"),
	newSpec(3, "III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"),
	newSpec(4, "IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"),
	newSpec(5, "V", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z"),
	newSpec(6, "VI", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM"),
	newSpec(7, "VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"),
	newSpec(8, "VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"),
}

// MaxID is the largest rotor id in the catalog.
const MaxID = catalogSize - 1

// Lookup returns the wiring for rotor id; 0 is the identity rotor and 1-8 are
// rotors I to VIII.
func Lookup(id int) (*Spec, error) {
	if id < 0 || id > MaxID {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRotor, id)
	}
	return &catalog[id], nil
}

// ParseID accepts a rotor id either as a number ("5") or as the roman
// numeral stamped on the rotor ("V").
func ParseID(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if id, err := strconv.Atoi(s); err == nil {
		if _, err := Lookup(id); err != nil {
			return 0, err
		}
		return id, nil
	}
	for i := 1; i < catalogSize; i++ {
		if catalog[i].Name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRotor, s)
}
