package enigma

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Rotor slots, from the reflector side to the entry wheel.
const (
	Left = iota
	Middle
	Right
)

// DefaultReflector is used by a Key whose Reflector is left zero.
const DefaultReflector = 'B'

var (
	// ErrDuplicateRotor is returned for a key that uses a rotor twice.
	ErrDuplicateRotor = errors.New("enigma: rotor used more than once")
	// ErrSettingRange is returned for a ring setting or position outside 0-25.
	ErrSettingRange = errors.New("enigma: setting out of range")
	// ErrSettingFormat is returned when a setting string cannot be parsed.
	ErrSettingFormat = errors.New("enigma: malformed setting")
)

// Key is a complete daily key.  Every array is ordered left, middle, right
// and all settings are 0 based (0 is A or ring setting 01).  Keys are
// comparable with ==.
type Key struct {
	Rotors    [3]int
	Rings     [3]int
	Positions [3]int
	Plugboard plugboard.Plugboard
	Reflector byte
}

// ReflectorName returns the reflector the key selects, applying the default.
func (k Key) ReflectorName() byte {
	if k.Reflector == 0 {
		return DefaultReflector
	}
	return k.Reflector
}

// Validate checks that k describes a machine that can be built.
func (k Key) Validate() error {
	for i, id := range k.Rotors {
		if _, err := rotor.Lookup(id); err != nil {
			return err
		}
		for j := 0; j < i; j++ {
			if k.Rotors[j] == id {
				return fmt.Errorf("%w: %d", ErrDuplicateRotor, id)
			}
		}
	}
	for i := 0; i < 3; i++ {
		if k.Rings[i] < 0 || k.Rings[i] >= cryptors.AlphabetSize {
			return fmt.Errorf("%w: ring setting %d", ErrSettingRange, k.Rings[i])
		}
		if k.Positions[i] < 0 || k.Positions[i] >= cryptors.AlphabetSize {
			return fmt.Errorf("%w: position %d", ErrSettingRange, k.Positions[i])
		}
	}
	if _, err := reflector.Lookup(k.ReflectorName()); err != nil {
		return err
	}
	return nil
}

// String formats the key the way it would be written on a key sheet, e.g.
// "B II V III 13 03 21 HET AF BL KO RW TV".
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte(k.ReflectorName())
	for _, id := range k.Rotors {
		sb.WriteByte(' ')
		if spec, err := rotor.Lookup(id); err == nil {
			sb.WriteString(spec.Name)
		} else {
			sb.WriteString(strconv.Itoa(id))
		}
	}
	for _, r := range k.Rings {
		fmt.Fprintf(&sb, " %02d", r+1)
	}
	sb.WriteByte(' ')
	for _, p := range k.Positions {
		sb.WriteByte(cryptors.Letter(byte(p)))
	}
	if k.Plugboard.Len() > 0 {
		sb.WriteByte(' ')
		sb.WriteString(k.Plugboard.String())
	}
	return sb.String()
}

// ParseRotors parses three rotor ids separated by commas or spaces, given as
// numbers or roman numerals ("1,2,3" or "I II III").
func ParseRotors(s string) ([3]int, error) {
	var ids [3]int
	fields := splitSetting(s)
	if len(fields) != 3 {
		return ids, fmt.Errorf("%w: want three rotors, got %q", ErrSettingFormat, s)
	}
	for i, f := range fields {
		id, err := rotor.ParseID(f)
		if err != nil {
			return ids, err
		}
		ids[i] = id
	}
	return ids, nil
}

// ParseSettings parses three ring settings or rotor positions.  They may be
// written as three letters ("AQV") or as three 1 based numbers ("1,17,22").
// The result is 0 based.
func ParseSettings(s string) ([3]int, error) {
	var set [3]int
	s = strings.TrimSpace(s)
	if len(s) == 3 && isLetters(s) {
		for i := 0; i < 3; i++ {
			set[i] = int(upper(s[i]) - 'A')
		}
		return set, nil
	}
	fields := splitSetting(s)
	if len(fields) != 3 {
		return set, fmt.Errorf("%w: want three settings, got %q", ErrSettingFormat, s)
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return set, fmt.Errorf("%w: %q", ErrSettingFormat, f)
		}
		if n < 1 || n > cryptors.AlphabetSize {
			return set, fmt.Errorf("%w: %d", ErrSettingRange, n)
		}
		set[i] = n - 1
	}
	return set, nil
}

func splitSetting(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-' || r == '/'
	})
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := upper(s[i]); c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
