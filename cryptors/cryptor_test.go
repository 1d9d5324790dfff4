package cryptors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shift13 struct{}

func (shift13) Forward(c byte) byte { return Mod26[c+13] }

type shift1 struct{}

func (shift1) Forward(c byte) byte { return Mod26[c+1] }

func TestIndicesRoundTrip(t *testing.T) {
	idx, err := Indices(Alphabet)
	require.NoError(t, err)
	for i, c := range idx {
		assert.Equal(t, byte(i), c)
	}
	assert.Equal(t, Alphabet, Letters(idx))
}

func TestIndicesRejectsBadLetters(t *testing.T) {
	for _, text := range []string{"abc", "AB C", "HELLO!", "Ä"} {
		_, err := Indices(text)
		assert.True(t, errors.Is(err, ErrInvalidLetter), text)
	}
}

func TestCheckIndices(t *testing.T) {
	assert.NoError(t, CheckIndices(nil))
	assert.NoError(t, CheckIndices(MustIndices(Alphabet)))
	for _, idx := range [][]byte{{26}, {0, 1, 51}, {200}, {3, 255, 4}} {
		err := CheckIndices(idx)
		assert.True(t, errors.Is(err, ErrInvalidLetter), "%v", idx)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", Normalize("Hello, World!"))
	assert.Equal(t, "", Normalize("1234 -- ?"))
}

func TestMod26(t *testing.T) {
	for i := 0; i < WideSize; i++ {
		assert.Equal(t, byte(i%26), Mod26[i])
	}
}

func TestIsInvolution(t *testing.T) {
	assert.True(t, IsInvolution(shift13{}))
	assert.False(t, IsInvolution(shift1{}))
}

func TestMustIndicesPanics(t *testing.T) {
	assert.Panics(t, func() { MustIndices("lower") })
	assert.Equal(t, []byte{0, 25}, MustIndices("AZ"))
}
