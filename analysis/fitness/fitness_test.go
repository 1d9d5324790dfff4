package fitness

import (
	"math/rand"
	"testing"

	"github.com/bgallie/enigma/analysis/ngram"
	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfCoincidence(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"A", 0},
		{"AA", 1},
		{"AB", 0},
		{"AAB", 2.0 / 6},
		{"AABB", 4.0 / 12},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", 0},
	}
	for _, tt := range tests {
		got := IndexOfCoincidence{}.Score(cryptors.MustIndices(tt.text))
		assert.InDelta(t, tt.want, got, 1e-12, tt.text)
	}
}

func TestHistogramMatchesScore(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	var h Histogram
	for round := 0; round < 3; round++ {
		h.Reset()
		assert.Zero(t, h.Len())
		text := make([]byte, 50+rnd.Intn(50))
		for i := range text {
			text[i] = byte(rnd.Intn(26))
			h.Add(text[i])
			assert.InDelta(t, IndexOfCoincidence{}.Score(text[:i+1]), h.IoC(), 1e-12)
		}
		assert.Equal(t, len(text), h.Len())
	}
}

func TestIoCPrefersEnglish(t *testing.T) {
	plain := cryptors.MustIndices("THEOFFICERSETTHEWHEELSINTHEORDERGIVENFORTHEDAYANDTURNEDTHERINGS")
	rnd := rand.New(rand.NewSource(1))
	noise := make([]byte, len(plain))
	for i := range noise {
		noise[i] = byte(rnd.Intn(26))
	}
	var f Function = IndexOfCoincidence{}
	assert.Greater(t, f.Score(plain), f.Score(noise))
}

func TestNgramScorers(t *testing.T) {
	bi, err := ngram.English(2)
	require.NoError(t, err)
	quad, err := ngram.English(4)
	require.NoError(t, err)

	text := cryptors.MustIndices("THEREPORTTHATFOLLOWED")
	assert.InDelta(t, bi.Score(text), Bigram{Table: bi}.Score(text), 1e-9)
	assert.InDelta(t, quad.Score(text), Quadgram{Table: quad}.Score(text), 1e-9)

	assert.Zero(t, Bigram{Table: bi}.Score(text[:1]))
	assert.Zero(t, Quadgram{Table: quad}.Score(text[:3]))
	assert.Zero(t, Quadgram{Table: quad}.Score(nil))
}

func TestKnownPlaintext(t *testing.T) {
	k, err := NewKnownPlaintext("Weather report")
	require.NoError(t, err)
	assert.Equal(t, 13, k.Len())

	assert.Equal(t, 13.0, k.Score(cryptors.MustIndices("WEATHERREPORT")))
	assert.Equal(t, 11.0, k.Score(cryptors.MustIndices("WEATHERREPOXX")))
	// Only the common prefix counts.
	assert.Equal(t, 7.0, k.Score(cryptors.MustIndices("WEATHER")))
	assert.Equal(t, 13.0, k.Score(cryptors.MustIndices("WEATHERREPORTANDMORE")))
	assert.Zero(t, k.Score(nil))

	_, err = NewKnownPlaintext("1234 !")
	assert.Error(t, err)
}

func TestKnownPlaintextCopiesCrib(t *testing.T) {
	crib := cryptors.MustIndices("ABC")
	k := KnownPlaintextIndices(crib)
	crib[0] = 25
	assert.Equal(t, 3.0, k.Score(cryptors.MustIndices("ABC")))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"ioc", "bigram", "quadgram"} {
		f, err := ByName(name, nil, nil, "")
		require.NoError(t, err, name)
		assert.Equal(t, name, f.(interface{ String() string }).String())
	}

	f, err := ByName("KNOWN", nil, nil, "attack at dawn")
	require.NoError(t, err)
	assert.Equal(t, 12.0, f.Score(cryptors.MustIndices("ATTACKATDAWN")))

	_, err = ByName("known", nil, nil, "")
	assert.Error(t, err)

	_, err = ByName("chisquared", nil, nil, "")
	assert.ErrorIs(t, err, ErrUnknown)

	quad, err := ngram.English(4)
	require.NoError(t, err)
	_, err = ByName("bigram", quad, nil, "")
	assert.Error(t, err)
}
