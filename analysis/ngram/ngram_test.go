package ngram

import (
	"math"
	"strings"
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# sample
TH 60
HE 30

IN 5
th 5
`
	tab, err := Parse(strings.NewReader(src), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.N())
	assert.InDelta(t, math.Log10(65.0/100), tab.Lookup(cryptors.MustIndices("TH")), 1e-12)
	assert.InDelta(t, math.Log10(30.0/100), tab.Lookup2(7, 4), 1e-12)
	assert.InDelta(t, math.Log10(0.01/100), tab.Lookup(cryptors.MustIndices("QZ")), 1e-12)
	assert.Equal(t, tab.Floor(), tab.Lookup(cryptors.MustIndices("QZ")))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		n    int
		err  error
	}{
		{"order zero", "A 1\n", 0, ErrOrder},
		{"order too big", "ABCDE 1\n", 5, ErrOrder},
		{"wrong length", "THE 10\n", 2, ErrMalformed},
		{"missing count", "TH\n", 2, ErrMalformed},
		{"bad count", "TH x\n", 2, ErrMalformed},
		{"negative count", "TH -1\n", 2, ErrMalformed},
		{"bad letters", "T1 4\n", 2, ErrMalformed},
		{"empty", "# nothing\n", 2, ErrEmpty},
		{"all zero", "TH 0\n", 2, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), tt.n)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromText(t *testing.T) {
	text := cryptors.MustIndices("ABAB")
	tab, err := FromText(2, text)
	require.NoError(t, err)
	// AB twice, BA once.
	assert.InDelta(t, math.Log10(2.0/3), tab.Lookup2(0, 1), 1e-12)
	assert.InDelta(t, math.Log10(1.0/3), tab.Lookup2(1, 0), 1e-12)
	assert.InDelta(t, math.Log10(0.01/3), tab.Lookup2(0, 0), 1e-12)

	_, err = FromText(3, cryptors.MustIndices("AB"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestScoreMatchesLookup(t *testing.T) {
	for n := 1; n <= MaxOrder; n++ {
		tab, err := English(n)
		require.NoError(t, err)
		require.Equal(t, n, tab.N())

		text := cryptors.MustIndices("WEATHERREPORTFORTHEBAYATNOON")
		want := 0.0
		for i := 0; i+n <= len(text); i++ {
			want += tab.Lookup(text[i : i+n])
		}
		assert.InDelta(t, want, tab.Score(text), 1e-9, "n=%d", n)
		assert.Zero(t, tab.Score(text[:n-1]), "n=%d", n)
	}
}

func TestLookup4(t *testing.T) {
	tab, err := English(4)
	require.NoError(t, err)
	gram := cryptors.MustIndices("TION")
	assert.Equal(t, tab.Lookup(gram), tab.Lookup4(gram[0], gram[1], gram[2], gram[3]))
	assert.Greater(t, tab.Lookup(gram), tab.Floor())
}

func TestEnglishPrefersEnglish(t *testing.T) {
	plain := cryptors.MustIndices("THEOFFICERSETTHEWHEELSANDREADTHELAMPS")
	noise := cryptors.MustIndices("QXZJVKWQPZXJQKVZWXQJPZKVXQWJZKPXVQZJW")
	for _, n := range []int{2, 3, 4} {
		tab, err := English(n)
		require.NoError(t, err)
		assert.Greater(t, tab.Score(plain), tab.Score(noise), "n=%d", n)
	}
}

func TestEnglishShared(t *testing.T) {
	a, err := English(2)
	require.NoError(t, err)
	b, err := English(2)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = English(MaxOrder + 1)
	assert.ErrorIs(t, err, ErrOrder)
}

func TestEnglishCoverage(t *testing.T) {
	assert.GreaterOrEqual(t, len(cryptors.Normalize(englishCorpus)), 25000)

	seen := func(n int) int {
		tbl, err := English(n)
		require.NoError(t, err)
		cnt := 0
		for _, s := range tbl.scores {
			if s != tbl.floor {
				cnt++
			}
		}
		return cnt
	}
	assert.GreaterOrEqual(t, seen(1), 25)
	assert.GreaterOrEqual(t, seen(2), 450)
	assert.GreaterOrEqual(t, seen(4), 9500)
}
