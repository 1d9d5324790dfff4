package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armor(t *testing.T, text string, headers map[string]string) string {
	t.Helper()
	out, err := io.ReadAll(pem.ToPem(strings.NewReader(text), pem.Block{Type: pemType, Headers: headers}))
	require.NoError(t, err)
	return string(out)
}

func TestCiphertextReaderUsesArmoredReflector(t *testing.T) {
	logger = newLogger(io.Discard, slog.LevelError, true)
	const plain = "WEATHERREPORTFORTHENORTHSEA"
	key := enigma.Key{Rotors: [3]int{4, 2, 5}, Rings: [3]int{3, 0, 12}, Positions: [3]int{1, 7, 22}, Reflector: 'C'}
	ct, err := enigma.Encrypt(plain, key)
	require.NoError(t, err)
	armored := armor(t, ct, map[string]string{"Reflector": "C"})

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("rotors", "IV II V")
	viper.Set("rings", "4,1,13")
	viper.Set("positions", "2,8,23")
	require.False(t, viper.IsSet("reflector"))

	fout := os.Stdout
	src := ciphertextReader([]string{armored}, os.Stdin, &fout)
	assert.Equal(t, "C", viper.GetString("reflector"))
	assert.Same(t, os.Stdout, fout)

	got, err := keyFromConfig()
	require.NoError(t, err)
	assert.Equal(t, key, got)
	m, err := enigma.New(got)
	require.NoError(t, err)
	out, err := io.ReadAll(cipherHelper(src, m))
	require.NoError(t, err)
	wg.Wait()
	assert.Equal(t, plain, string(out))
}

func TestCiphertextReaderKeepsGivenReflector(t *testing.T) {
	logger = newLogger(io.Discard, slog.LevelError, true)
	setKey(t, "I II III", "AAA", "AAA", "", "B")
	armored := armor(t, "ABCDEF", map[string]string{"Reflector": "C"})

	fout := os.Stdout
	src := ciphertextReader([]string{armored}, os.Stdin, &fout)
	_, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "B", viper.GetString("reflector"))
}
