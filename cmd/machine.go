/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const chunkSize = 4096

// addKeyFlags adds the flags that describe a daily key to c.
func addKeyFlags(c *cobra.Command) {
	c.Flags().StringP("rotors", "r", "I,II,III", "rotor order, left to right, as numbers or roman numerals")
	c.Flags().String("rings", "AAA", "ring settings as letters (AAA) or numbers (1,1,1)")
	c.Flags().StringP("positions", "p", "AAA", "starting positions as letters (AAA) or numbers (1,1,1)")
	c.Flags().String("plugs", "", `plugboard pairs, e.g. "AF TV KO"`)
	addReflectorFlag(c)
}

func addReflectorFlag(c *cobra.Command) {
	c.Flags().String("reflector", string(rune(enigma.DefaultReflector)), "reflector: A, B or C")
}

// bindFlags binds every flag of c to the viper key of the same name.  It is
// called from PreRun so that commands sharing a flag name each get their
// own binding.
func bindFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		cobra.CheckErr(viper.BindPFlag(f.Name, f))
	})
}

func reflectorFromConfig() (byte, error) {
	name := strings.ToUpper(strings.TrimSpace(viper.GetString("reflector")))
	if len(name) != 1 {
		return 0, fmt.Errorf("reflector must be a single letter, got %q", name)
	}
	return name[0], nil
}

// keyFromConfig builds the key described by the key flags, the config file
// and the environment.
func keyFromConfig() (enigma.Key, error) {
	var key enigma.Key
	var err error
	if key.Rotors, err = enigma.ParseRotors(viper.GetString("rotors")); err != nil {
		return key, fmt.Errorf("rotors: %w", err)
	}
	if key.Rings, err = enigma.ParseSettings(viper.GetString("rings")); err != nil {
		return key, fmt.Errorf("rings: %w", err)
	}
	if key.Positions, err = enigma.ParseSettings(viper.GetString("positions")); err != nil {
		return key, fmt.Errorf("positions: %w", err)
	}
	if key.Plugboard, err = plugboard.Parse(viper.GetString("plugs")); err != nil {
		return key, fmt.Errorf("plugs: %w", err)
	}
	if key.Reflector, err = reflectorFromConfig(); err != nil {
		return key, err
	}
	return key, key.Validate()
}

// toIndices appends the letter indices of the letters in b to idx.  Lower
// case letters are accepted; everything else is dropped.
func toIndices(idx, b []byte) []byte {
	for _, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if i, err := cryptors.Index(c); err == nil {
			idx = append(idx, i)
		}
	}
	return idx
}

// cipherHelper runs everything read from rdr through m and makes the result
// available, as upper case letters, from the returned PipeReader.  Anything
// that is not a letter is dropped.  The machine keeps stepping from one
// chunk to the next, so the output is the same as enciphering the whole
// message at once.
func cipherHelper(rdr io.Reader, m *enigma.Machine) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer rWrtr.Close()
		buf := make([]byte, chunkSize)
		idx := make([]byte, 0, chunkSize)
		out := make([]byte, chunkSize)
		for {
			cnt, err := rdr.Read(buf)
			if cnt > 0 {
				idx = toIndices(idx[:0], buf[:cnt])
				m.EncryptBatch(out, idx)
				for i, c := range out[:len(idx)] {
					out[i] = cryptors.Letter(c)
				}
				if _, werr := rWrtr.Write(out[:len(idx)]); werr != nil {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					rWrtr.CloseWithError(err)
				}
				return
			}
		}
	}()
	return rRdr
}
