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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const pemType = "ENIGMA MESSAGE"

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "Encrypt a message with an Enigma key",
	Long: `Encrypt a message with the three rotor Enigma.  The message is taken from
the command line, the input file or standard input.  Only the letters A-Z are
enciphered; case, spaces and punctuation are dropped.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode [message]",
	Short:      "Encrypt a message with an Enigma key",
	Long:       `[DEPRECATED] Encrypt a message with the three rotor Enigma.`,
	Deprecated: "use \"encrypt\" instead.",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		addKeyFlags(c)
		c.Flags().BoolP("armor", "a", false, "wrap the ciphertext in a PEM block")
	}
}

func newMachine() *enigma.Machine {
	key, err := keyFromConfig()
	cobra.CheckErr(err)
	logger.Debug("key", "key", key)
	m, err := enigma.New(key)
	cobra.CheckErr(err)
	return m
}

// plaintextReader returns the message to encrypt.  A message typed at a
// terminal is read without echo.
func plaintextReader(args []string, fin *os.File) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}
	if fin == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the message: ")
		msg, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		return bytes.NewReader(msg)
	}
	return fin
}

func encrypt(args []string) {
	m := newMachine()
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()

	encOut := cipherHelper(plaintextReader(args, fin), m)
	var err error
	if viper.GetBool("armor") {
		var blck pem.Block
		blck.Type = pemType
		blck.Headers = make(map[string]string)
		blck.Headers["Reflector"] = string(rune(m.Key().ReflectorName()))
		if len(inputFileName) > 0 && inputFileName != "-" {
			blck.Headers["FileName"] = inputFileName
		}
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encOut), blck))
	} else {
		_, err = io.Copy(fout, lines.SplitToLines(encOut))
	}
	checkError(err)
	wg.Wait()
}
