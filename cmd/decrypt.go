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
	"io"
	"os"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext]",
	Short: "Decrypt an Enigma message.",
	Long: `Decrypt a message enciphered with the three rotor Enigma.  The key must be
the one the message was enciphered with.  PEM armored input, as written by
"encrypt --armor", is recognised and unwrapped.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode [ciphertext]",
	Short:      "Decrypt an Enigma message.",
	Long:       `[DEPRECATED] Decrypt a message enciphered with the three rotor Enigma.`,
	Deprecated: "use \"decrypt\" instead.",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
	addKeyFlags(decryptCmd)
	addKeyFlags(decodeCmd)
}

// ciphertextReader returns the ciphertext with any PEM armor or line breaks
// removed.  The name and reflector recorded in a PEM block are used when
// none was given.
func ciphertextReader(args []string, fin *os.File, fout **os.File) io.Reader {
	var bRdr *bufio.Reader
	if len(args) > 0 {
		bRdr = bufio.NewReader(strings.NewReader(strings.Join(args, " ")))
	} else {
		bRdr = bufio.NewReader(fin)
	}
	b, err := bRdr.Peek(5)
	checkError(err)
	if string(b) != "-----" {
		return lines.CombineLines(bRdr)
	}

	pRdr, blck := pem.FromPem(bRdr)
	logger.Debug("armored input", "type", blck.Type, "headers", blck.Headers)
	if refl, ok := blck.Headers["Reflector"]; ok && len(refl) > 0 {
		if !viper.IsSet("reflector") {
			viper.Set("reflector", refl)
		} else if !strings.EqualFold(viper.GetString("reflector"), refl) {
			logger.Warn("reflector differs from the one the message was armored with",
				"reflector", viper.GetString("reflector"), "armored", refl)
		}
	}
	if len(outputFileName) == 0 {
		if fName, ok := blck.Headers["FileName"]; ok && len(fName) > 0 {
			var err error
			*fout, err = os.Create(fName)
			cobra.CheckErr(err)
		}
	}
	return pRdr
}

func decrypt(args []string) {
	fin, fout := getInputAndOutputFiles(false)
	src := ciphertextReader(args, fin, &fout)
	defer fout.Close()
	m := newMachine()

	_, err := io.Copy(fout, lines.SplitToLines(cipherHelper(src, m)))
	checkError(err)
	wg.Wait() // Wait for the cipher goroutine to finish it's clean up.
}
