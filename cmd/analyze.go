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
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bgallie/enigma/analysis"
	"github.com/bgallie/enigma/analysis/fitness"
	"github.com/bgallie/enigma/analysis/ngram"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/filters/lines"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [ciphertext]",
	Short: "Recover the key of an Enigma message from its ciphertext",
	Long: `Recover the key of an Enigma message from the ciphertext alone.

The rotor order and starting positions are found first with every ring at 01,
then the ring settings of the best rotor orders, and finally the plugboard
one pair at a time.  Once plugs are known the ring settings are searched
again, unless --refineRings=false.  Each stage is scored by its own fitness
function: ioc (index of coincidence), bigram, quadgram, or known (a crib that
must line up with the start of the message).`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		analyze(args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	f := analyzeCmd.Flags()
	f.Int("pool", analysis.PoolFive, "number of rotors the key was drawn from (3, 5 or 8)")
	f.Int("top", 1, "number of rotor orders carried into the ring search")
	f.Int("show", 10, "number of rotor orders to list")
	f.Int("maxPlugs", 10, "most plugboard pairs to search for")
	f.Int("workers", runtime.NumCPU(), "goroutines to search with (1 searches sequentially)")
	f.String("plugs", "", "plugboard pairs known in advance")
	f.String("rotorFitness", "ioc", "fitness for the rotor search: "+strings.Join(fitness.Names, ", "))
	f.String("ringFitness", "bigram", "fitness for the ring search")
	f.String("plugFitness", "quadgram", "fitness for the plug search")
	f.String("bigrams", "", "bigram table file (NGRAM COUNT lines); default built in English")
	f.String("quadgrams", "", "quadgram table file (NGRAM COUNT lines); default built in English")
	f.String("crib", "", "known plaintext from the start of the message, for the known fitness")
	f.Bool("sequentialRings", false, "search ring settings one rotor at a time (faster, less thorough)")
	f.Bool("refineRings", true, "search ring settings again once plugs have been found")
	addReflectorFlag(analyzeCmd)
}

func loadTable(path string, n int) *ngram.Table {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	cobra.CheckErr(err)
	defer f.Close()
	t, err := ngram.Parse(f, n)
	cobra.CheckErr(err)
	return t
}

func fitnessFromConfig(key string, bigrams, quadgrams *ngram.Table) fitness.Function {
	f, err := fitness.ByName(viper.GetString(key), bigrams, quadgrams, viper.GetString("crib"))
	cobra.CheckErr(err)
	return f
}

func analyze(args []string) {
	if len(outputFileName) == 0 {
		// The report never replaces the input's plaintext file.
		outputFileName = "-"
	}
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()

	var src io.Reader = fin
	if len(args) > 0 {
		src = strings.NewReader(strings.Join(args, " "))
	}
	raw, err := io.ReadAll(src)
	checkError(err)
	ct := toIndices(nil, raw)
	if len(ct) == 0 {
		cobra.CheckErr("no ciphertext letters to analyze")
	}

	base, err := plugboard.Parse(viper.GetString("plugs"))
	cobra.CheckErr(err)
	refl, err := reflectorFromConfig()
	cobra.CheckErr(err)

	bigrams := loadTable(viper.GetString("bigrams"), 2)
	quadgrams := loadTable(viper.GetString("quadgrams"), 4)
	p := analysis.Pipeline{
		PoolSize:        viper.GetInt("pool"),
		Top:             viper.GetInt("top"),
		MaxPlugs:        viper.GetInt("maxPlugs"),
		Plugboard:       base,
		SequentialRings: viper.GetBool("sequentialRings"),
		RefineRings:     viper.GetBool("refineRings"),
		RotorFitness:    fitnessFromConfig("rotorFitness", bigrams, quadgrams),
		RingFitness:     fitnessFromConfig("ringFitness", bigrams, quadgrams),
		PlugFitness:     fitnessFromConfig("plugFitness", bigrams, quadgrams),
	}
	a := analysis.New(
		analysis.WithWorkers(viper.GetInt("workers")),
		analysis.WithReflector(refl),
		analysis.WithLogger(logger),
	)

	start := time.Now()
	res := a.Run(ct, p)
	logger.Info("analysis finished", "letters", len(ct), "elapsed", time.Since(start))
	if len(res.Rotors) == 0 {
		cobra.CheckErr(fmt.Sprintf("no rotor orders in a pool of %d", p.PoolSize))
	}

	show := viper.GetInt("show")
	if show > len(res.Rotors) {
		show = len(res.Rotors)
	} else if show < 0 {
		show = 0
	}
	fmt.Fprintf(fout, "Top %d rotor configurations:\n", show)
	for _, k := range res.Rotors[:show] {
		fmt.Fprintf(fout, "  %s\n", k)
	}
	fmt.Fprintln(fout, "Best ring settings:")
	for _, k := range res.Rings {
		fmt.Fprintf(fout, "  %s\n", k)
	}
	if res.Refined {
		fmt.Fprintln(fout, "Ring settings refined after the plug search.")
	}
	fmt.Fprintf(fout, "Key: %s\n", res.Key)
	fmt.Fprintln(fout, "Decryption:")
	_, err = io.Copy(fout, lines.SplitToLines(bytes.NewReader([]byte(cryptors.Letters(res.Plaintext)))))
	checkError(err)
}
