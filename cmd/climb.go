/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/climb"
	"cipherclimb/internal/key"
	"cipherclimb/internal/ngram"
	"cipherclimb/internal/preprocess"
	"cipherclimb/internal/progress"
)

var (
	climbFrequencyFile  string
	climbGramSize       int
	climbCycles         int
	climbDeriveCycle    int
	climbMutateCycle    int
	climbHomophoneRatio float64
	climbCipherAlphabet string
	climbAcceptPolicy   string
	climbCribOffset     int
	climbCribText       string
	climbQuiet          bool
)

// climbCmd represents the climb command
var climbCmd = &cobra.Command{
	Use:   "climb [ciphertext]",
	Short: "Hill-climb a substitution key against an n-gram language model",
	Long: `climb repeatedly swaps pairs of key positions, keeping swaps that
improve (or are accepted by the acceptance policy despite worsening)
the n-gram score of the decoded text, and prints the energy and the
decoding of the best key found.

A frequency file built by "cipherclimb ngrams" supplies the language
model. Optional --crib-offset and --crib-text flags pin known plaintext
at a ciphertext offset, generalizing to homophonic ciphers via
--homophone-ratio.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClimb,
}

func init() {
	climbCmd.Flags().StringVarP(&climbFrequencyFile, "frequency-file", "f", "", "n-gram count file produced by the ngrams command")
	climbCmd.MarkFlagRequired("frequency-file")
	climbCmd.Flags().IntVarP(&climbGramSize, "gram-size", "n", 0, "n-gram size to score with (default: inferred from the frequency file)")
	climbCmd.Flags().IntVarP(&climbCycles, "cycles", "c", 1000, "number of outer sweeps to run")
	climbCmd.Flags().IntVar(&climbDeriveCycle, "derive-cycle", 0, "rebuild the key from scratch every N stale swaps (0 disables)")
	climbCmd.Flags().IntVar(&climbMutateCycle, "mutate-cycle", 0, "randomly mutate the key every N stale swaps (0 disables)")
	climbCmd.Flags().Float64Var(&climbHomophoneRatio, "homophone-ratio", 0, "fraction of extra cipher symbols per plaintext symbol (0 disables homophones); ignored when --cipher-alphabet is set")
	climbCmd.Flags().StringVar(&climbCipherAlphabet, "cipher-alphabet", "", "explicit cipher alphabet string, for ciphers whose symbol space genuinely differs from the 26-letter plaintext alphabet (e.g. Zodiac Z408's 53-glyph alphabet); defaults to the plaintext alphabet expanded by --homophone-ratio")
	climbCmd.Flags().StringVar(&climbAcceptPolicy, "accept", "lavy", "acceptance policy: lavy, metropolis, or greedy")
	climbCmd.Flags().IntVar(&climbCribOffset, "crib-offset", -1, "ciphertext offset for a known-plaintext crib")
	climbCmd.Flags().StringVar(&climbCribText, "crib-text", "", "known plaintext to pin at --crib-offset")
	climbCmd.Flags().BoolVarP(&climbQuiet, "quiet", "q", false, "suppress the progress spinner")
	rootCmd.AddCommand(climbCmd)
}

func runClimb(cmd *cobra.Command, args []string) {
	rawCipherText := strings.Join(args, " ")

	f, err := os.Open(climbFrequencyFile)
	if err != nil {
		fmt.Printf("Could not open frequency file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	count, err := ngram.LoadCountFile(f)
	if err != nil {
		fmt.Printf("Could not load frequency file: %v\n", err)
		os.Exit(1)
	}
	model, err := ngram.NewModel(count)
	if err != nil {
		fmt.Printf("Could not build n-gram model: %v\n", err)
		os.Exit(1)
	}
	if climbGramSize > 0 && model.N != climbGramSize {
		fmt.Printf("Frequency file has gram size %d, expected %d\n", model.N, climbGramSize)
		os.Exit(1)
	}

	plainEncoding, err := alphabet.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		fmt.Printf("Could not build plaintext alphabet: %v\n", err)
		os.Exit(1)
	}

	cipherEncoding := plainEncoding
	cipherPre := preprocess.Latin()
	homophoneRatio := climbHomophoneRatio
	if climbCipherAlphabet != "" {
		cipherEncoding, err = alphabet.NewEncoding(climbCipherAlphabet)
		if err != nil {
			fmt.Printf("Could not build cipher alphabet: %v\n", err)
			os.Exit(1)
		}
		cipherPre = preprocess.New([]rune(climbCipherAlphabet))
		homophoneRatio = 0
	}

	cipherBuf, err := cipherEncoding.EncodeString(cipherPre.Process(rawCipherText))
	if err != nil {
		fmt.Printf("Ciphertext contains symbols outside the cipher alphabet: %v\n", err)
		os.Exit(1)
	}

	c, err := climb.New(cipherBuf, cipherEncoding, plainEncoding, homophoneRatio)
	if err != nil {
		fmt.Printf("Could not construct climber: %v\n", err)
		os.Exit(1)
	}

	symbolModel, err := model.Encode(plainEncoding)
	if err != nil {
		fmt.Printf("Could not encode n-gram model into plaintext symbol space: %v\n", err)
		os.Exit(1)
	}

	if climbCribOffset >= 0 {
		if err := c.CribString(climbCribOffset, climbCribText); err != nil {
			fmt.Printf("Crib error: %v\n", err)
			os.Exit(1)
		}
	}

	var accept func(prev, next float64) bool
	switch climbAcceptPolicy {
	case "lavy":
		accept = climb.LavyAccept
	case "metropolis":
		accept = climb.MetropolisAccept
	case "greedy":
		accept = climb.GreedyAccept
	default:
		fmt.Printf("Unknown --accept policy %q\n", climbAcceptPolicy)
		os.Exit(1)
	}

	freq := make([]float64, c.PlainAlphabet.Len())
	for i := range freq {
		freq[i] = 1.0 / float64(len(freq))
	}

	var reporter *progress.Reporter
	report := func(c *climb.Climber, cycle, accepted, rejected int) {}
	if !climbQuiet {
		reporter = progress.New(climbCycles)
		reporter.Start()
		defer reporter.Stop()
		report = reporter.Report
	}

	cfg := &climb.Config{
		Cycle:       climbCycles,
		DeriveCycle: climbDeriveCycle,
		MutateCycle: climbMutateCycle,
		Energy:      func(decoded []alphabet.Symbol) float64 { return symbolModel.Score(decoded) },
		Accept:      accept,
		RandomKey: func(c *climb.Climber) {
			k, err := key.RandomSurjective(c.CipherAlphabet, c.PlainAlphabet, freq)
			if err != nil {
				k = key.Random(c.CipherAlphabet, c.PlainAlphabet)
			}
			c.RunKey.CopyFrom(k)
		},
		DeriveKey: func(c *climb.Climber) {
			c.RunKey.CopyFrom(key.Random(c.CipherAlphabet, c.PlainAlphabet))
		},
		MutateKey: func(c *climb.Climber) {
			i := c.Crib.Sample()
			j := c.Crib.Sample()
			c.RunKey.Swap(i, j)
		},
		Report: report,
		Crib:   func(c *climb.Climber) {},
	}

	c.Climb(cfg)

	decodedBuf := make([]alphabet.Symbol, len(c.CipherBuf))
	c.TopKey.Decode(c.CipherBuf, decodedBuf)
	decoded, err := plainEncoding.DecodeString(decodedBuf)
	if err != nil {
		fmt.Printf("Could not decode result: %v\n", err)
		os.Exit(1)
	}

	bold := color.New(color.Bold)
	bold.Println("Best candidate")
	fmt.Printf("energy: %.8f\n", c.TopEnergy)
	color.Green("%s", decoded)
}
