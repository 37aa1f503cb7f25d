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
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cipherclimb/internal/preprocess"
)

var freqGramLength int

// freqCmd represents the freq command
var freqCmd = &cobra.Command{
	Use:   "freq [text...]",
	Short: "Reports single-character (or n-gram) frequency for a string",
	Long: `Many substitution-cipher attacks start with frequency analysis.
This command reports the frequency of n-grams (default 1, single
characters) across the given text, folding case and dropping anything
outside A-Z first.`,
	Args: cobra.MinimumNArgs(1),
	Run:  printFrequencyTable,
}

func init() {
	freqCmd.Flags().IntVarP(&freqGramLength, "length", "n", 1, "The n-gram length to report frequency for")
	rootCmd.AddCommand(freqCmd)
}

func printFrequencyTable(cmd *cobra.Command, args []string) {
	text := preprocess.Latin().Process(strings.Join(args, " "))

	counts := make(map[string]int)
	n := freqGramLength
	if n < 1 {
		n = 1
	}
	total := 0
	for i := 0; i+n <= len(text); i++ {
		counts[text[i:i+n]]++
		total++
	}

	type row struct {
		gram  string
		count int
	}
	rows := make([]row, 0, len(counts))
	for g, c := range counts {
		rows = append(rows, row{g, c})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].count > rows[j].count })

	bold := color.New(color.Bold)
	bold.Println("Frequency Table")
	fmt.Println(strings.Repeat("-", 15))
	fmt.Printf("Total %d-grams: %d\n", n, total)
	for _, r := range rows {
		pct := 100.0 * float64(r.count) / float64(total)
		color.Cyan("%s: %d (%.2f%%)", r.gram, r.count, pct)
	}
}
