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
	"io"
	"os"

	"github.com/spf13/cobra"

	"cipherclimb/internal/ngram"
)

var corpusFileNames []string
var outputFileName string
var ngramLength int

// ngramsCmd represents the ngrams command
var ngramsCmd = &cobra.Command{
	Use:   "ngrams",
	Short: "Given one or more corpus files, generate an n-gram count file",
	Long: `Scans one or more corpora of text and writes a count file whose
lines are "<gram> <count>", which climb, autoshift and serve can later
load as a language model. Each corpus file (or - for stdin) is folded to upper
case as it's read; pass --corpus more than once to pool several
corpora into one model.`,
	Run: outputNgrams,
}

func init() {
	ngramsCmd.Flags().StringSliceVarP(&corpusFileNames, "corpus", "c", []string{"-"}, "Corpus file(s) to read, or - for stdin; repeatable")
	ngramsCmd.Flags().StringVarP(&outputFileName, "output", "o", "", "Output file to write, defaults to stdout")
	ngramsCmd.Flags().IntVarP(&ngramLength, "length", "n", 3, "The n-gram length to count")
	rootCmd.AddCommand(ngramsCmd)
}

func outputNgrams(cmd *cobra.Command, args []string) {
	if ngramLength < 1 {
		fmt.Println("Only ngrams of length 1 or greater are allowed")
		os.Exit(1)
	}

	count, err := ngram.NewCount(ngramLength)
	if err != nil {
		fmt.Printf("Error building count table: %v\n", err)
		os.Exit(1)
	}

	feed := make(chan string)
	go feedLines(feed, corpusFileNames...)
	for line := range feed {
		count.Add(line)
	}

	var outWriter io.Writer
	if outputFileName == "" {
		outWriter = os.Stdout
	} else {
		f, err := os.Create(outputFileName)
		if err != nil {
			fmt.Printf("Could not open %s for writing: %v\n", outputFileName, err)
			os.Exit(1)
		}
		defer f.Close()
		outWriter = f
	}

	if err := ngram.WriteCountFile(outWriter, count); err != nil {
		fmt.Printf("Could not write count file: %v\n", err)
		os.Exit(1)
	}
}
