package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/ngram"
	"cipherclimb/internal/preprocess"
)

// Incrementer is an interface that defines methods for incrementing and managing a value
type Incrementer[T any] interface {
	// Name returns the name of the incrementer
	Name() string
	// IsMaxed returns true if the incrementer has reached its maximum value
	IsMaxed() bool

	// Increment increases the current value and returns the new value
	Increment() T

	// Reset sets the incrementer back to its initial state
	Reset()

	// GetCurrentValue returns the current value without incrementing
	GetCurrentValue() T
}

// SliceIncrementer implements Incrementer for a slice of any type
type SliceIncrementer[T any] struct {
	name      string
	values    []T
	currIndex int
}

// NewSliceIncrementer creates a new SliceIncrementer with the provided name and values
func NewSliceIncrementer[T any](name string, values []T) *SliceIncrementer[T] {
	return &SliceIncrementer[T]{
		name:      name,
		values:    values,
		currIndex: -1, // Start at -1 so first Increment() returns index 0
	}
}

// Name returns the name of the incrementer
func (si *SliceIncrementer[T]) Name() string {
	return si.name
}

// IsMaxed returns true if we've reached the end of the slice
func (si *SliceIncrementer[T]) IsMaxed() bool {
	return si.currIndex >= len(si.values)-1
}

// Increment moves to the next value in the slice and returns it
// If already at the end, returns the last value
func (si *SliceIncrementer[T]) Increment() T {
	if !si.IsMaxed() {
		si.currIndex++
	}
	return si.values[si.currIndex]
}

// Reset sets the index back to the start
func (si *SliceIncrementer[T]) Reset() {
	si.currIndex = -1
}

// GetCurrentValue returns the current value without incrementing
func (si *SliceIncrementer[T]) GetCurrentValue() T {
	if si.currIndex == -1 {
		return si.values[0]
	}
	return si.values[si.currIndex]
}

// autoshiftFrequencyFile is the n-gram count file used to score each
// candidate shift.
var autoshiftFrequencyFile string

// autoshiftCmd brute-forces every Caesar shift of the input and reports
// the one that scores best under an n-gram model, rather than dumping
// all 25 for the user to eyeball (see caesarCmd for that). It reuses
// SliceIncrementer to drive the shift enumeration, the one piece of
// this file's original odometer-style incrementer machinery that had a
// natural home once this command got a real body instead of a
// generated stub.
var autoshiftCmd = &cobra.Command{
	Use:   "autoshift [text...]",
	Short: "Find the best-scoring Caesar shift of the given text under an n-gram model",
	Args:  cobra.MinimumNArgs(1),
	Run:   runAutoshift,
}

func init() {
	autoshiftCmd.Flags().StringVarP(&autoshiftFrequencyFile, "frequency-file", "f", "", "n-gram count file produced by the ngrams command")
	autoshiftCmd.MarkFlagRequired("frequency-file")
	rootCmd.AddCommand(autoshiftCmd)
}

func runAutoshift(cmd *cobra.Command, args []string) {
	f, err := os.Open(autoshiftFrequencyFile)
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

	enc, err := alphabet.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		fmt.Printf("Could not build alphabet: %v\n", err)
		os.Exit(1)
	}
	symbolModel, err := model.Encode(enc)
	if err != nil {
		fmt.Printf("Could not encode n-gram model: %v\n", err)
		os.Exit(1)
	}

	text := preprocess.Latin().Process(strings.Join(args, " "))
	symbols, err := enc.EncodeString(text)
	if err != nil {
		fmt.Printf("Could not encode input text: %v\n", err)
		os.Exit(1)
	}

	shifts := make([]int, enc.Len()-1)
	for i := range shifts {
		shifts[i] = i + 1
	}
	shiftIncrementer := NewSliceIncrementer("shift", shifts)

	bestShift := 0
	bestScore := math.Inf(-1)
	size := enc.Len()
	for !shiftIncrementer.IsMaxed() {
		shift := shiftIncrementer.Increment()
		shifted := make([]alphabet.Symbol, len(symbols))
		for i, s := range symbols {
			shifted[i] = alphabet.Symbol((int(s) + shift) % size)
		}
		score := symbolModel.Score(shifted)
		if score > bestScore {
			bestScore = score
			bestShift = shift
		}
	}

	decodedSymbols := make([]alphabet.Symbol, len(symbols))
	for i, s := range symbols {
		decodedSymbols[i] = alphabet.Symbol((int(s) + bestShift) % size)
	}
	decoded, err := enc.DecodeString(decodedSymbols)
	if err != nil {
		fmt.Printf("Could not decode result: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("best shift: %d (score %.8f)\n", bestShift, bestScore)
	color.Green("%s", decoded)
}
