package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/preprocess"
)

// caesarCmd represents the caesar command
var caesarCmd = &cobra.Command{
	Use:   "caesar [text...]",
	Short: "Print out all nontrivial Caesar shifts of the given text",
	Args:  cobra.MinimumNArgs(1),
	Run:   printCaesarShifts,
}

func init() {
	rootCmd.AddCommand(caesarCmd)
}

// CaesarShiftResult is a single shifted string, paired with its shift
// amount, so results can be printed in order and carry their own label.
type CaesarShiftResult struct {
	ShiftedText string
	Shift       int
}

// String implements fmt.Stringer for CaesarShiftResult.
func (csr CaesarShiftResult) String() string {
	return fmt.Sprintf("%2d. %s", csr.Shift, csr.ShiftedText)
}

// PerformCaesarShifts returns every nontrivial shift of inputText,
// encoding through enc so the shift wraps at the alphabet's actual
// length instead of assuming ASCII A-Z, generalizing the teacher's
// ShiftByte/IsUppercaseAscii/IsLowercaseAscii arithmetic.
func PerformCaesarShifts(inputText string, enc *alphabet.Encoding) ([]CaesarShiftResult, error) {
	symbols, err := enc.EncodeString(inputText)
	if err != nil {
		return nil, fmt.Errorf("cmd: %w", err)
	}

	size := enc.Len()
	results := make([]CaesarShiftResult, 0, size-1)
	for shift := 1; shift < size; shift++ {
		shifted := make([]alphabet.Symbol, len(symbols))
		for i, s := range symbols {
			shifted[i] = alphabet.Symbol((int(s) + shift) % size)
		}
		text, err := enc.DecodeString(shifted)
		if err != nil {
			return nil, fmt.Errorf("cmd: %w", err)
		}
		results = append(results, CaesarShiftResult{ShiftedText: text, Shift: shift})
	}
	return results, nil
}

// printCaesarShifts handles the cobra command for the Caesar cipher.
func printCaesarShifts(cmd *cobra.Command, args []string) {
	enc, err := alphabet.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		fmt.Printf("Could not build alphabet: %v\n", err)
		return
	}

	text := preprocess.Latin().Process(strings.Join(args, " "))
	results, err := PerformCaesarShifts(text, enc)
	if err != nil {
		fmt.Printf("Could not shift text: %v\n", err)
		return
	}
	for _, r := range results {
		fmt.Println(r)
	}
}
