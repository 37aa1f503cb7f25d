// Package preprocess turns raw input text into the symbol stream the
// rest of the solver operates on: fold case, then drop anything outside
// the working alphabet. Grounded in original_source/src/pre.rs's Pre
// type, generalized to fold case with golang.org/x/text/cases instead
// of a hand-rolled rune table, per the teacher's pack-wide habit of
// reaching for golang.org/x/text over bespoke ASCII tables (see
// reichan1998's usage of the same package).
package preprocess

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pre is a two-stage filter: Normalize folds a rune to its canonical
// form (case folding by default), and Emit decides whether a normalized
// rune survives into the output stream.
type Pre struct {
	caser cases.Caser
	emit  map[rune]bool
}

// New builds a Pre that uppercase-folds runes and emits only those in
// alphabetRunes.
func New(alphabetRunes []rune) *Pre {
	emit := make(map[rune]bool, len(alphabetRunes))
	for _, r := range alphabetRunes {
		emit[r] = true
	}
	return &Pre{
		caser: cases.Upper(language.Und),
		emit:  emit,
	}
}

// Latin returns a Pre preconfigured for the plain 26-letter Latin
// alphabet A-Z, mirroring original_source/src/pre.rs's latin() helper.
func Latin() *Pre {
	runes := make([]rune, 26)
	for i := range runes {
		runes[i] = rune('A' + i)
	}
	return New(runes)
}

// Process folds case on input and returns only the runes that survive
// the emit filter, in order.
func (p *Pre) Process(input string) string {
	folded := p.caser.String(input)
	out := make([]rune, 0, len(folded))
	for _, r := range folded {
		if p.emit[r] {
			out = append(out, r)
		}
	}
	return string(out)
}

// Emits reports whether r survives the emit filter once folded.
func (p *Pre) Emits(r rune) bool {
	folded := []rune(p.caser.String(string(r)))
	if len(folded) == 0 {
		return false
	}
	return p.emit[folded[0]]
}
