package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatinFoldsCaseAndDropsPunctuation(t *testing.T) {
	p := Latin()
	assert.Equal(t, "HELLOWORLD", p.Process("Hello, World!"))
}

func TestLatinEmitsOnlyLetters(t *testing.T) {
	p := Latin()
	assert.True(t, p.Emits('a'))
	assert.True(t, p.Emits('Z'))
	assert.False(t, p.Emits('5'))
	assert.False(t, p.Emits(' '))
}

func TestNewWithCustomAlphabet(t *testing.T) {
	p := New([]rune{'A', 'B', 'C'})
	assert.Equal(t, "ABCABC", p.Process("abc, ABC!"))
}
