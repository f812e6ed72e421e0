package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gglin/KaTeX/token"
)

func TestUnicodeSymbolsExpansion(t *testing.T) {
	assert.Equal(t, `\AA`, UnicodeSymbols['Å'])
	assert.Equal(t, `\ss`, UnicodeSymbols['ß'])
}

func TestUnicodeAccentsPerMode(t *testing.T) {
	acute := UnicodeAccents['́']
	assert.Equal(t, `\acute`, acute[token.Math])
	assert.Equal(t, `\acute`, acute[token.Text])

	circumflex := UnicodeAccents['̂']
	assert.Equal(t, `\hat`, circumflex[token.Math])
	assert.Equal(t, `\^`, circumflex[token.Text])
}

func TestCombiningMarkRange(t *testing.T) {
	assert.True(t, CombiningMarkRange('́'))
	assert.False(t, CombiningMarkRange('a'))
}

func TestExtraLatin(t *testing.T) {
	assert.True(t, ExtraLatin["ñ"])
	assert.False(t, ExtraLatin["z"])
}
