package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gglin/KaTeX/token"
)

func TestSymbolTableLookup(t *testing.T) {
	st := SymbolTable{}
	st.define(token.Math, "+", GroupBin)

	e, ok := st.Lookup(token.Math, "+")
	assert.True(t, ok)
	assert.Equal(t, GroupBin, e.Group)

	_, ok = st.Lookup(token.Text, "+")
	assert.False(t, ok)

	_, ok = st.Lookup(token.Math, "-")
	assert.False(t, ok)
}

func TestAtomsSet(t *testing.T) {
	assert.True(t, Atoms[GroupBin])
	assert.True(t, Atoms[GroupRel])
	assert.False(t, Atoms[GroupMathOrd])
}

func TestImplicitCommands(t *testing.T) {
	assert.True(t, ImplicitCommands[`\relax`])
	assert.True(t, ImplicitCommands[`\limits`])
	assert.False(t, ImplicitCommands[`\frac`])
}

func TestBuiltinSymbolsCoversLettersAndOperators(t *testing.T) {
	st := NewBuiltinSymbols()

	e, ok := st.Lookup(token.Math, "x")
	assert.True(t, ok)
	assert.Equal(t, GroupMathOrd, e.Group)

	e, ok = st.Lookup(token.Math, "+")
	assert.True(t, ok)
	assert.Equal(t, GroupBin, e.Group)

	e, ok = st.Lookup(token.Math, "(")
	assert.True(t, ok)
	assert.Equal(t, GroupOpen, e.Group)

	e, ok = st.Lookup(token.Text, "a")
	assert.True(t, ok)
	assert.Equal(t, GroupTextOrd, e.Group)
}
