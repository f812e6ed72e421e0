package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gglin/KaTeX/token"
)

func TestHeaderAccessors(t *testing.T) {
	loc := &token.Range{Start: 1, End: 2}
	n := NewMathOrd(token.Math, "x", loc)

	assert.Equal(t, MathOrd, n.Type())
	assert.Equal(t, token.Math, n.Mode())
	assert.Same(t, loc, n.Loc())
}

func TestSetLoc(t *testing.T) {
	n := NewMathOrd(token.Math, "x", nil)
	assert.Nil(t, n.Loc())

	loc := &token.Range{Start: 0, End: 1}
	SetLoc(n, loc)
	assert.Same(t, loc, n.Loc())
}

func TestLocFromTokensEmpty(t *testing.T) {
	assert.Nil(t, LocFromTokens())
}

func TestLocFromTokensUnion(t *testing.T) {
	a := token.Token{Range: token.Range{Start: 0, End: 2}}
	b := token.Token{Range: token.Range{Start: 5, End: 7}}
	loc := LocFromTokens(a, b)
	if assert.NotNil(t, loc) {
		assert.Equal(t, token.Pos(0), loc.Start)
		assert.Equal(t, token.Pos(7), loc.End)
	}
}
