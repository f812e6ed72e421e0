package astprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

func TestPrintSimpleAtom(t *testing.T) {
	out := Print([]ast.Node{ast.NewMathOrd(token.Math, "x", nil)})
	assert.Contains(t, out, `MathOrd "x"`)
}

func TestPrintNestedOrdGroup(t *testing.T) {
	body := []ast.Node{ast.NewMathOrd(token.Math, "1", nil)}
	group := ast.NewOrdGroup(token.Math, body, false, nil)
	out := Print([]ast.Node{group})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require := assert.New(t)
	require.Len(lines, 2)
	require.Contains(lines[0], "OrdGroup semisimple=false")
	require.True(strings.HasPrefix(lines[1], "  "))
	require.Contains(lines[1], `MathOrd "1"`)
}

func TestPrintSupSubWithBaseAndSupOnly(t *testing.T) {
	base := ast.NewMathOrd(token.Math, "x", nil)
	sup := ast.NewMathOrd(token.Math, "2", nil)
	ss := ast.NewSupSub(token.Math, base, sup, nil, nil)

	out := Print([]ast.Node{ss})
	assert.Contains(t, out, "SupSub")
	assert.Contains(t, out, "base:")
	assert.Contains(t, out, "sup:")
	assert.NotContains(t, out, "sub:")
}

func TestPrintFunctionNodeWithArgs(t *testing.T) {
	num := ast.NewOrdGroup(token.Math, []ast.Node{ast.NewMathOrd(token.Math, "1", nil)}, false, nil)
	den := ast.NewOrdGroup(token.Math, []ast.Node{ast.NewMathOrd(token.Math, "2", nil)}, false, nil)
	fn := ast.NewFunction(token.Math, `\frac`, []ast.Node{num, den}, nil, nil)

	out := Print([]ast.Node{fn})
	assert.Contains(t, out, `Function \frac`)
	assert.Contains(t, out, `MathOrd "1"`)
	assert.Contains(t, out, `MathOrd "2"`)
}

func TestPrintNilNodeIsSkipped(t *testing.T) {
	out := Print([]ast.Node{nil})
	assert.Equal(t, "", out)
}

func TestPrintVerbNode(t *testing.T) {
	v := ast.NewVerb("x", false, nil)
	out := Print([]ast.Node{v})
	assert.Contains(t, out, "Verb star=false")
}
