package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/lexer"
	"github.com/gglin/KaTeX/registry"
	"github.com/gglin/KaTeX/token"
)

func testRegistry() *Registry {
	return &Registry{
		Functions:        registry.NewBuiltinFunctions(),
		Symbols:          registry.NewBuiltinSymbols(),
		ImplicitCommands: registry.ImplicitCommands,
		UnicodeSymbols:   registry.UnicodeSymbols,
		UnicodeAccents:   registry.UnicodeAccents,
		ExtraLatin:       registry.ExtraLatin,
	}
}

func parseString(t *testing.T, src string, settings Settings) []ast.Node {
	t.Helper()
	l := lexer.New(src)
	p := New(l, testRegistry(), settings)
	nodes, err := p.Parse()
	require.NoError(t, err)
	return nodes
}

func parseStringErr(t *testing.T, src string, settings Settings) error {
	t.Helper()
	l := lexer.New(src)
	p := New(l, testRegistry(), settings)
	_, err := p.Parse()
	require.Error(t, err)
	return err
}

func TestParseSimpleAtoms(t *testing.T) {
	nodes := parseString(t, "x+y", DefaultSettings())
	require.Len(t, nodes, 3)

	ord, ok := nodes[0].(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "x", ord.Text)

	bin, ok := nodes[1].(*ast.AtomNode)
	require.True(t, ok)
	assert.Equal(t, ast.FamilyBin, bin.Family)
	assert.Equal(t, "+", bin.Text)

	ord2, ok := nodes[2].(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "y", ord2.Text)
}

func TestParseSuperscript(t *testing.T) {
	nodes := parseString(t, "x^2", DefaultSettings())
	require.Len(t, nodes, 1)

	ss, ok := nodes[0].(*ast.SupSubNode)
	require.True(t, ok)
	assert.Nil(t, ss.Sub)

	base, ok := ss.Base.(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "x", base.Text)

	sup, ok := ss.Sup.(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "2", sup.Text)
}

func TestParseDoublePrime(t *testing.T) {
	nodes := parseString(t, "x''", DefaultSettings())
	require.Len(t, nodes, 1)

	ss, ok := nodes[0].(*ast.SupSubNode)
	require.True(t, ok)

	sup, ok := ss.Sup.(*ast.OrdGroupNode)
	require.True(t, ok)
	require.Len(t, sup.Body, 2)
	for _, n := range sup.Body {
		prime, ok := n.(*ast.TextOrdNode)
		require.True(t, ok)
		assert.Equal(t, `\prime`, prime.Text)
	}
}

func TestParseDoubleSuperscriptErrors(t *testing.T) {
	err := parseStringErr(t, "x^2^3", DefaultSettings())
	assert.Contains(t, err.Error(), "Double superscript")
}

func TestParseFracBraced(t *testing.T) {
	nodes := parseString(t, `\frac{1}{2}`, DefaultSettings())
	require.Len(t, nodes, 1)

	fn, ok := nodes[0].(*ast.FunctionNode)
	require.True(t, ok)
	assert.Equal(t, `\frac`, fn.Name)
	require.Len(t, fn.Args, 2)

	num, ok := fn.Args[0].(*ast.OrdGroupNode)
	require.True(t, ok)
	require.Len(t, num.Body, 1)
	numOrd, ok := num.Body[0].(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "1", numOrd.Text)

	den, ok := fn.Args[1].(*ast.OrdGroupNode)
	require.True(t, ok)
	require.Len(t, den.Body, 1)
	denOrd, ok := den.Body[0].(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "2", denOrd.Text)
}

func TestParseOverInfixRewritesToFrac(t *testing.T) {
	nodes := parseString(t, `{1 \over 2}`, DefaultSettings())
	require.Len(t, nodes, 1)

	group, ok := nodes[0].(*ast.OrdGroupNode)
	require.True(t, ok)
	require.Len(t, group.Body, 1)

	fn, ok := group.Body[0].(*ast.FunctionNode)
	require.True(t, ok)
	assert.Equal(t, `\frac`, fn.Name)
	require.Len(t, fn.Args, 2)

	num := fn.Args[0].(*ast.OrdGroupNode)
	assert.Equal(t, "1", num.Body[0].(*ast.MathOrdNode).Text)
	den := fn.Args[1].(*ast.OrdGroupNode)
	assert.Equal(t, "2", den.Body[0].(*ast.MathOrdNode).Text)
}

func TestParseChooseInfixRewritesToBinom(t *testing.T) {
	nodes := parseString(t, `{n \choose k}`, DefaultSettings())
	group := nodes[0].(*ast.OrdGroupNode)
	fn := group.Body[0].(*ast.FunctionNode)
	assert.Equal(t, `\binom`, fn.Name)
}

func TestParseDoubleInfixErrors(t *testing.T) {
	err := parseStringErr(t, `{1 \over 2 \over 3}`, DefaultSettings())
	assert.Contains(t, err.Error(), "only one infix operator per group")
}

func TestParseTextLigatureEnDash(t *testing.T) {
	nodes := parseString(t, `\text{a--b}`, DefaultSettings())
	require.Len(t, nodes, 1)

	txt, ok := nodes[0].(*ast.TextNode)
	require.True(t, ok)
	require.Len(t, txt.Body, 3)

	a, ok := txt.Body[0].(*ast.TextOrdNode)
	require.True(t, ok)
	assert.Equal(t, "a", a.Text)

	dash, ok := txt.Body[1].(*ast.TextOrdNode)
	require.True(t, ok)
	assert.Equal(t, "--", dash.Text)

	b, ok := txt.Body[2].(*ast.TextOrdNode)
	require.True(t, ok)
	assert.Equal(t, "b", b.Text)
}

func TestParseTextLigatureEmDash(t *testing.T) {
	nodes := parseString(t, `\text{a---b}`, DefaultSettings())
	txt := nodes[0].(*ast.TextNode)
	require.Len(t, txt.Body, 3)
	assert.Equal(t, "---", txt.Body[1].(*ast.TextOrdNode).Text)
}

func TestParseBareKernDimension(t *testing.T) {
	nodes := parseString(t, `\kern1.5em`, DefaultSettings())
	require.Len(t, nodes, 1)

	fn, ok := nodes[0].(*ast.FunctionNode)
	require.True(t, ok)
	assert.Equal(t, `\kern`, fn.Name)
	require.Len(t, fn.Args, 1)

	size, ok := fn.Args[0].(*ast.SizeNode)
	require.True(t, ok)
	assert.Equal(t, 1.5, size.Number)
	assert.Equal(t, "em", size.Unit)
	assert.False(t, size.IsBlank)
}

func TestParseBracedKernDimension(t *testing.T) {
	nodes := parseString(t, `\kern{2pt}`, DefaultSettings())
	fn := nodes[0].(*ast.FunctionNode)
	size := fn.Args[0].(*ast.SizeNode)
	assert.Equal(t, 2.0, size.Number)
	assert.Equal(t, "pt", size.Unit)
}

func TestParseTextColorGroup(t *testing.T) {
	nodes := parseString(t, `\textcolor{#fff}{x}`, DefaultSettings())
	require.Len(t, nodes, 1)

	c, ok := nodes[0].(*ast.ColorNode)
	require.True(t, ok)
	assert.Equal(t, "#fff", c.Color)
	require.Len(t, c.Body, 1)
	ord, ok := c.Body[0].(*ast.MathOrdNode)
	require.True(t, ok)
	assert.Equal(t, "x", ord.Text)
}

func TestParseTextColorRejectsInvalidHex(t *testing.T) {
	err := parseStringErr(t, `\textcolor{#zzz}{x}`, DefaultSettings())
	assert.Contains(t, err.Error(), "Invalid color")
}

func TestParseUndefinedCommandDegradesGracefully(t *testing.T) {
	nodes := parseString(t, `\foo`, DefaultSettings())
	require.Len(t, nodes, 1)

	unsup, ok := nodes[0].(*ast.UnsupportedCmdNode)
	require.True(t, ok)
	assert.Equal(t, `\foo`, unsup.OriginalCommand)
	require.NotNil(t, unsup.Wrapped)
	assert.Equal(t, DefaultSettings().ErrorColor, unsup.Wrapped.Color)
}

func TestParseUndefinedCommandThrowsWhenConfigured(t *testing.T) {
	settings := DefaultSettings()
	settings.ThrowOnError = true
	err := parseStringErr(t, `\foo`, settings)
	assert.Contains(t, err.Error(), "Undefined control sequence")
}

func TestParseVerb(t *testing.T) {
	nodes := parseString(t, `\verb|a^b_c|`, DefaultSettings())
	require.Len(t, nodes, 1)

	v, ok := nodes[0].(*ast.VerbNode)
	require.True(t, ok)
	assert.Equal(t, "a^b_c", v.Body)
	assert.False(t, v.Star)
}

func TestParseVerbStar(t *testing.T) {
	nodes := parseString(t, `\verb*|a b|`, DefaultSettings())
	v := nodes[0].(*ast.VerbNode)
	assert.True(t, v.Star)
	assert.Equal(t, "a b", v.Body)
}

func TestParseURLGroupUnescapesHyperrefEscapes(t *testing.T) {
	nodes := parseString(t, `\url{http://x.com/a\%b}`, DefaultSettings())
	require.Len(t, nodes, 1)
	u, ok := nodes[0].(*ast.URLNode)
	require.True(t, ok)
	assert.Equal(t, "http://x.com/a%b", u.URL)
}

func TestParseHrefWrapsInFunctionNode(t *testing.T) {
	nodes := parseString(t, `\href{http://x.com}{link}`, DefaultSettings())
	require.Len(t, nodes, 1)
	fn, ok := nodes[0].(*ast.FunctionNode)
	require.True(t, ok)
	assert.Equal(t, `\href`, fn.Name)
	require.Len(t, fn.Args, 2)
	u, ok := fn.Args[0].(*ast.URLNode)
	require.True(t, ok)
	assert.Equal(t, "http://x.com", u.URL)
}

func TestParseSqrtWithOptionalIndex(t *testing.T) {
	nodes := parseString(t, `\sqrt[3]{x}`, DefaultSettings())
	require.Len(t, nodes, 1)
	fn, ok := nodes[0].(*ast.FunctionNode)
	require.True(t, ok)
	assert.Equal(t, `\sqrt`, fn.Name)
	require.Len(t, fn.OptArgs, 1)
	require.NotNil(t, fn.OptArgs[0])
}

func TestParseSqrtWithoutOptionalIndex(t *testing.T) {
	nodes := parseString(t, `\sqrt{x}`, DefaultSettings())
	fn := nodes[0].(*ast.FunctionNode)
	require.Len(t, fn.OptArgs, 1)
	assert.Nil(t, fn.OptArgs[0])
}

func TestParseUnrecognizedUnicodeInTextMode(t *testing.T) {
	nodes := parseString(t, `\text{ñ}`, DefaultSettings())
	require.Len(t, nodes, 1)
	txt, ok := nodes[0].(*ast.TextNode)
	require.True(t, ok)
	require.Len(t, txt.Body, 1)
	ord, ok := txt.Body[0].(*ast.TextOrdNode)
	require.True(t, ok)
	assert.Equal(t, "ñ", ord.Text)
}

func TestModeTokenTextStaysMath(t *testing.T) {
	l := lexer.New("x")
	p := New(l, testRegistry(), DefaultSettings())
	assert.Equal(t, token.Math, p.Mode())
}
