package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/registry"
)

func noopHandler(ctx registry.Context, args, optArgs []ast.Node) (ast.Node, error) {
	return nil, nil
}

func TestMarkdownListsFunctionsSorted(t *testing.T) {
	tbl := registry.NewTable()
	tbl.Register(`\zeta`, &registry.FunctionSpec{Handler: noopHandler})
	tbl.Register(`\alpha`, &registry.FunctionSpec{Handler: noopHandler})

	md := Markdown(tbl)
	alphaIdx := strings.Index(md, `\alpha`)
	zetaIdx := strings.Index(md, `\zeta`)
	require.NotEqual(t, -1, alphaIdx)
	require.NotEqual(t, -1, zetaIdx)
	assert.Less(t, alphaIdx, zetaIdx)
	assert.Contains(t, md, "| Name | Args |")
}

func TestMarkdownRowFields(t *testing.T) {
	tbl := registry.NewTable()
	tbl.Register(`\frac`, &registry.FunctionSpec{NumArgs: 2, Greediness: 2, Handler: noopHandler})

	md := Markdown(tbl)
	assert.Contains(t, md, "| `\\frac` | 2 | 0 | 2 | false | false |")
}

func TestHTMLRendersTable(t *testing.T) {
	tbl := registry.NewTable()
	tbl.Register(`\frac`, &registry.FunctionSpec{NumArgs: 2, Handler: noopHandler})

	html, err := HTML(tbl)
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "frac")
}
