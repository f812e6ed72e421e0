// Package astprint renders a parsed node tree as indented text, for
// the CLI's parse and repl commands.
package astprint

import (
	"fmt"
	"strings"

	"github.com/gglin/KaTeX/ast"
)

// Print renders nodes as a multi-line indented tree.
func Print(nodes []ast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n, 0)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n ast.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch v := n.(type) {
	case *ast.AtomNode:
		fmt.Fprintf(b, "%sAtom(%s) %q\n", indent, v.Family, v.Text)
	case *ast.TextOrdNode:
		fmt.Fprintf(b, "%sTextOrd %q\n", indent, v.Text)
	case *ast.MathOrdNode:
		fmt.Fprintf(b, "%sMathOrd %q\n", indent, v.Text)
	case *ast.OrdGroupNode:
		fmt.Fprintf(b, "%sOrdGroup semisimple=%v\n", indent, v.Semisimple)
		writeList(b, v.Body, depth+1)
	case *ast.SupSubNode:
		fmt.Fprintf(b, "%sSupSub\n", indent)
		fmt.Fprintf(b, "%s  base:\n", indent)
		writeNode(b, v.Base, depth+2)
		if v.Sup != nil {
			fmt.Fprintf(b, "%s  sup:\n", indent)
			writeNode(b, v.Sup, depth+2)
		}
		if v.Sub != nil {
			fmt.Fprintf(b, "%s  sub:\n", indent)
			writeNode(b, v.Sub, depth+2)
		}
	case *ast.AccentNode:
		fmt.Fprintf(b, "%sAccent %s\n", indent, v.Label)
		writeNode(b, v.Base, depth+1)
	case *ast.ColorNode:
		fmt.Fprintf(b, "%sColor %s\n", indent, v.Color)
		writeList(b, v.Body, depth+1)
	case *ast.ColorTokenNode:
		fmt.Fprintf(b, "%sColorToken %s\n", indent, v.Color)
	case *ast.SizeNode:
		fmt.Fprintf(b, "%sSize %g%s blank=%v\n", indent, v.Number, v.Unit, v.IsBlank)
	case *ast.URLNode:
		fmt.Fprintf(b, "%sURL %s\n", indent, v.URL)
	case *ast.RawNode:
		fmt.Fprintf(b, "%sRaw %q\n", indent, v.String)
	case *ast.StylingNode:
		fmt.Fprintf(b, "%sStyling %s\n", indent, v.Style)
		writeList(b, v.Body, depth+1)
	case *ast.VerbNode:
		fmt.Fprintf(b, "%sVerb star=%v %q\n", indent, v.Star, v.Body)
	case *ast.TextNode:
		fmt.Fprintf(b, "%sText\n", indent)
		writeList(b, v.Body, depth+1)
	case *ast.UnsupportedCmdNode:
		fmt.Fprintf(b, "%sUnsupportedCmd %s\n", indent, v.OriginalCommand)
	case *ast.OpNode:
		fmt.Fprintf(b, "%sOp name=%s symbol=%v operatorname=%v limits=%v\n", indent, v.Name, v.Symbol, v.IsOperatorName, v.Limits)
		writeList(b, v.Body, depth+1)
	case *ast.FunctionNode:
		fmt.Fprintf(b, "%sFunction %s\n", indent, v.Name)
		writeList(b, v.Args, depth+1)
	case *ast.InfixNode:
		fmt.Fprintf(b, "%sInfix %s (unrewritten)\n", indent, v.ReplaceWith)
	default:
		fmt.Fprintf(b, "%s%s\n", indent, n.Type())
	}
}

func writeList(b *strings.Builder, nodes []ast.Node, depth int) {
	for _, n := range nodes {
		writeNode(b, n, depth)
	}
}
