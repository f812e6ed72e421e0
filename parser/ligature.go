// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// formLigatures implements §4.8: collapse adjacent text-mode
// TextOrdNodes into the ligature glyphs TeX produces for runs of "-"
// and for doubled quote characters. It rewrites group's backing array
// in place and returns the (possibly shorter) slice, which the caller
// uses in place of group. It is idempotent: a body that has already been collapsed
// yields the same body when run again, since "--", "---", "''", and
// "``" do not themselves match the single-character patterns being
// collapsed.
func formLigatures(group []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(group))

	i := 0
	for i < len(group) {
		cur, ok := group[i].(*ast.TextOrdNode)
		if !ok {
			out = append(out, group[i])
			i++
			continue
		}

		switch cur.Text {
		case "-":
			n := runLen(group, i, "-")
			if n >= 3 {
				out = append(out, mergeTextOrd(group[i:i+3], "---"))
				i += 3
				continue
			}
			if n == 2 {
				out = append(out, mergeTextOrd(group[i:i+2], "--"))
				i += 2
				continue
			}
		case "'":
			if runLen(group, i, "'") >= 2 {
				out = append(out, mergeTextOrd(group[i:i+2], "''"))
				i += 2
				continue
			}
		case "`":
			if runLen(group, i, "`") >= 2 {
				out = append(out, mergeTextOrd(group[i:i+2], "``"))
				i += 2
				continue
			}
		}

		out = append(out, group[i])
		i++
	}

	copy(group[:len(out)], out)
	return group[:len(out)]
}

// runLen counts how many consecutive TextOrdNodes starting at i carry
// exactly the single-character text ch.
func runLen(group []ast.Node, i int, ch string) int {
	n := 0
	for i+n < len(group) {
		t, ok := group[i+n].(*ast.TextOrdNode)
		if !ok || t.Text != ch {
			break
		}
		n++
	}
	return n
}

// mergeTextOrd builds a single TextOrdNode carrying text, with a
// location spanning every node in run.
func mergeTextOrd(run []ast.Node, text string) *ast.TextOrdNode {
	var toks []token.Token
	for _, n := range run {
		if l := n.Loc(); l != nil {
			toks = append(toks, token.Token{Range: *l})
		}
	}
	return ast.NewTextOrd(run[0].Mode(), text, ast.LocFromTokens(toks...))
}
