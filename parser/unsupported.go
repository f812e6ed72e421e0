// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// formatUnsupportedCmd implements §4.9: render an unregistered command
// as a color-wrapped run of TextOrdNodes, one per character of the
// original command text, using the configured error color.
func (p *Parser) formatUnsupportedCmd(text string, tok token.Token) ast.Node {
	chars := []rune(text)
	body := make([]ast.Node, len(chars))
	for i, r := range chars {
		body[i] = ast.NewTextOrd(token.Text, string(r), &tok.Range)
	}
	wrapped := ast.NewColor(token.Text, p.settings.ErrorColor, body, &tok.Range)
	return ast.NewUnsupportedCmd(p.mode, text, wrapped, &tok.Range)
}
