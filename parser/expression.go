// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// ParseExpression implements §4.2: iterate atoms until a terminator is
// seen, form text-mode ligatures, then rewrite any infix operator
// found among the siblings.
func (p *Parser) ParseExpression(breakOnInfix bool, breakOnTokenText string) ([]ast.Node, error) {
	var body []ast.Node

	for {
		if p.mode == token.Math {
			p.GobbleSpaces()
		}

		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}

		if terminators[tok.Text] {
			break
		}
		if breakOnTokenText != "" && tok.Text == breakOnTokenText {
			break
		}
		if breakOnInfix {
			if spec, ok := p.reg.Functions.Get(tok.Text); ok && spec.Infix {
				break
			}
		}

		node, err := p.parseAtom(breakOnTokenText)
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		body = append(body, node)
	}

	if p.mode == token.Text {
		body = formLigatures(body)
	}

	return p.handleInfixNodes(body)
}

// handleInfixNodes implements the infix rewrite described in §4.2:
// at most one ast.InfixNode may appear among body's direct children;
// more than one is a hard error. When exactly one is found, body is
// split around it into numerator/denominator ordgroups and the
// replacement function is invoked via CallFunction.
func (p *Parser) handleInfixNodes(body []ast.Node) ([]ast.Node, error) {
	overIndex := -1
	var overNode *ast.InfixNode

	for i, n := range body {
		if inf, ok := n.(*ast.InfixNode); ok {
			if overIndex != -1 {
				return nil, NewParseError(inf.Token, "only one infix operator per group")
			}
			overIndex = i
			overNode = inf
		}
	}

	if overIndex == -1 || overNode.ReplaceWith == "" {
		return body, nil
	}

	var numerNode, denomNode ast.Node
	numerBody := body[:overIndex]
	denomBody := body[overIndex+1:]

	if len(numerBody) == 1 {
		if g, ok := numerBody[0].(*ast.OrdGroupNode); ok {
			numerNode = g
		}
	}
	if numerNode == nil {
		numerNode = ast.NewOrdGroup(p.mode, append([]ast.Node(nil), numerBody...), false, ast.LocFromTokens(tokensOf(numerBody)...))
	}

	if len(denomBody) == 1 {
		if g, ok := denomBody[0].(*ast.OrdGroupNode); ok {
			denomNode = g
		}
	}
	if denomNode == nil {
		denomNode = ast.NewOrdGroup(p.mode, append([]ast.Node(nil), denomBody...), false, ast.LocFromTokens(tokensOf(denomBody)...))
	}

	var args []ast.Node
	if overNode.ReplaceWith == `\abovefrac` {
		args = []ast.Node{numerNode, overNode.Size, denomNode}
	} else {
		args = []ast.Node{numerNode, denomNode}
	}

	result, err := p.CallFunction(overNode.ReplaceWith, args, nil, overNode.Token, "")
	if err != nil {
		return nil, err
	}
	return []ast.Node{result}, nil
}

// tokensOf is a helper for deriving a location spanning a sibling
// list whose nodes carry their own Loc; it extracts a synthetic token
// per node so ast.LocFromTokens can union them. Nodes without a Loc
// contribute nothing.
func tokensOf(nodes []ast.Node) []token.Token {
	var toks []token.Token
	for _, n := range nodes {
		if l := n.Loc(); l != nil {
			toks = append(toks, token.Token{Range: *l})
		}
	}
	return toks
}
