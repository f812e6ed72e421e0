// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// parseAtom implements §4.3: a base nucleus plus, in math mode, any
// number of \limits/\nolimits modifiers followed by at most one
// superscript and one subscript (with '-run folding into a
// superscript ordgroup of \prime textords).
func (p *Parser) parseAtom(breakOnTokenText string) (ast.Node, error) {
	base, err := p.parseGroup("atom", false, 0, breakOnTokenText, token.ModeNone, false)
	if err != nil {
		return nil, err
	}

	if p.mode == token.Text {
		return base, nil
	}

	var sup, sub ast.Node

	for {
		p.GobbleSpaces()

		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}

		switch tok.Text {
		case `\limits`, `\nolimits`:
			limits := tok.Text == `\limits`
			opn, ok := base.(*ast.OpNode)
			if !ok || (opn.IsOperatorName && !opn.AlwaysHandleSupSub) {
				return nil, NewParseError(tok, "Limit controls must follow a math operator")
			}
			opn.Limits = limits
			opn.AlwaysHandleSupSub = true
			p.consume()
			continue

		case "^":
			if sup != nil {
				return nil, NewParseError(tok, "Double superscript")
			}
			sup, err = p.handleSupSubscript("superscript")
			if err != nil {
				return nil, err
			}
			continue

		case "_":
			if sub != nil {
				return nil, NewParseError(tok, "Double subscript")
			}
			sub, err = p.handleSupSubscript("subscript")
			if err != nil {
				return nil, err
			}
			continue

		case "'":
			if sup != nil {
				return nil, NewParseError(tok, "Double superscript")
			}
			var primes []ast.Node
			var last token.Token
			for {
				t, err := p.fetch()
				if err != nil {
					return nil, err
				}
				if t.Text != "'" {
					break
				}
				p.consume()
				last = t
				r := t.Range
				primes = append(primes, ast.NewTextOrd(token.Math, `\prime`, &r))
			}
			if nt, err := p.fetch(); err == nil && nt.Text == "^" {
				g, err := p.handleSupSubscript("superscript")
				if err != nil {
					return nil, err
				}
				primes = append(primes, g)
			}
			sup = ast.NewOrdGroup(token.Math, primes, false, ast.LocFromTokens(last))
			continue
		}

		break
	}

	if sup != nil || sub != nil {
		loc := ast.LocFromTokens(tokensOf(nonNil(base, sup, sub))...)
		return ast.NewSupSub(p.mode, base, sup, sub, loc), nil
	}
	return base, nil
}

func nonNil(nodes ...ast.Node) []ast.Node {
	var out []ast.Node
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// handleSupSubscript implements the shared tail of §4.3: consume the
// ^/_ token, then parse a single group with the low SupSubGreediness
// budget, no breakOnTokenText, consuming leading spaces in the target
// mode.
func (p *Parser) handleSupSubscript(name string) (ast.Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	p.consume()

	group, err := p.parseGroup(name, false, SupSubGreediness, "", token.ModeNone, true)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NewParseError(tok, "Expected group after '%s'", tok.Text)
	}
	return group, nil
}
