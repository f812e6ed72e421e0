// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// groupEnds maps an opening delimiter token text to the text that
// closes it.
var groupEnds = map[string]string{
	"[":          "]",
	"{":          "}",
	`\begingroup`: `\endgroup`,
}

// parseGroup implements §4.4: parse a brace/bracket/begingroup-
// delimited group, or fall through to function/symbol resolution for
// a bare (non-optional) argument slot.
func (p *Parser) parseGroup(name string, optional bool, greediness int, breakOnTokenText string, mode token.Mode, consumeSpaces bool) (ast.Node, error) {
	var outerMode token.Mode
	switched := mode != token.ModeNone
	if switched {
		outerMode = p.switchMode(mode)
		defer p.switchMode(outerMode)
	}

	if consumeSpaces {
		p.GobbleSpaces()
	}

	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	text := tok.Text

	groupEnd, isOpener := groupEnds[text]
	openAsOptional := optional && text == "["
	openAsRequired := !optional && (text == "{" || text == `\begingroup`)

	if isOpener && (openAsOptional || openAsRequired) {
		p.consume()
		p.src.BeginGroup()
		defer p.src.EndGroup()
		body, err := p.ParseExpression(false, groupEnd)
		if err != nil {
			return nil, err
		}
		if err := p.expect(groupEnd, true); err != nil {
			return nil, err
		}
		semisimple := text == `\begingroup`
		loc := ast.LocFromTokens(tokensOf(body)...)
		return ast.NewOrdGroup(p.mode, body, semisimple, loc), nil
	}

	if optional {
		return nil, nil
	}

	node, err := p.parseFunction(breakOnTokenText, name, greediness)
	if err != nil {
		return nil, err
	}
	if node != nil {
		return node, nil
	}

	node, err = p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if node != nil {
		return node, nil
	}

	if len(text) > 0 && text[0] == '\\' && !p.reg.ImplicitCommands[text] {
		if p.settings.ThrowOnError {
			return nil, NewParseError(tok, "Undefined control sequence: %s", text)
		}
		p.consume()
		return p.formatUnsupportedCmd(text, tok), nil
	}

	return nil, nil
}
