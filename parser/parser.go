// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the recursive-descent core described by
// the project: it consumes tokens from a token.Source (a macro
// expander with one-token lookahead) and produces an ast.Node tree,
// driven by a read-only registry.Table of functions and symbols.
package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/registry"
	"github.com/gglin/KaTeX/token"
)

// SupSubGreediness is the greediness budget used when parsing the
// group that follows ^ or _: it is low enough that a bare function
// with no declared arguments cannot masquerade as that group without
// its own braces.
const SupSubGreediness = 1

// Registry is the read-only set of tables the parser consults:
// functions, symbols, and the Unicode auxiliary tables.
type Registry struct {
	Functions        *registry.Table
	Symbols          registry.SymbolTable
	ImplicitCommands map[string]bool
	UnicodeSymbols   map[rune]string
	UnicodeAccents   map[rune]map[token.Mode]string
	ExtraLatin       map[string]bool
}

// Parser drives a single parse of one token.Source. It is not safe
// for concurrent use; create a new Parser per input.
type Parser struct {
	src      token.Source
	reg      *Registry
	settings Settings

	mode           token.Mode
	leftRightDepth int
}

// New returns a Parser reading from src against reg, configured by
// settings.
func New(src token.Source, reg *Registry, settings Settings) *Parser {
	return &Parser{src: src, reg: reg, settings: settings, mode: token.Math}
}

// Mode reports the parser's current mode (math or text).
func (p *Parser) Mode() token.Mode { return p.mode }

// LeftRightDepth reports the current \left/\right nesting depth, an
// invariant the spec calls out as maintained by handlers and exposed
// by the parser (§3 Invariants).
func (p *Parser) LeftRightDepth() int { return p.leftRightDepth }

// SetLeftRightDepth is called by \left/\right handlers to adjust the
// nesting depth.
func (p *Parser) SetLeftRightDepth(d int) { p.leftRightDepth = d }

func (p *Parser) switchMode(mode token.Mode) token.Mode {
	old := p.mode
	p.mode = mode
	p.src.SwitchMode(mode)
	return old
}

// GobbleSpaces consumes a run of space tokens at the current
// lookahead; used before parsing an atom in math mode, and after
// opening a typed argument group when consumeSpaces is requested.
func (p *Parser) GobbleSpaces() {
	for {
		tok, err := p.src.Fetch()
		if err != nil || tok.Text != " " {
			return
		}
		p.src.Consume()
	}
}

// Parse runs the top-level driver (§4.10): establish the root group
// (unless GlobalGroup is set), install the \color->\textcolor alias
// when requested, parse one expression, require EOF, and tear the
// root group back down.
func (p *Parser) Parse() ([]ast.Node, error) {
	if !p.settings.GlobalGroup {
		p.src.BeginGroup()
		defer p.src.EndGroup()
	}
	if p.settings.ColorIsTextColor {
		p.src.Macros().Set(`\color`, `\textcolor`)
	}

	body, err := p.ParseExpression(false, "")
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.EOF, true); err != nil {
		return nil, err
	}

	return body, nil
}

// fetch returns the cached lookahead, pulling a fresh token if empty.
func (p *Parser) fetch() (token.Token, error) {
	return p.src.Fetch()
}

func (p *Parser) consume() { p.src.Consume() }

// expect fails unless the lookahead's text equals text, optionally
// consuming it.
func (p *Parser) expect(text string, consume bool) error {
	tok, err := p.fetch()
	if err != nil {
		return err
	}
	if tok.Text != text {
		return NewParseError(tok, "Expected %q, got %q", text, tok.Text)
	}
	if consume {
		p.consume()
	}
	return nil
}

// terminators is the fixed set of token texts that end an expression
// list regardless of breakOnTokenText (§4.2).
var terminators = map[string]bool{
	"}":         true,
	`\endgroup`: true,
	`\end`:      true,
	`\right`:    true,
	"&":         true,
}
