// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/registry"
	"github.com/gglin/KaTeX/token"
)

// parseFunction implements §4.5: look up the lookahead in the
// function registry, enforce mode/greediness preconditions, parse its
// declared arguments, and dispatch to its handler.
func (p *Parser) parseFunction(breakOnTokenText, name string, greediness int) (ast.Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}

	spec, ok := p.reg.Functions.Get(tok.Text)
	if !ok {
		return nil, nil
	}
	p.consume()

	if greediness != 0 && spec.Greediness <= greediness {
		return nil, NewParseError(tok, "Got function '%s' with no arguments as %s", tok.Text, name)
	}
	if p.mode == token.Text && !spec.AllowedInText {
		return nil, NewParseError(tok, "Can't use function '%s' in text mode", tok.Text)
	}
	if p.mode == token.Math && !spec.MathAllowed() {
		return nil, NewParseError(tok, "Can't use function '%s' in math mode", tok.Text)
	}

	args, optArgs, err := p.parseArguments(tok.Text, spec)
	if err != nil {
		return nil, err
	}

	return p.CallFunction(tok.Text, args, optArgs, tok, breakOnTokenText)
}

// parseArguments implements §4.5's argument loop: parse NumOptionalArgs
// optional groups followed by NumArgs required groups, routing each
// into the optional or positional result slice.
func (p *Parser) parseArguments(name string, spec *registry.FunctionSpec) (args, optArgs []ast.Node, err error) {
	total := spec.NumArgs + spec.NumOptionalArgs
	if total == 0 {
		return nil, nil, nil
	}

	for i := 0; i < total; i++ {
		isOptional := i < spec.NumOptionalArgs
		argType := spec.ArgType(i)
		consumeSpaces := (i > 0 && !isOptional) || (i == 0 && !isOptional && p.mode == token.Math)

		node, err := p.ParseGroupOfType(name, argType, isOptional, spec.Greediness, consumeSpaces)
		if err != nil {
			return nil, nil, err
		}
		if node == nil {
			if isOptional {
				optArgs = append(optArgs, nil)
				continue
			}
			tok, ferr := p.fetch()
			if ferr != nil {
				return nil, nil, ferr
			}
			return nil, nil, NewParseError(tok, "Expected group after '%s'", name)
		}

		if isOptional {
			optArgs = append(optArgs, node)
		} else {
			args = append(args, node)
		}
	}

	return args, optArgs, nil
}

// CallFunction implements the dispatch tail of §4.5: build a
// registry.Context and invoke the registered handler. It also
// satisfies registry.ParserHandle so that handlers (e.g. the infix
// rewrite, \left/\right) can recurse back into the parser.
func (p *Parser) CallFunction(name string, args, optArgs []ast.Node, tok token.Token, breakOnTokenText string) (ast.Node, error) {
	spec, ok := p.reg.Functions.Get(name)
	if !ok || spec.Handler == nil {
		return nil, NewParseError(tok, "No function handler for %s", name)
	}
	ctx := registry.Context{
		FuncName:         name,
		Parser:           p,
		Token:            tok,
		BreakOnTokenText: breakOnTokenText,
	}
	return spec.Handler(ctx, args, optArgs)
}

// ParseGroupOfType satisfies registry.ParserHandle, exposing the
// typed-argument dispatcher (§4.6) to handlers that need to parse
// further arguments themselves (none of the builtins currently do,
// but \left/\right-style delimiter parsing would).
func (p *Parser) ParseGroupOfType(name string, typ registry.ArgType, optional bool, greediness int, consumeSpaces bool) (ast.Node, error) {
	return p.parseGroupOfType(name, typ, optional, greediness, consumeSpaces)
}
