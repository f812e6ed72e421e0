// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry holds the read-only function and symbol tables the
// parser consults: FunctionSpec entries (arity, argument types,
// greediness, allowed modes, handler) and symbol/accent/Unicode
// lookup tables. NewBuiltinFunctions and NewBuiltinSymbols build a
// fresh table on each call; the parser only reads the tables it is
// given.
package registry

import (
	"fmt"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// ArgType names the specialized argument grammar used to parse one
// positional or optional argument of a function.
type ArgType string

const (
	ArgColor    ArgType = "color"
	ArgSize     ArgType = "size"
	ArgURL      ArgType = "url"
	ArgRaw      ArgType = "raw"
	ArgMath     ArgType = "math"
	ArgText     ArgType = "text"
	ArgHBox     ArgType = "hbox"
	ArgOriginal ArgType = "original"
)

// Context is what a function handler receives: the function name it
// was dispatched under, a handle back to the parser (so handlers can
// recurse — e.g. \color parsing the rest of its group), the
// command token (for error attribution), and the breakOnTokenText the
// dispatch call was made with.
type Context struct {
	FuncName         string
	Parser           ParserHandle
	Token            token.Token
	BreakOnTokenText string
}

// ParserHandle is the subset of *parser.Parser a handler may call
// back into. It is declared here (rather than importing package
// parser, which would create a cycle) and satisfied by *parser.Parser.
type ParserHandle interface {
	Mode() token.Mode
	LeftRightDepth() int
	SetLeftRightDepth(int)
	GobbleSpaces()
	ParseExpression(breakOnInfix bool, breakOnTokenText string) ([]ast.Node, error)
	ParseGroupOfType(name string, typ ArgType, optional bool, greediness int, consumeSpaces bool) (ast.Node, error)
	CallFunction(name string, args, optArgs []ast.Node, tok token.Token, breakOnTokenText string) (ast.Node, error)
}

// Handler builds an AST node from a function's already-parsed
// arguments. Handlers may call back into the parser via ctx.Parser to
// recurse (e.g. \color calling ParseExpression for the remainder of
// its group).
type Handler func(ctx Context, args, optArgs []ast.Node) (ast.Node, error)

// FunctionSpec describes one registered function: its arity, per-slot
// argument types, greediness budget, which modes it is callable from,
// whether it is an infix operator, and its handler.
type FunctionSpec struct {
	NumArgs         int
	NumOptionalArgs int
	ArgTypes        []ArgType // len == NumArgs+NumOptionalArgs, or nil
	Greediness      int
	AllowedInText   bool
	AllowedInMath   bool // read through MathAllowed: takes effect only when set via DisallowMath/AllowMath; an unset spec is math-allowed
	allowedInMathSet bool
	Infix           bool
	ReplaceWith     string // only meaningful when Infix is true
	Handler         Handler
}

// ArgType returns the declared argument type for position i, or "" if
// none was declared (meaning "original").
func (f *FunctionSpec) ArgType(i int) ArgType {
	if f.ArgTypes == nil || i >= len(f.ArgTypes) {
		return ""
	}
	return f.ArgTypes[i]
}

// MathAllowed reports whether this function may be used in math mode.
// Functions default to math-allowed unless explicitly disallowed via
// DisallowMath at registration time (mirrors the distilled spec's
// "allowedInMath === false" check, which treats an unset field as
// allowed).
func (f *FunctionSpec) MathAllowed() bool {
	if !f.allowedInMathSet {
		return true
	}
	return f.AllowedInMath
}

// DisallowMath marks this spec as not callable from math mode.
func (f *FunctionSpec) DisallowMath() *FunctionSpec {
	f.AllowedInMath = false
	f.allowedInMathSet = true
	return f
}

// AllowMath explicitly marks this spec as callable from math mode
// (the default; provided for symmetry and explicitness at call sites
// that want to document intent).
func (f *FunctionSpec) AllowMath() *FunctionSpec {
	f.AllowedInMath = true
	f.allowedInMathSet = true
	return f
}

// Table is a read-only function registry keyed by control-sequence
// text (including the leading backslash, e.g. "\frac").
type Table struct {
	funcs map[string]*FunctionSpec
}

// NewTable returns an empty, mutable-until-frozen table. Callers
// populate it via Register, then treat it as read-only.
func NewTable() *Table {
	return &Table{funcs: make(map[string]*FunctionSpec)}
}

// Register adds name -> spec to the table, validating the invariant
// the distilled spec calls out explicitly: an infix function with an
// empty ReplaceWith is a registry construction bug, not something the
// parser should silently tolerate at rewrite time.
func (t *Table) Register(name string, spec *FunctionSpec) {
	if spec.Infix && spec.ReplaceWith == "" {
		panic(fmt.Sprintf("registry: infix function %q registered with empty ReplaceWith", name))
	}
	if spec.Handler == nil {
		panic(fmt.Sprintf("registry: function %q registered with nil Handler", name))
	}
	t.funcs[name] = spec
}

// Get looks up name, returning (nil, false) if unregistered.
func (t *Table) Get(name string) (*FunctionSpec, bool) {
	s, ok := t.funcs[name]
	return s, ok
}

// Names returns the registered function names, for documentation
// generation (internal/docs) and registry self-tests.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.funcs))
	for n := range t.funcs {
		names = append(names, n)
	}
	return names
}
