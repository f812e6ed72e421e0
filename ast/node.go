// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the tagged-variant AST node types the parser
// produces: every node carries a Type tag, a Mode, and an optional
// source Loc, matching the closed sum type described by the core
// parser's data model.
package ast

import "github.com/gglin/KaTeX/token"

// Type tags a Node with its concrete kind, so callers can type-switch
// on Type() without a full Go type assertion when only dispatch is
// needed (handlers still type-assert to reach kind-specific fields).
type Type string

const (
	Atom           Type = "atom"
	TextOrd        Type = "textord"
	MathOrd        Type = "mathord"
	OrdGroup       Type = "ordgroup"
	SupSub         Type = "supsub"
	Infix          Type = "infix"
	Accent         Type = "accent"
	Color          Type = "color"
	ColorToken     Type = "color-token"
	Size           Type = "size"
	URL            Type = "url"
	Raw            Type = "raw"
	Styling        Type = "styling"
	Verb           Type = "verb"
	Text           Type = "text"
	UnsupportedCmd Type = "unsupported-cmd"
	Op             Type = "op"
	OperatorName   Type = "operatorname"
	Function       Type = "function"
)

// AtomFamily names the math-spacing family of an Atom node.
type AtomFamily string

const (
	FamilyBin   AtomFamily = "bin"
	FamilyClose AtomFamily = "close"
	FamilyInner AtomFamily = "inner"
	FamilyOpen  AtomFamily = "open"
	FamilyPunct AtomFamily = "punct"
	FamilyRel   AtomFamily = "rel"
)

// Node is implemented by every AST node kind. It exposes the shared
// header fields; kind-specific fields are reached by type-asserting to
// the concrete type.
type Node interface {
	Type() Type
	Mode() token.Mode
	Loc() *token.Range
	setLoc(*token.Range)
}

// Header is embedded by every concrete node type and supplies the
// shared Node fields.
type Header struct {
	NType Type         `json:"type"`
	NMode token.Mode   `json:"mode"`
	NLoc  *token.Range `json:"loc,omitempty"`
}

func (h *Header) Type() Type          { return h.NType }
func (h *Header) Mode() token.Mode    { return h.NMode }
func (h *Header) Loc() *token.Range   { return h.NLoc }
func (h *Header) setLoc(r *token.Range) { h.NLoc = r }

// SetLoc assigns (or reassigns) a node's source location. It exists so
// parser code can attach a location after construction (e.g. unioning
// the base and an operator token) without each node type re-deriving
// the same setter.
func SetLoc(n Node, r *token.Range) { n.setLoc(r) }

func locRange(toks ...token.Token) *token.Range {
	var r token.Range
	seen := false
	for _, t := range toks {
		if !seen {
			r = t.Range
			seen = true
			continue
		}
		r = r.Union(t.Range)
	}
	if !seen {
		return nil
	}
	return &r
}

// LocFromTokens returns a *token.Range spanning all of toks, or nil if
// toks is empty. It is the common way parser code derives a node's Loc
// from the tokens it consumed.
func LocFromTokens(toks ...token.Token) *token.Range { return locRange(toks...) }
