// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/gglin/KaTeX/token"

// AtomNode is a math-mode leaf belonging to one of the spacing
// families (bin, close, inner, open, punct, rel).
type AtomNode struct {
	Header
	Family AtomFamily `json:"family"`
	Text   string     `json:"text"`
}

func NewAtom(mode token.Mode, family AtomFamily, text string, loc *token.Range) *AtomNode {
	return &AtomNode{Header{Atom, mode, loc}, family, text}
}

// TextOrdNode is a text-mode character or run of characters with no
// further structure (e.g. a ligature result).
type TextOrdNode struct {
	Header
	Text string `json:"text"`
}

func NewTextOrd(mode token.Mode, text string, loc *token.Range) *TextOrdNode {
	return &TextOrdNode{Header{TextOrd, mode, loc}, text}
}

// MathOrdNode is a math-mode ordinary symbol (most letters, digits).
type MathOrdNode struct {
	Header
	Text string `json:"text"`
}

func NewMathOrd(mode token.Mode, text string, loc *token.Range) *MathOrdNode {
	return &MathOrdNode{Header{MathOrd, mode, loc}, text}
}

// OrdGroupNode is a brace- or \begingroup-delimited sequence of nodes.
// Semisimple is true only for the latter; semisimple groups are
// transparent to math spacing.
type OrdGroupNode struct {
	Header
	Body       []Node `json:"body"`
	Semisimple bool   `json:"semisimple,omitempty"`
}

func NewOrdGroup(mode token.Mode, body []Node, semisimple bool, loc *token.Range) *OrdGroupNode {
	return &OrdGroupNode{Header{OrdGroup, mode, loc}, body, semisimple}
}

// SupSubNode is a nucleus with an optional superscript and/or
// subscript; at least one of Sup/Sub must be non-nil by construction.
type SupSubNode struct {
	Header
	Base Node `json:"base"`
	Sup  Node `json:"sup,omitempty"`
	Sub  Node `json:"sub,omitempty"`
}

func NewSupSub(mode token.Mode, base, sup, sub Node, loc *token.Range) *SupSubNode {
	return &SupSubNode{Header{SupSub, mode, loc}, base, sup, sub}
}

// InfixNode is a transient node produced while scanning a sibling
// list; handleInfixNodes rewrites it away before any tree is returned,
// so none should ever appear in output from Parser.Parse.
type InfixNode struct {
	Header
	ReplaceWith string      `json:"replaceWith"`
	Token       token.Token `json:"token"`
	// Size carries the optional dimension argument consumed directly
	// by infix commands that take one (\above{dim}); nil otherwise.
	Size Node `json:"size,omitempty"`
}

func NewInfix(mode token.Mode, replaceWith string, tok token.Token, size Node) *InfixNode {
	loc := &tok.Range
	return &InfixNode{Header{Infix, mode, loc}, replaceWith, tok, size}
}

// AccentNode wraps a Base with a combining accent identified by Label.
type AccentNode struct {
	Header
	Label      string `json:"label"`
	Base       Node   `json:"base"`
	IsStretchy bool   `json:"isStretchy,omitempty"`
	IsShifty   bool   `json:"isShifty,omitempty"`
}

func NewAccent(mode token.Mode, label string, base Node, stretchy, shifty bool, loc *token.Range) *AccentNode {
	return &AccentNode{Header{Accent, mode, loc}, label, base, stretchy, shifty}
}

// ColorNode wraps Body in a named Color (e.g. from \textcolor/\color).
type ColorNode struct {
	Header
	Color string `json:"color"`
	Body  []Node `json:"body"`
}

func NewColor(mode token.Mode, color string, body []Node, loc *token.Range) *ColorNode {
	return &ColorNode{Header{Color, mode, loc}, color, body}
}

// ColorTokenNode is the parsed value of a color-typed argument, before
// it is wrapped around a body by the function that requested it.
type ColorTokenNode struct {
	Header
	Color string `json:"color"`
}

func NewColorToken(mode token.Mode, color string, loc *token.Range) *ColorTokenNode {
	return &ColorTokenNode{Header{ColorToken, mode, loc}, color}
}

// SizeNode is a parsed dimension: a signed magnitude and a unit.
type SizeNode struct {
	Header
	Number  float64 `json:"number"`
	Unit    string  `json:"unit"`
	IsBlank bool    `json:"isBlank,omitempty"`
}

func NewSize(mode token.Mode, number float64, unit string, isBlank bool, loc *token.Range) *SizeNode {
	return &SizeNode{Header{Size, mode, loc}, number, unit, isBlank}
}

// URLNode is the parsed value of a url-typed argument.
type URLNode struct {
	Header
	URL string `json:"url"`
}

func NewURL(mode token.Mode, url string, loc *token.Range) *URLNode {
	return &URLNode{Header{URL, mode, loc}, url}
}

// RawNode is the parsed value of a raw-typed argument: the exact
// source text between delimiters, unexpanded.
type RawNode struct {
	Header
	String string `json:"string"`
}

func NewRaw(mode token.Mode, s string, loc *token.Range) *RawNode {
	return &RawNode{Header{Raw, mode, loc}, s}
}
