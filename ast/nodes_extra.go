// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/gglin/KaTeX/token"

// StylingNode overrides the display style for its Body (e.g. the
// \hbox argument wrapper, which forces style "text").
type StylingNode struct {
	Header
	Style string `json:"style"`
	Body  []Node `json:"body"`
}

func NewStyling(mode token.Mode, style string, body []Node, loc *token.Range) *StylingNode {
	return &StylingNode{Header{Styling, mode, loc}, style, body}
}

// VerbNode is the result of \verb parsing: a literal Body rendered
// verbatim, optionally starred (\verb*) to request visible spaces.
type VerbNode struct {
	Header
	Body string `json:"body"`
	Star bool   `json:"star,omitempty"`
}

func NewVerb(body string, star bool, loc *token.Range) *VerbNode {
	return &VerbNode{Header{Verb, token.Text, loc}, body, star}
}

// TextNode is an ordered run of text-mode nodes, as produced by
// \text{...} and similar text-typed arguments.
type TextNode struct {
	Header
	Body []Node `json:"body"`
}

func NewText(mode token.Mode, body []Node, loc *token.Range) *TextNode {
	return &TextNode{Header{Text, mode, loc}, body}
}

// UnsupportedCmdNode is the graceful-degradation rendering of an
// unregistered control sequence under non-strict error handling: a
// color-wrapped text run, one TextOrdNode per character of the
// original command text.
type UnsupportedCmdNode struct {
	Header
	OriginalCommand string     `json:"originalCommand"`
	Wrapped         *ColorNode `json:"wrapped,omitempty"`
}

func NewUnsupportedCmd(mode token.Mode, text string, wrapped *ColorNode, loc *token.Range) *UnsupportedCmdNode {
	return &UnsupportedCmdNode{Header{UnsupportedCmd, mode, loc}, text, wrapped}
}

// OpNode is an operator such as \sum, \int, or the result of
// \operatorname; Limits/AlwaysHandleSupSub are mutated in place by the
// atom parser when a following \limits/\nolimits token is seen.
type OpNode struct {
	Header
	Name               string `json:"name"`
	Symbol             bool   `json:"symbol,omitempty"`
	IsOperatorName     bool   `json:"isOperatorName,omitempty"`
	Body               []Node `json:"body,omitempty"` // present only for \operatorname's text body
	Limits             bool   `json:"limits,omitempty"`
	AlwaysHandleSupSub bool   `json:"alwaysHandleSupSub,omitempty"`
	Suppress           bool   `json:"suppress,omitempty"`
}

func NewOp(mode token.Mode, name string, symbol bool, body []Node, loc *token.Range) *OpNode {
	return &OpNode{Header: Header{Op, mode, loc}, Name: name, Symbol: symbol, Body: body}
}

// FunctionNode is the generic result of a dispatched function handler
// that has no more specific node kind of its own (e.g. \frac, \sqrt,
// \kern): it carries the function name and its parsed arguments so
// that a downstream renderer (out of scope here) can interpret them.
type FunctionNode struct {
	Header
	Name    string `json:"name"`
	Args    []Node `json:"args"`
	OptArgs []Node `json:"optArgs,omitempty"`
}

func NewFunction(mode token.Mode, name string, args, optArgs []Node, loc *token.Range) *FunctionNode {
	return &FunctionNode{Header{Function, mode, loc}, name, args, optArgs}
}
