// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the token and range types exchanged between a
// macro expander (the upstream token source) and the parser, plus the
// Source contract the parser drives.
package token

import (
	"encoding/json"
	"fmt"
)

// EOF is the sentinel text carried by the token returned once the
// underlying stream is exhausted.
const EOF = "EOF"

// Mode selects which symbol/function tables and spacing rules apply.
type Mode int

const (
	// ModeNone means "do not switch mode for this call" when passed to
	// parseGroup; it is never the mode of a live token or node.
	ModeNone Mode = iota
	Math
	Text
)

func (m Mode) String() string {
	switch m {
	case Math:
		return "math"
	case Text:
		return "text"
	default:
		return "none"
	}
}

// MarshalJSON renders a Mode as its String() form, so CLI JSON output
// reads "math"/"text" rather than the underlying int.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Catcode is a TeX category code. All sixteen TeX categories are
// named, in TeX's numbering.
type Catcode int

const (
	Escape Catcode = iota
	BeginGroup
	EndGroup
	MathShift
	AlignTab
	EndLine
	Param
	Superscript
	Subscript
	Ignored
	Space
	Letter
	Other
	Active
	Comment
	Invalid
)

// Pos is a byte offset into the original source text.
type Pos int

// Range is a half-open span [Start, End) of source text, with an
// optional name identifying which stream it came from (multi-file
// support is not required by the core, but the field costs nothing).
type Range struct {
	Start  Pos    `json:"start"`
	End    Pos    `json:"end"`
	Source string `json:"source,omitempty"`
}

func (r Range) String() string {
	if r.Source == "" {
		return fmt.Sprintf("[%d:%d)", r.Start, r.End)
	}
	return fmt.Sprintf("%s[%d:%d)", r.Source, r.Start, r.End)
}

// Union returns the smallest range spanning both r and other. A zero
// Range on either side is ignored.
func (r Range) Union(other Range) Range {
	if r == (Range{}) {
		return other
	}
	if other == (Range{}) {
		return r
	}
	u := r
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	if u.Source == "" {
		u.Source = other.Source
	}
	return u
}

// Token is a single lexical unit: a control-sequence name, a single
// character, or the EOF sentinel, plus the source range it came from.
type Token struct {
	Text  string `json:"text"`
	Range Range  `json:"range"`
}

func (t Token) String() string {
	return fmt.Sprintf("%q%s", t.Text, t.Range)
}

// IsEOF reports whether this token is the end-of-stream sentinel.
func (t Token) IsEOF() bool { return t.Text == EOF }

// WithRange returns a new token spanning both t's and other's ranges,
// carrying the given text. This is the "range(otherToken, text)"
// operation named in the data model.
func (t Token) WithRange(other Token, text string) Token {
	return Token{Text: text, Range: t.Range.Union(other.Range)}
}

// MacroTable is the subset of the expander's macro namespace the core
// needs to mutate: installing a non-expanding rename such as
// \color -> \textcolor (see parser.Parse / Settings.ColorIsTextColor).
type MacroTable interface {
	Set(name, expansion string)
}

// CatcodeSetter is the upstream lexer handle the URL grammar uses to
// make '%' active for the duration of a \url{...} argument.
type CatcodeSetter interface {
	SetCatcode(r rune, code Catcode)
}

// Source is the contract the parser requires from its token producer
// (a macro expander with one-token lookahead). Implementations must
// cache at most one token of lookahead: after Consume, the next Fetch
// must pull a fresh token rather than replay the old one.
type Source interface {
	// Fetch returns the cached lookahead token, pulling a new one from
	// the expander if the cache is empty.
	Fetch() (Token, error)

	// Consume clears the lookahead cache; the next Fetch pulls fresh.
	Consume()

	// SwitchMode notifies the expander of a mode change so that it can
	// adjust tokenization (e.g. space significance).
	SwitchMode(mode Mode)

	// BeginGroup/EndGroup bracket a macro-definition scope. Calls must
	// nest; every BeginGroup must be matched by exactly one EndGroup.
	BeginGroup()
	EndGroup()

	// Macros exposes the expander's macro namespace.
	Macros() MacroTable

	// Lexer exposes the upstream lexer's catcode control.
	Lexer() CatcodeSetter
}
