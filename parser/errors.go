// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"

	"github.com/gglin/KaTeX/token"
)

// ParseError is the single fault kind the parser raises: a message
// plus an optional source range for caret-in-source diagnostics.
type ParseError struct {
	Message string       `json:"message"`
	Loc     *token.Range `json:"loc,omitempty"`
}

func (e *ParseError) Error() string {
	if e.Loc == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// NewParseError builds a *ParseError attributed to tok's range.
func NewParseError(tok token.Token, format string, args ...interface{}) *ParseError {
	r := tok.Range
	return &ParseError{Message: fmt.Sprintf(format, args...), Loc: &r}
}

// NewParseErrorAt builds a *ParseError with an explicit, possibly-nil
// location (e.g. unioned across several tokens, or none at all).
func NewParseErrorAt(loc *token.Range, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Loc: loc}
}
