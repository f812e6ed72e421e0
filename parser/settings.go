// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/gglin/KaTeX/token"

// StrictMode controls how the parser reacts to accepted-but-suspicious
// input (§7 "strict-mode diagnostics"): ignore it silently, report it
// through Settings.ReportNonstrict but continue, or treat it as a
// hard parse error.
type StrictMode string

const (
	StrictIgnore StrictMode = "ignore"
	StrictWarn   StrictMode = "warn"
	StrictError  StrictMode = "error"
)

// NonstrictKind tags the category of a non-fatal diagnostic, so a
// caller's ReportNonstrict callback can filter or format by kind.
type NonstrictKind string

const (
	UnknownSymbol        NonstrictKind = "unknownSymbol"
	UnicodeTextInMathMode NonstrictKind = "unicodeTextInMathMode"
)

// Settings is the configuration surface the parser consumes, exactly
// as named in §6: whether a bare top-level group is used, whether
// \color is aliased to \textcolor, whether unknown commands are fatal,
// the strictness policy, the color used to render unsupported
// commands, and the non-fatal diagnostic sink.
type Settings struct {
	GlobalGroup      bool
	ColorIsTextColor bool
	ThrowOnError     bool
	Strict           StrictMode
	ErrorColor       string

	// ReportNonstrict is invoked for non-fatal diagnostics when Strict
	// is StrictWarn; when Strict is StrictError the same condition
	// instead raises a ParseError, and when StrictIgnore it is a
	// no-op. A nil ReportNonstrict is treated as a no-op.
	ReportNonstrict func(kind NonstrictKind, message string, tok token.Token)
}

// DefaultSettings returns the parser's out-of-the-box configuration:
// non-strict warnings enabled, unknown commands degrade gracefully
// rather than aborting the parse, and the KaTeX-conventional error
// color.
func DefaultSettings() Settings {
	return Settings{
		ThrowOnError: false,
		Strict:       StrictWarn,
		ErrorColor:   "#cc0000",
	}
}

// reportNonstrict applies the configured strictness policy for a
// diagnostic: ignore, report-and-continue, or escalate to a
// *ParseError, matching §7 item 6.
func (p *Parser) reportNonstrict(kind NonstrictKind, tok token.Token, format string, args ...interface{}) error {
	switch p.settings.Strict {
	case StrictError:
		return NewParseError(tok, format, args...)
	case StrictIgnore:
		return nil
	default: // StrictWarn and unset
		if p.settings.ReportNonstrict != nil {
			msg := NewParseError(tok, format, args...).Message
			p.settings.ReportNonstrict(kind, msg, tok)
		}
		return nil
	}
}
