// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import "github.com/gglin/KaTeX/token"

// UnicodeSymbols maps a single Unicode character to the control
// sequence or character text it expands to when no symbols[mode]
// entry exists for it directly (e.g. precomposed Latin-1 letters that
// are easier to special-case than to decompose).
var UnicodeSymbols = map[rune]string{
	'Å': `\AA`,
	'å': `\aa`,
	'Æ': `\AE`,
	'æ': `\ae`,
	'Œ': `\OE`,
	'œ': `\oe`,
	'Ø': `\O`,
	'ø': `\o`,
	'ß': `\ss`,
}

// UnicodeAccents maps a combining diacritical mark to, per mode, the
// control-sequence name of the accent command that produces it. A
// mark absent from this table, or present only for the other mode,
// makes parseSymbol's accent folding fail per the accent invariant in
// §3 of the spec.
var UnicodeAccents = map[rune]map[token.Mode]string{
	'̀': {token.Math: `\grave`, token.Text: `\grave`},  // combining grave
	'́': {token.Math: `\acute`, token.Text: `\acute`},  // combining acute
	'̂': {token.Math: `\hat`, token.Text: `\^`},        // combining circumflex
	'̃': {token.Math: `\tilde`, token.Text: `\~`},      // combining tilde
	'̄': {token.Math: `\bar`, token.Text: `\=`},        // combining macron
	'̆': {token.Math: `\breve`, token.Text: `\u`},      // combining breve
	'̇': {token.Math: `\dot`, token.Text: `\.`},        // combining dot above
	'̈': {token.Math: `\ddot`, token.Text: `\"`},       // combining diaeresis
	'̊': {token.Math: `\mathring`, token.Text: `\r`},   // combining ring above
	'̌': {token.Math: `\check`, token.Text: `\v`},      // combining caron
	'⃗': {token.Math: `\vec`},                          // combining right arrow above
}

// CombiningMarkRange reports whether r is a combining diacritical mark
// in the U+0300-U+036F block that the symbol parser may strip from a
// base character and fold into an accent node.
func CombiningMarkRange(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}

// ExtraLatin is the set of text-mode Latin characters the distilled
// spec calls out for a non-strict diagnostic when they appear in math
// mode (they typeset, but are usually a typo for a math symbol).
var ExtraLatin = map[string]bool{
	"ç": true, "ñ": true, "ø": true, "å": true, "æ": true, "œ": true,
	"Ç": true, "Ñ": true, "Ø": true, "Å": true, "Æ": true, "Œ": true,
}
