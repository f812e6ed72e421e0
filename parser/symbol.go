// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"regexp"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/registry"
	"github.com/gglin/KaTeX/token"
)

var verbTokenRE = regexp.MustCompile(`^\\verb[^a-zA-Z]`)

// parseSymbol implements §4.7: resolve a single nucleus, handling the
// \verb special form first, then Unicode expansion and symbol table
// lookup, and finally folding any stripped combining marks into accent
// nodes around the resolved nucleus.
func (p *Parser) parseSymbol() (ast.Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}

	if verbTokenRE.MatchString(tok.Text) {
		return p.parseVerb(tok)
	}

	text := tok.Text
	mode := p.mode

	// Grapheme-cluster the lookahead text so a base character plus any
	// trailing combining marks are identified per Unicode rules, not a
	// fixed-width rune scan. A token whose text spans more than one
	// cluster (a control sequence, the EOF sentinel) is looked up whole.
	base, marks := text, []rune(nil)
	iter := graphemes.FromString(text)
	if iter.Next() && iter.Value() == text {
		base, marks = splitCombiningMarks(text)
	}

	if r, size := utf8.DecodeRuneInString(base); size == len(base) {
		if expansion, ok := p.reg.UnicodeSymbols[r]; ok {
			if _, has := p.reg.Symbols.Lookup(mode, base); !has {
				if mode == token.Math {
					if err := p.reportNonstrict(UnicodeTextInMathMode, tok, "Unicode text character %q used in math mode", base); err != nil {
						return nil, err
					}
				}
				base = expansion
			}
		}
	}

	if base == "i" {
		base = "ı"
	} else if base == "j" {
		base = "ȷ"
	}

	var nucleus ast.Node

	if entry, ok := p.reg.Symbols.Lookup(mode, base); ok {
		if mode == token.Math && p.reg.ExtraLatin[base] {
			if err := p.reportNonstrict(UnicodeTextInMathMode, tok, "%q is a text-mode character in math mode", base); err != nil {
				return nil, err
			}
		}
		if registry.Atoms[entry.Group] {
			nucleus = ast.NewAtom(mode, ast.AtomFamily(entry.Group), base, &tok.Range)
		} else if entry.Group == registry.GroupMathOrd {
			nucleus = ast.NewMathOrd(mode, base, &tok.Range)
		} else {
			nucleus = ast.NewTextOrd(mode, base, &tok.Range)
		}
	} else if r, size := utf8.DecodeRuneInString(base); size > 0 && r >= 0x80 {
		if p.settings.Strict != StrictIgnore {
			if mode == token.Math {
				if err := p.reportNonstrict(UnicodeTextInMathMode, tok, "Unicode text character %q used in math mode", base); err != nil {
					return nil, err
				}
			} else {
				if err := p.reportNonstrict(UnknownSymbol, tok, "Unrecognized Unicode character %q", base); err != nil {
					return nil, err
				}
			}
		}
		nucleus = ast.NewTextOrd(token.Text, base, &tok.Range)
	} else {
		return nil, nil
	}

	p.consume()

	if len(marks) == 0 {
		return nucleus, nil
	}

	result := nucleus
	for _, mark := range marks {
		perMode, ok := p.reg.UnicodeAccents[mark]
		if !ok {
			return nil, NewParseError(tok, "Unknown accent mark %q", string(mark))
		}
		label, ok := perMode[mode]
		if !ok {
			return nil, NewParseError(tok, "Accent %q not supported in %s mode", string(mark), mode)
		}
		result = ast.NewAccent(mode, label, result, false, true, &tok.Range)
	}
	return result, nil
}

// splitCombiningMarks strips a trailing run of combining diacritical
// marks from a grapheme cluster, returning the bare base string and
// the ordered list of marks that followed it (first-stripped first).
func splitCombiningMarks(cluster string) (base string, marks []rune) {
	runes := []rune(cluster)
	i := len(runes)
	for i > 0 && registry.CombiningMarkRange(runes[i-1]) {
		i--
	}
	if i == len(runes) {
		return cluster, nil
	}
	marks = append([]rune(nil), runes[i:]...)
	return string(runes[:i]), marks
}

// parseVerb implements the \verb special form of §4.7: a delimiter
// character (not a letter, *, or whitespace) brackets a literal body;
// the same character must close it.
func (p *Parser) parseVerb(tok token.Token) (ast.Node, error) {
	p.consume()

	rest := tok.Text[len(`\verb`):]
	star := false
	if len(rest) > 0 && rest[0] == '*' {
		star = true
		rest = rest[1:]
	}

	if len(rest) < 2 || rest[0] != rest[len(rest)-1] {
		return nil, NewParseError(tok, "\\verb delimiter must not be a letter, *, or whitespace, and the same character must close it")
	}

	body := rest[1 : len(rest)-1]
	return ast.NewVerb(body, star, &tok.Range), nil
}
