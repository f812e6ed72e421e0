// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/registry"
	"github.com/gglin/KaTeX/token"
)

// parseGroupOfType implements §4.6's dispatch table over the
// specialized argument grammars.
func (p *Parser) parseGroupOfType(name string, typ registry.ArgType, optional bool, greediness int, consumeSpaces bool) (ast.Node, error) {
	switch typ {
	case registry.ArgColor:
		if consumeSpaces {
			p.GobbleSpaces()
		}
		return p.parseColorGroup(optional)

	case registry.ArgSize:
		if consumeSpaces {
			p.GobbleSpaces()
		}
		return p.parseSizeGroup(optional)

	case registry.ArgURL:
		return p.parseURLGroup(optional, consumeSpaces)

	case registry.ArgMath:
		return p.parseGroup(name, optional, greediness, "", token.Math, consumeSpaces)

	case registry.ArgText:
		return p.parseGroup(name, optional, greediness, "", token.Text, consumeSpaces)

	case registry.ArgHBox:
		body, err := p.parseGroup(name, optional, greediness, "", token.Text, consumeSpaces)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, nil
		}
		return ast.NewStyling(p.mode, "text", []ast.Node{body}, body.Loc()), nil

	case registry.ArgRaw:
		if consumeSpaces {
			p.GobbleSpaces()
		}
		if optional {
			tok, err := p.fetch()
			if err != nil {
				return nil, err
			}
			if tok.Text == "{" {
				return nil, nil
			}
		}
		tok, err := p.parseStringGroup("raw", optional, true)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, nil
		}
		return ast.NewRaw(p.mode, tok.Text, &tok.Range), nil

	case registry.ArgOriginal, "":
		return p.parseGroup(name, optional, greediness, "", token.ModeNone, consumeSpaces)

	default:
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		return nil, NewParseError(tok, "Unknown group type: %s", typ)
	}
}

// parseStringGroup implements §4.6: accumulate tokens between a
// delimiter pair (brace, or bracket when optional) as a single
// composite token, switching to text mode for the duration. raw mode
// additionally tolerates nested matched braces and, when no opener is
// present, a single bare token.
func (p *Parser) parseStringGroup(modeName string, optional bool, raw bool) (*token.Token, error) {
	opener, closer := "{", "}"
	if optional {
		opener, closer = "[", "]"
	}

	startTok, err := p.fetch()
	if err != nil {
		return nil, err
	}

	if startTok.Text != opener {
		if optional {
			return nil, nil
		}
		if raw {
			if startTok.Text != token.EOF && !isBraceOrBracket(startTok.Text) {
				p.consume()
				return &startTok, nil
			}
		}
		if err := p.expect(opener, false); err != nil {
			return nil, err
		}
	}

	outerMode := p.switchMode(token.Text)
	p.consume()

	var sb strings.Builder
	nest := 0
	first := startTok
	var last token.Token

	for {
		tok, err := p.fetch()
		if err != nil {
			p.switchMode(outerMode)
			return nil, err
		}
		if tok.IsEOF() {
			p.switchMode(outerMode)
			return nil, NewParseError(tok, "Unexpected end of input in %s", modeName)
		}
		if tok.Text == closer && nest == 0 {
			last = tok
			break
		}
		if raw {
			if tok.Text == opener {
				nest++
			} else if tok.Text == closer {
				nest--
			}
		}
		sb.WriteString(tok.Text)
		last = tok
		p.consume()
	}

	if err := p.expect(closer, true); err != nil {
		p.switchMode(outerMode)
		return nil, err
	}
	p.switchMode(outerMode)

	result := first.WithRange(last, sb.String())
	return &result, nil
}

func isBraceOrBracket(s string) bool {
	return s == "{" || s == "}" || s == "[" || s == "]"
}

// parseRegexGroup implements §4.6: maximal-munch accumulation of
// lookahead token texts while the growing string still matches regex,
// switching to text mode for the duration.
func (p *Parser) parseRegexGroup(re *regexp.Regexp, modeName string) (*token.Token, error) {
	outerMode := p.switchMode(token.Text)
	defer p.switchMode(outerMode)

	firstTok, err := p.fetch()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	first := firstTok
	last := firstTok
	have := false

	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			break
		}
		candidate := sb.String() + tok.Text
		if !re.MatchString(candidate) {
			break
		}
		sb.WriteString(tok.Text)
		last = tok
		have = true
		p.consume()
	}

	if !have {
		return nil, NewParseError(firstTok, "Invalid %s: '%s'", modeName, firstTok.Text)
	}

	result := first.WithRange(last, sb.String())
	return &result, nil
}

var colorGroupRE = regexp.MustCompile(`(?i)^(#[a-f0-9]{3}|#?[a-f0-9]{6}|[a-z]+)$`)
var sixHexRE = regexp.MustCompile(`(?i)^[a-f0-9]{6}$`)

// parseColorGroup implements §4.6: parse a color string, validate its
// shape, and hand hex forms to go-colorful for a standards-backed
// accept/reject decision on top of the documented grammar.
func (p *Parser) parseColorGroup(optional bool) (ast.Node, error) {
	tok, err := p.parseStringGroup("color", optional, false)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}

	value := tok.Text
	if !colorGroupRE.MatchString(value) {
		return nil, NewParseError(*tok, "Invalid color: '%s'", value)
	}

	if sixHexRE.MatchString(value) {
		value = "#" + value
	}

	if strings.HasPrefix(value, "#") {
		if _, err := colorful.Hex(normalizeHexLen(value)); err != nil {
			return nil, NewParseError(*tok, "Invalid color: '%s'", tok.Text)
		}
	}

	return ast.NewColorToken(p.mode, value, &tok.Range), nil
}

// normalizeHexLen expands a 4-character "#rgb" form to "#rrggbb" so
// go-colorful (which only accepts 6-digit hex) can validate it.
func normalizeHexLen(v string) string {
	if len(v) == 4 { // "#abc"
		return "#" + string(v[1]) + string(v[1]) + string(v[2]) + string(v[2]) + string(v[3]) + string(v[3])
	}
	return v
}

var sizeRE = regexp.MustCompile(`^[-+]? *(?:$|\d+|\d+\.\d*|\.\d*) *[a-z]{0,2} *$`)
var sizeMatchRE = regexp.MustCompile(`([-+]?) *(\d+(?:\.\d*)?|\.\d+) *([a-z]{2})`)

var validUnits = map[string]bool{
	"em": true, "ex": true, "mu": true, "pt": true, "mm": true, "cm": true,
	"in": true, "bp": true, "pc": true, "dd": true, "cc": true, "sp": true,
}

// parseSizeGroup implements §4.6: parse a dimension, substituting
// "0pt"/isBlank=true for an empty non-optional argument (supporting
// \above{}), then validate against the documented unit set.
func (p *Parser) parseSizeGroup(optional bool) (ast.Node, error) {
	var tok *token.Token
	var err error

	if !optional {
		next, ferr := p.fetch()
		if ferr != nil {
			return nil, ferr
		}
		if next.Text != "{" {
			tok, err = p.parseRegexGroup(sizeRE, "size")
		} else {
			tok, err = p.parseStringGroup("size", optional, false)
		}
	} else {
		tok, err = p.parseStringGroup("size", optional, false)
	}
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}

	isBlank := false
	text := tok.Text
	if !optional && text == "" {
		text = "0pt"
		isBlank = true
	}

	m := sizeMatchRE.FindStringSubmatch(text)
	if m == nil {
		return nil, NewParseError(*tok, "Invalid size: '%s'", tok.Text)
	}
	unit := m[3]
	if !validUnits[unit] {
		return nil, NewParseError(*tok, "Invalid unit: '%s'", unit)
	}

	mag, _ := strconv.ParseFloat(m[2], 64)
	if m[1] == "-" {
		mag = -mag
	}

	return ast.NewSize(p.mode, mag, unit, isBlank, &tok.Range), nil
}

var urlUnescapeRE = regexp.MustCompile(`\\([#$%&~_^{}])`)

// parseURLGroup implements §4.6: make '%' active for the duration of
// the argument so it is not swallowed as a TeX comment, parse a raw
// string group, then undo hyperref-style backslash-escaping.
func (p *Parser) parseURLGroup(optional, consumeSpaces bool) (ast.Node, error) {
	lx := p.src.Lexer()
	lx.SetCatcode('%', token.Active)
	defer lx.SetCatcode('%', token.Comment)

	if consumeSpaces {
		p.GobbleSpaces()
	}

	tok, err := p.parseStringGroup("url", optional, true)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}

	url := urlUnescapeRE.ReplaceAllString(tok.Text, "$1")
	return ast.NewURL(p.mode, url, &tok.Range), nil
}
