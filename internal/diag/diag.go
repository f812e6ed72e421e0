// Package diag renders parser diagnostics (parse errors and non-strict
// warnings) for terminal output.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/gglin/KaTeX/parser"
	"github.com/gglin/KaTeX/token"
)

// Renderer prints parser diagnostics to a writer, optionally colorized.
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a Renderer writing to os.Stderr. Pass noColor
// true (e.g. from a --no-color flag) to disable ANSI output.
func NewRenderer(noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{writer: os.Stderr, noColor: noColor}
}

// SetWriter overrides the destination writer.
func (r *Renderer) SetWriter(w io.Writer) { r.writer = w }

// Error renders a parse error, followed by an "at offset start-end"
// line when the error carries a source range.
func (r *Renderer) Error(err error) {
	red := color.New(color.FgRed, color.Bold)
	if pe, ok := err.(*parser.ParseError); ok {
		red.Fprintf(r.writer, "error: ")
		fmt.Fprintln(r.writer, pe.Message)
		if pe.Loc != nil {
			fmt.Fprintf(r.writer, "  at offset %d-%d\n", pe.Loc.Start, pe.Loc.End)
		}
		return
	}
	red.Fprintf(r.writer, "error: ")
	fmt.Fprintln(r.writer, err.Error())
}

// Warn renders a non-strict diagnostic produced via
// parser.Settings.ReportNonstrict.
func (r *Renderer) Warn(kind parser.NonstrictKind, message string, tok token.Token) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(r.writer, "warning [%s]: ", kind)
	fmt.Fprintln(r.writer, message)
}

// ReportNonstrict adapts Warn to the parser.Settings.ReportNonstrict
// callback signature.
func (r *Renderer) ReportNonstrict(kind parser.NonstrictKind, message string, tok token.Token) {
	r.Warn(kind, message, tok)
}

// Diagnostic is a non-strict report serialized for --output json,
// alongside the parsed tree, instead of the colorized terminal form.
type Diagnostic struct {
	Kind    parser.NonstrictKind `json:"kind"`
	Message string               `json:"message"`
	Loc     *token.Range         `json:"loc,omitempty"`
}

// Collector gathers non-strict diagnostics in place of rendering them,
// for callers that serialize the parse result as structured data.
type Collector struct {
	Diagnostics []Diagnostic
}

// ReportNonstrict adapts Collector to the parser.Settings.ReportNonstrict
// callback signature.
func (c *Collector) ReportNonstrict(kind parser.NonstrictKind, message string, tok token.Token) {
	loc := tok.Range
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Message: message, Loc: &loc})
}
