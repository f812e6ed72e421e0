// Package docs renders the function registry's contents as Markdown
// and HTML documentation.
package docs

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/gglin/KaTeX/registry"
)

// mdParser is a pre-configured goldmark instance with GFM table
// support, needed to render the function table below.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Markdown renders t's registered functions as a GitHub-flavored
// Markdown table: name, arity, optional-argument count, greediness,
// and whether the function is allowed in text mode.
func Markdown(t *registry.Table) string {
	names := t.Names()
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("# Registered functions\n\n")
	buf.WriteString("| Name | Args | Optional | Greediness | Infix | Text mode |\n")
	buf.WriteString("|---|---|---|---|---|---|\n")

	for _, name := range names {
		spec, ok := t.Get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "| `%s` | %d | %d | %d | %s | %s |\n",
			name,
			spec.NumArgs,
			spec.NumOptionalArgs,
			spec.Greediness,
			boolCell(spec.Infix),
			boolCell(spec.AllowedInText),
		)
	}

	return buf.String()
}

func boolCell(b bool) string {
	return strconv.FormatBool(b)
}

// HTML renders t's registered functions as an HTML fragment, via the
// Markdown table above.
func HTML(t *registry.Table) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(Markdown(t)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
