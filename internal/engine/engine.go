// Package engine wires together the lexer, registry, and parser
// packages into the single entry point the CLI commands share: parse
// a string of LaTeX source into an AST under a given configuration.
package engine

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/lexer"
	"github.com/gglin/KaTeX/parser"
	"github.com/gglin/KaTeX/registry"
)

// DefaultRegistry builds the parser.Registry populated with the
// built-in function and symbol tables.
func DefaultRegistry() *parser.Registry {
	return &parser.Registry{
		Functions:        registry.NewBuiltinFunctions(),
		Symbols:          registry.NewBuiltinSymbols(),
		ImplicitCommands: registry.ImplicitCommands,
		UnicodeSymbols:   registry.UnicodeSymbols,
		UnicodeAccents:   registry.UnicodeAccents,
		ExtraLatin:       registry.ExtraLatin,
	}
}

// Parse tokenizes src with a fresh lexer.Lexer and runs it through a
// fresh parser.Parser configured with settings, returning the parsed
// node list.
func Parse(src string, settings parser.Settings) ([]ast.Node, error) {
	l := lexer.New(src)
	p := parser.New(l, DefaultRegistry(), settings)
	return p.Parse()
}
