// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import "github.com/gglin/KaTeX/token"

// SymbolGroup names what kind of leaf a symbol table entry resolves
// to: either one of the atom families, or a leaf node kind that is not
// an atom (mathord/textord).
type SymbolGroup string

const (
	GroupMathOrd SymbolGroup = "mathord"
	GroupTextOrd SymbolGroup = "textord"
	GroupBin     SymbolGroup = "bin"
	GroupClose   SymbolGroup = "close"
	GroupInner   SymbolGroup = "inner"
	GroupOpen    SymbolGroup = "open"
	GroupPunct   SymbolGroup = "punct"
	GroupRel     SymbolGroup = "rel"
)

// Atoms is the set of SymbolGroup values that are atom families
// (as opposed to plain ord leaves).
var Atoms = map[SymbolGroup]bool{
	GroupBin:   true,
	GroupClose: true,
	GroupInner: true,
	GroupOpen:  true,
	GroupPunct: true,
	GroupRel:   true,
}

// SymbolEntry is one resolved symbol-table entry.
type SymbolEntry struct {
	Group SymbolGroup
}

// SymbolTable maps mode -> text -> entry.
type SymbolTable map[token.Mode]map[string]SymbolEntry

// Lookup returns the entry for text in the given mode, if any.
func (t SymbolTable) Lookup(mode token.Mode, text string) (SymbolEntry, bool) {
	m, ok := t[mode]
	if !ok {
		return SymbolEntry{}, false
	}
	e, ok := m[text]
	return e, ok
}

func (t SymbolTable) define(mode token.Mode, text string, group SymbolGroup) {
	m, ok := t[mode]
	if !ok {
		m = make(map[string]SymbolEntry)
		t[mode] = m
	}
	m[text] = SymbolEntry{Group: group}
}

// ImplicitCommands is the set of control-sequence texts that may
// legitimately produce no AST node (e.g. \relax) without the group
// parser treating them as an undefined-command error.
var ImplicitCommands = map[string]bool{
	`\relax`:      true,
	`\ `:          true,
	`\nobreak`:    true,
	`\allowbreak`: true,
	`\limits`:     true,
	`\nolimits`:   true,
}
