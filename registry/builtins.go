// Copyright ©2020 The go-latex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/token"
)

// accentSpec describes one single-argument accent command: its
// control-sequence name and the label it produces.
type accentSpec struct {
	name  string
	label string
}

var mathAccents = []accentSpec{
	{`\hat`, `\hat`},
	{`\bar`, `\bar`},
	{`\vec`, `\vec`},
	{`\dot`, `\dot`},
	{`\ddot`, `\ddot`},
	{`\acute`, `\acute`},
	{`\grave`, `\grave`},
	{`\tilde`, `\tilde`},
	{`\breve`, `\breve`},
	{`\check`, `\check`},
	{`\mathring`, `\mathring`},
}

// frac builds a \frac-equivalent FunctionNode from a numerator and
// denominator, which is also the shape \over/\atop/\above/\choose
// rewrite into via the infix mechanism (§4.2).
func frac(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	return ast.NewFunction(args[0].Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

func abovefrac(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	return ast.NewFunction(args[0].Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

// infixHandler builds the transient ast.InfixNode that handleInfixNodes
// (parser.ParseExpression) rewrites away before returning a tree.
func infixHandler(replaceWith string) Handler {
	return func(ctx Context, args, optArgs []ast.Node) (ast.Node, error) {
		var size ast.Node
		if replaceWith == `\abovefrac` && len(args) > 0 {
			size = args[0]
		}
		return ast.NewInfix(ctx.Parser.Mode(), replaceWith, ctx.Token, size), nil
	}
}

func sqrtHandler(ctx Context, args, optArgs []ast.Node) (ast.Node, error) {
	var index ast.Node
	if len(optArgs) > 0 {
		index = optArgs[0]
	}
	all := append([]ast.Node{args[0]}, index)
	return ast.NewFunction(args[0].Mode(), ctx.FuncName, all, optArgs, &ctx.Token.Range), nil
}

func colorTokenToString(n ast.Node) string {
	if ct, ok := n.(*ast.ColorTokenNode); ok {
		return ct.Color
	}
	return ""
}

func textcolorHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	color := colorTokenToString(args[0])
	body := args[1]
	var bodySlice []ast.Node
	if g, ok := body.(*ast.OrdGroupNode); ok {
		bodySlice = g.Body
	} else {
		bodySlice = []ast.Node{body}
	}
	return ast.NewColor(body.Mode(), color, bodySlice, &ctx.Token.Range), nil
}

func colorHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	color := colorTokenToString(args[0])
	rest, err := ctx.Parser.ParseExpression(false, ctx.BreakOnTokenText)
	if err != nil {
		return nil, err
	}
	return ast.NewColor(ctx.Parser.Mode(), color, rest, &ctx.Token.Range), nil
}

func kernHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	return ast.NewFunction(ctx.Parser.Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

func operatornameHandler(star bool) Handler {
	return func(ctx Context, args, _ []ast.Node) (ast.Node, error) {
		body := args[0]
		var bodySlice []ast.Node
		if g, ok := body.(*ast.OrdGroupNode); ok {
			bodySlice = g.Body
		} else {
			bodySlice = []ast.Node{body}
		}
		op := ast.NewOp(token.Math, "", false, bodySlice, &ctx.Token.Range)
		op.IsOperatorName = true
		op.AlwaysHandleSupSub = star
		return op, nil
	}
}

// identityHandler returns a function's sole already-parsed argument
// unchanged. It is used by functions whose argument type already
// produces the node shape the function itself would build (\url,
// whose argument type is ArgURL; \hbox, whose ArgHBox argument type
// already wraps the parsed body in a styling node).
func identityHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	return args[0], nil
}

func hrefHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	return ast.NewFunction(ctx.Parser.Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

func textHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	body := args[0]
	var bodySlice []ast.Node
	if g, ok := body.(*ast.OrdGroupNode); ok {
		bodySlice = g.Body
	} else {
		bodySlice = []ast.Node{body}
	}
	return ast.NewText(token.Text, bodySlice, &ctx.Token.Range), nil
}

func accentHandler(label string) Handler {
	return func(ctx Context, args, _ []ast.Node) (ast.Node, error) {
		return ast.NewAccent(args[0].Mode(), label, args[0], false, true, &ctx.Token.Range), nil
	}
}

func leftHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	ctx.Parser.SetLeftRightDepth(ctx.Parser.LeftRightDepth() + 1)
	return ast.NewFunction(ctx.Parser.Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

func rightHandler(ctx Context, args, _ []ast.Node) (ast.Node, error) {
	ctx.Parser.SetLeftRightDepth(ctx.Parser.LeftRightDepth() - 1)
	return ast.NewFunction(ctx.Parser.Mode(), ctx.FuncName, args, nil, &ctx.Token.Range), nil
}

// NewBuiltinFunctions returns a Table populated with the representative
// LaTeX/KaTeX function subset described in SPEC_FULL.md §4.13.
func NewBuiltinFunctions() *Table {
	t := NewTable()

	// \frac is not allowed in text mode, per KaTeX; AllowedInText is
	// left at its zero value (false) deliberately.
	t.Register(`\frac`, &FunctionSpec{NumArgs: 2, Greediness: 2, Handler: frac})
	t.Register(`\dfrac`, &FunctionSpec{NumArgs: 2, Greediness: 2, Handler: frac})
	t.Register(`\tfrac`, &FunctionSpec{NumArgs: 2, Greediness: 2, Handler: frac})
	t.Register(`\binom`, &FunctionSpec{NumArgs: 2, Greediness: 2, Handler: frac})
	t.Register(`\abovefrac`, &FunctionSpec{NumArgs: 3, Greediness: 2, Handler: abovefrac})

	t.Register(`\over`, &FunctionSpec{NumArgs: 0, Infix: true, ReplaceWith: `\frac`, Handler: infixHandler(`\frac`)})
	t.Register(`\atop`, &FunctionSpec{NumArgs: 0, Infix: true, ReplaceWith: `\frac`, Handler: infixHandler(`\frac`)})
	t.Register(`\choose`, &FunctionSpec{NumArgs: 0, Infix: true, ReplaceWith: `\binom`, Handler: infixHandler(`\binom`)})
	t.Register(`\above`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgSize}, Infix: true, ReplaceWith: `\abovefrac`, Handler: infixHandler(`\abovefrac`)})

	t.Register(`\sqrt`, &FunctionSpec{NumArgs: 1, NumOptionalArgs: 1, Greediness: 2, Handler: sqrtHandler})

	t.Register(`\textcolor`, &FunctionSpec{
		NumArgs: 2, ArgTypes: []ArgType{ArgColor, ArgOriginal}, AllowedInText: true, Handler: textcolorHandler,
	})
	t.Register(`\color`, &FunctionSpec{
		NumArgs: 1, ArgTypes: []ArgType{ArgColor}, AllowedInText: true, Handler: colorHandler,
	})

	t.Register(`\kern`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgSize}, AllowedInText: true, Handler: kernHandler})
	t.Register(`\hskip`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgSize}, AllowedInText: true, Handler: kernHandler})
	t.Register(`\mkern`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgSize}, Handler: kernHandler})

	t.Register(`\operatorname`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgText}, Handler: operatornameHandler(false)})
	t.Register(`\operatorname*`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgText}, Handler: operatornameHandler(true)})

	t.Register(`\url`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgURL}, AllowedInText: true, Handler: identityHandler})
	t.Register(`\href`, &FunctionSpec{NumArgs: 2, ArgTypes: []ArgType{ArgURL, ArgOriginal}, AllowedInText: true, Handler: hrefHandler})

	t.Register(`\hbox`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgHBox}, AllowedInText: true, Handler: identityHandler})

	t.Register(`\text`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgText}, AllowedInText: true, Handler: textHandler})
	t.Register(`\mbox`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgText}, AllowedInText: true, Handler: textHandler})

	t.Register(`\left`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgRaw}, AllowedInText: true, Handler: leftHandler})
	t.Register(`\right`, &FunctionSpec{NumArgs: 1, ArgTypes: []ArgType{ArgRaw}, AllowedInText: true, Handler: rightHandler})

	for _, a := range mathAccents {
		t.Register(a.name, &FunctionSpec{NumArgs: 1, Handler: accentHandler(a.label)})
	}

	return t
}

// NewBuiltinSymbols returns a SymbolTable covering the common math-
// and text-mode atom families described in SPEC_FULL.md §4.13.
func NewBuiltinSymbols() SymbolTable {
	t := SymbolTable{}

	bin := "+-*/"
	for _, r := range bin {
		t.define(token.Math, string(r), GroupBin)
	}
	open := "([{"
	for _, r := range open {
		t.define(token.Math, string(r), GroupOpen)
	}
	close_ := ")]}"
	for _, r := range close_ {
		t.define(token.Math, string(r), GroupClose)
	}
	punct := ",;:"
	for _, r := range punct {
		t.define(token.Math, string(r), GroupPunct)
	}
	rel := "=<>"
	for _, r := range rel {
		t.define(token.Math, string(r), GroupRel)
	}

	for r := 'a'; r <= 'z'; r++ {
		t.define(token.Math, string(r), GroupMathOrd)
		t.define(token.Text, string(r), GroupTextOrd)
	}
	for r := 'A'; r <= 'Z'; r++ {
		t.define(token.Math, string(r), GroupMathOrd)
		t.define(token.Text, string(r), GroupTextOrd)
	}
	for r := '0'; r <= '9'; r++ {
		t.define(token.Math, string(r), GroupMathOrd)
		t.define(token.Text, string(r), GroupTextOrd)
	}

	textPunct := " .!?'\"-"
	for _, r := range textPunct {
		t.define(token.Text, string(r), GroupTextOrd)
	}

	t.define(token.Math, `\prime`, GroupMathOrd)
	t.define(token.Math, "ı", GroupMathOrd)
	t.define(token.Math, "ȷ", GroupMathOrd)

	return t
}
