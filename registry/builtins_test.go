package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuiltinFunctionsRegistersInfixFamily(t *testing.T) {
	tbl := NewBuiltinFunctions()

	for _, name := range []string{`\over`, `\atop`, `\choose`, `\above`} {
		spec, ok := tbl.Get(name)
		require.True(t, ok, name)
		assert.True(t, spec.Infix, name)
		assert.NotEmpty(t, spec.ReplaceWith, name)
	}

	over, _ := tbl.Get(`\over`)
	assert.Equal(t, `\frac`, over.ReplaceWith)

	choose, _ := tbl.Get(`\choose`)
	assert.Equal(t, `\binom`, choose.ReplaceWith)

	above, _ := tbl.Get(`\above`)
	assert.Equal(t, `\abovefrac`, above.ReplaceWith)
	assert.Equal(t, ArgSize, above.ArgType(0))
}

func TestNewBuiltinFunctionsFracNotAllowedInText(t *testing.T) {
	tbl := NewBuiltinFunctions()
	frac, ok := tbl.Get(`\frac`)
	require.True(t, ok)
	assert.False(t, frac.AllowedInText)
	assert.Equal(t, 2, frac.NumArgs)
}

func TestNewBuiltinFunctionsSqrtHasOptionalIndex(t *testing.T) {
	tbl := NewBuiltinFunctions()
	sqrt, ok := tbl.Get(`\sqrt`)
	require.True(t, ok)
	assert.Equal(t, 1, sqrt.NumArgs)
	assert.Equal(t, 1, sqrt.NumOptionalArgs)
}

func TestNewBuiltinFunctionsAccentsRegistered(t *testing.T) {
	tbl := NewBuiltinFunctions()
	for _, a := range mathAccents {
		_, ok := tbl.Get(a.name)
		assert.True(t, ok, a.name)
	}
}

func TestNewBuiltinFunctionsURLAndHBoxArgTypes(t *testing.T) {
	tbl := NewBuiltinFunctions()
	url, ok := tbl.Get(`\url`)
	require.True(t, ok)
	assert.Equal(t, ArgURL, url.ArgType(0))

	hbox, ok := tbl.Get(`\hbox`)
	require.True(t, ok)
	assert.Equal(t, ArgHBox, hbox.ArgType(0))
}
