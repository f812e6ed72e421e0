package docscmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCommandMarkdownByDefault(t *testing.T) {
	cmd := NewCmdDocs()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "| Name | Args |")
	assert.Contains(t, out.String(), `\frac`)
}

func TestDocsCommandHTML(t *testing.T) {
	cmd := NewCmdDocs()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("html", "true"))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "<table>")
}
