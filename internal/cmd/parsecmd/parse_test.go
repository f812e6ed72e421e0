package parsecmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonEnvelope mirrors jsonResult's shape with untyped nodes, since
// ast.Node is an interface and can't be unmarshaled back into directly
// — these tests only need to inspect the serialized JSON shape, not
// reconstruct live nodes.
type jsonEnvelope struct {
	Nodes       []map[string]interface{} `json:"nodes"`
	Diagnostics []map[string]interface{} `json:"diagnostics"`
}

func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := &cobra.Command{Use: "test"}
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	return cmd, &out, &errBuf
}

func TestRunParseSimpleExpression(t *testing.T) {
	cmd, out, _ := newTestCmd(t)
	opts := &parseOptions{noColor: true}

	err := runParse(cmd, "x+y", opts)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `MathOrd "x"`)
}

func TestRunParseTextModeWrapsInput(t *testing.T) {
	cmd, out, _ := newTestCmd(t)
	opts := &parseOptions{noColor: true, textMode: true}

	err := runParse(cmd, "a--b", opts)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"--"`)
}

func TestRunParseUndefinedCommandThrows(t *testing.T) {
	cmd, _, errBuf := newTestCmd(t)
	opts := &parseOptions{noColor: true, throw: true}

	err := runParse(cmd, `\bogus`, opts)
	require.Error(t, err)
	assert.Contains(t, errBuf.String(), "Undefined control sequence")
}

func TestRunParseStatsFlagPrintsSummary(t *testing.T) {
	cmd, _, errBuf := newTestCmd(t)
	opts := &parseOptions{noColor: true, stats: true}

	err := runParse(cmd, "x+y", opts)
	require.NoError(t, err)
	assert.Contains(t, errBuf.String(), "parsed")
	assert.Contains(t, errBuf.String(), "top-level node(s)")
}

func TestNewCmdParseHasStatsFlag(t *testing.T) {
	cmd := NewCmdParse()
	flag := cmd.Flags().Lookup("stats")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNewCmdParseHasOutputFlagDefaultingToText(t *testing.T) {
	cmd := NewCmdParse()
	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}

func TestRunParseJSONOutputProducesStructuredTree(t *testing.T) {
	cmd, out, _ := newTestCmd(t)
	opts := &parseOptions{noColor: true, output: "json"}

	err := runParse(cmd, "x+y", opts)
	require.NoError(t, err)

	var result jsonEnvelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Nodes, 3)
	assert.Equal(t, "mathord", result.Nodes[0]["type"])
	assert.Empty(t, result.Diagnostics)
}

func TestRunParseJSONOutputCollectsDiagnostics(t *testing.T) {
	cmd, out, errBuf := newTestCmd(t)
	opts := &parseOptions{noColor: true, output: "json"}

	err := runParse(cmd, "ñ", opts)
	require.NoError(t, err)
	assert.Empty(t, errBuf.String())

	var result jsonEnvelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, "unicodeTextInMathMode", result.Diagnostics[0]["kind"])
}

func TestRunParseJSONOutputOnParseError(t *testing.T) {
	cmd, out, _ := newTestCmd(t)
	opts := &parseOptions{noColor: true, output: "json", throw: true}

	err := runParse(cmd, `\bogus`, opts)
	require.Error(t, err)

	var result jsonError
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.NotNil(t, result.Error)
	assert.Contains(t, result.Error.Message, "Undefined control sequence")
}
