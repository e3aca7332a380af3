package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShell drives a math-module shell with the given stdin content and
// returns what the shell wrote and what the printer node printed.
func runShell(t *testing.T, input string, opts ...cli.Option) (string, string) {
	t.Helper()

	engine, printed := testutils.NewMathEngine(t)
	var out bytes.Buffer
	opts = append(opts, cli.WithIO(strings.NewReader(input), &out))

	sh, err := cli.New(engine, "math", opts...)
	require.NoError(t, err, "failed to create shell")
	require.NoError(t, sh.Run(context.Background()), "shell run failed")
	return out.String(), printed.String()
}

func TestNewRejectsUnknownModule(t *testing.T) {
	engine, _ := testutils.NewMathEngine(t)

	_, err := cli.New(engine, "audio")
	require.ErrorIs(t, err, graft.ErrUnknownModule)
}

func TestShellScriptedDemo(t *testing.T) {
	out, printed := runShell(t, "evaluate\nexit\n",
		cli.WithScript(cli.SplitScript(cli.DemoScript)))

	assert.Equal(t, "12 -2\n", printed)
	assert.Contains(t, out, "> ", "prompt should appear after the script ran")
	assert.NotContains(t, out, "error:")
}

func TestShellTypesTable(t *testing.T) {
	out, _ := runShell(t, "types\nexit\n")

	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "binop")
	assert.Contains(t, out, "Binary Operation")
	assert.Contains(t, out, "[operator_name]")
	assert.Contains(t, out, "[value]")
}

func TestShellCreateAndNodes(t *testing.T) {
	out, _ := runShell(t, "create v1 constant 5\nnodes\nexit\n")

	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "Constant")
	assert.Contains(t, out, "{} -> {out: []}")
}

func TestShellConnectShowsUpInNodes(t *testing.T) {
	input := strings.Join([]string{
		"create v1 constant 5",
		"create p1 printer",
		"connect v1.out p1.in",
		"nodes",
		"exit",
	}, "\n") + "\n"
	out, _ := runShell(t, input)

	assert.Contains(t, out, "{out: [p1.in]}")
	assert.Contains(t, out, "{in: [v1.out]} -> {}")
}

func TestShellErrorsKeepRunning(t *testing.T) {
	input := "create\ncreate x nope\ntypes\nexit\n"
	out, _ := runShell(t, input)

	assert.Contains(t, out, "error: usage: create <id> <type> [value ...]")
	assert.Contains(t, out, `error: unknown type "nope"`)
	assert.Contains(t, out, "Binary Operation", "shell should keep serving after errors")
}

func TestShellCreateRejectsExtraArguments(t *testing.T) {
	out, _ := runShell(t, "create v1 constant 5 6\nexit\n")

	assert.Contains(t, out, "error: too many arguments (expected at most 1)")
}

func TestShellCreateRejectsBadValue(t *testing.T) {
	out, _ := runShell(t, "create v1 constant five\nexit\n")

	assert.Contains(t, out, "error: argument 1 (value):")
}

func TestShellUnknownCommand(t *testing.T) {
	out, _ := runShell(t, "frobnicate\nexit\n")

	assert.Contains(t, out, "unknown command: frobnicate (try help)")
}

func TestShellCheckAndRemove(t *testing.T) {
	input := strings.Join([]string{
		"create v1 constant 5",
		"create p1 printer",
		"connect v1.out p1.in",
		"check",
		"remove v1",
		"check",
		"exit",
	}, "\n") + "\n"
	out, _ := runShell(t, input)

	assert.Contains(t, out, "graph ok")
	assert.Contains(t, out, "error: found 1 errors")
	assert.Contains(t, out, "node not in graph")
}

func TestShellGraphOverlay(t *testing.T) {
	out, _ := runShell(t, "evaluate\ngraph\nexit\n",
		cli.WithScript(cli.SplitScript(cli.DemoScript)))

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `v1 -- "out → a" --> a1`)
	assert.Contains(t, out, "classDef evaluated")
	assert.Contains(t, out, "class p1 evaluated;")
}

func TestShellGenerate(t *testing.T) {
	out, _ := runShell(t, "generate\nexit\n")

	assert.Contains(t, out, `LiteGraph.registerNodeType("math/binop", binop);`)
}

func TestShellReset(t *testing.T) {
	input := "create v1 constant 5\nreset\nnodes\nexit\n"
	out, _ := runShell(t, input)

	assert.Contains(t, out, "graph cleared")
	assert.NotContains(t, out, "{} -> {out: []}", "nodes table should be empty after reset")
}

func TestShellMarkdownRenderer(t *testing.T) {
	render := func(md string) (string, error) { return "MD\n" + md, nil }
	out, _ := runShell(t, "types\nexit\n", cli.WithRenderer(render))

	assert.Contains(t, out, "MD\n| Category | Type id | Type name | Properties |")
}

func TestShellEOFExits(t *testing.T) {
	out, _ := runShell(t, "types\n")

	assert.Contains(t, out, "binop")
}

func TestShellContextCancelExits(t *testing.T) {
	engine, _ := testutils.NewMathEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh, err := cli.New(engine, "math", cli.WithIO(blockingReader{}, &out))
	require.NoError(t, err)
	require.NoError(t, sh.Run(ctx))
}

// blockingReader never returns; the interruptible wrapper must bail
// before the first read when the context is already cancelled.
type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestSplitScript(t *testing.T) {
	lines := cli.SplitScript("\n  create v1 constant 5  \n\nexit\n")

	assert.Equal(t, []string{"create v1 constant 5", "exit"}, lines)
}
