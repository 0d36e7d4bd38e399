package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

func testREPL(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	cfg := sapling.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.Debug = true
	var out bytes.Buffer
	return newREPL(cfg, &out, nil), &out
}

func playREPL(t *testing.T, lines ...string) string {
	t.Helper()
	r, out := testREPL(t)
	require.NoError(t, r.run(strings.NewReader(strings.Join(lines, "\n")+"\n")))
	return out.String()
}

func TestREPLSearchAndTraverse(t *testing.T) {
	out := playREPL(t,
		"insert 25",
		"search 25",
		"inorder",
		"traverse level",
		"quit",
	)
	require.Contains(t, out, "    R 30\n      L 25")
	require.Contains(t, out, "  visit 25\nNode 25 found!")
	require.Contains(t, out, "Traversal Order: 10 → 20 → 25 → 30 → 40 → 50 → 60")
	require.Contains(t, out, "Traversal Order: 40 → 20 → 60 → 10 → 30 → 50 → 25")
	require.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestREPLInsertSeveral(t *testing.T) {
	r, out := testREPL(t)
	require.True(t, r.handleCommand("insert 5 45 5 70"))
	require.Contains(t, out.String(), "Node 5 is already present")
	require.True(t, r.vis.Tree().Contains(45))
	require.False(t, r.vis.Tree().Contains(70), "insertion stops at the first failure")
}

func TestREPLDeletePrintsTreeAfterAnimation(t *testing.T) {
	out := playREPL(t, "insert 25", "delete 20")
	i := strings.Index(out, "Node 20 deleted")
	require.GreaterOrEqual(t, i, 0, out)
	require.Contains(t, out[i:], "40\n  L 25\n    L 10\n    R 30\n  R 60\n    L 50")
}

func TestREPLErrors(t *testing.T) {
	out := playREPL(t,
		"insert abc",
		"insert",
		"delete 99",
		"search",
		"traverse sideways",
		"traverse",
		"drag 60 x 1",
		"drag 99 1 1",
		"frobnicate",
	)
	for _, want := range []string{
		"Please enter a valid number\n",
		"Node not found\n",
		"Node 99 not found!",
		"Please enter a valid number to search",
		`unknown traversal order "sideways"`,
		"usage: traverse <in|pre|post|level>",
		"usage: drag <key> <x> <y>",
		"Unknown command: frobnicate",
	} {
		require.Contains(t, out, want)
	}
	require.Equal(t, 1, strings.Count(out, "Node 99 not found!"), "only drag reports the key")
}

func TestREPLClearReset(t *testing.T) {
	r, out := testREPL(t)
	r.handleCommand("clear")
	require.True(t, r.vis.Tree().Empty())
	require.Contains(t, out.String(), "Tree cleared")

	r.handleCommand("inorder")
	require.Contains(t, out.String(), "Tree is empty")

	r.handleCommand("reset")
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, r.vis.Tree().Keys())
}

func TestREPLLayoutAndDrag(t *testing.T) {
	r, out := testREPL(t)
	r.handleCommand("layout")
	table := out.String()
	require.Contains(t, table, "DEPTH")
	require.Contains(t, table, "650")
	require.Contains(t, table, "812.5")

	out.Reset()
	r.handleCommand("drag 60 1000 400")
	require.Contains(t, out.String(), "Node 60 moved to (1000, 400)")
	id, err := r.vis.Tree().Find(60)
	require.NoError(t, err)
	p, _ := r.vis.Tree().Position(id)
	require.Equal(t, sapling.Vec2{X: 1000, Y: 400}, p)

	out.Reset()
	r.handleCommand("clear")
	r.handleCommand("layout")
	require.Contains(t, out.String(), "(empty)")
}

func TestREPLEOF(t *testing.T) {
	r, out := testREPL(t)
	require.NoError(t, r.run(strings.NewReader("help\n\n")))
	require.Contains(t, out.String(), "traverse <order>")
	require.Equal(t, 3, strings.Count(out.String(), "sapling> "))
}
