package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_perm"
	"github.com/SeamusWaldron/gocube_perm/internal/protocol"
)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with an isolated home directory and catalog.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GOCUBE_PERM_CONFIG", "")
	t.Setenv("GOCUBE_PERM_DATABASE_PATH", filepath.Join(home, "algs.db"))
	t.Cleanup(func() { gocube.SetLogger(nil) })

	return run(stdin, args...)
}

func run(stdin string, args ...string) (string, error) {
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPermJSON(t *testing.T) {
	out, err := execute(t, "", "perm", "--json", "R", "U", "R'", "U'")
	require.NoError(t, err)

	var s permSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "R U R' U'", s.Notation)
	assert.Equal(t, 4, s.Moves)
	assert.Equal(t, 4, s.QuarterTurns)
	assert.Equal(t, 6, s.Order)
	assert.Equal(t, 1, s.Parity)
	assert.Len(t, s.Permutation, gocube.Size)

	want := gocube.ComposeMoves(gocube.SexyMove)
	assert.Equal(t, want.Slice(), s.Permutation)
	assert.Equal(t, gocube.MovedCount(want), s.Moved)
}

func TestPermFromStdin(t *testing.T) {
	out, err := execute(t, "F R U L D' F B' R U\n", "perm")
	require.NoError(t, err)
	assert.Contains(t, out, "F R U L D' F B' R U")
	assert.Contains(t, out, "Order:")
}

func TestPermSingleQuarterTurn(t *testing.T) {
	out, err := execute(t, "", "perm", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "4^5 1^28")
	assert.Contains(t, out, "odd")
	assert.Contains(t, out, "20 of 48")
}

func TestPermRejectsBadNotation(t *testing.T) {
	_, err := execute(t, "", "perm", "R", "Q")
	require.Error(t, err)
	assert.ErrorIs(t, err, gocube.ErrInvalidNotation)
}

func TestPermNet(t *testing.T) {
	out, err := execute(t, "", "perm", "--net", "")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, " W ")
}

func TestInvertExpandSimplify(t *testing.T) {
	out, err := execute(t, "", "invert", "R U F'")
	require.NoError(t, err)
	assert.Equal(t, "F U' R'\n", out)

	out, err = run("", "expand", "R2 U")
	require.NoError(t, err)
	assert.Equal(t, "R R U\n", out)

	out, err = run("", "simplify", "R R R U U'")
	require.NoError(t, err)
	assert.Equal(t, "R'\n", out)
}

func TestCycles(t *testing.T) {
	out, err := execute(t, "", "cycles", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "4-cycles (5)")
	assert.NotContains(t, out, "1-cycles")
	assert.Contains(t, out, "order: 4")

	out, err = run("", "cycles", "--fixed", "--labels", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "1-cycles (28)")
	assert.Contains(t, out, "F(0,2)")

	out, err = run("", "cycles", "")
	require.NoError(t, err)
	assert.Contains(t, out, "identity")
}

func TestAlgsLifecycle(t *testing.T) {
	out, err := execute(t, "", "algs", "add", "tperm", "R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	assert.Contains(t, out, "order 2")

	out, err = run("", "algs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "tperm")
	assert.Contains(t, out, "NOTATION")

	out, err = run("", "perm", "--json", "@tperm")
	require.NoError(t, err)
	var s permSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 2, s.Order)

	_, err = run("", "algs", "show", "tprem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean tperm")

	out, err = run("", "algs", "rm", "tperm")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed tperm")

	out, err = run("", "algs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No algorithms stored")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gocube-perm "+version)
}

func TestFormatCycleType(t *testing.T) {
	assert.Equal(t, "4^5 1^28", formatCycleType(map[int]int{1: 28, 4: 5}))
	assert.Equal(t, "", formatCycleType(nil))
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelStepping(t *testing.T) {
	moves := gocube.SexyMove
	m := newPlayModel(moves, 100*time.Millisecond, false)

	m.Update(key("n"))
	m.Update(key("right"))
	assert.Equal(t, 2, m.pos)
	assert.Equal(t, gocube.ComposeMoves(moves[:2]), m.cube.Permutation())

	m.Update(key("b"))
	assert.Equal(t, 1, m.pos)
	assert.Equal(t, gocube.R.Perm(), m.cube.Permutation())

	m.Update(key("left"))
	m.Update(key("left"))
	assert.Equal(t, 0, m.pos)
	assert.True(t, m.cube.IsSolved())

	for i := 0; i < 10; i++ {
		m.Update(key("n"))
	}
	assert.Equal(t, len(moves), m.pos)
	assert.Equal(t, gocube.ComposeMoves(moves), m.cube.Permutation())

	m.Update(key("r"))
	assert.Equal(t, 0, m.pos)
	assert.True(t, m.cube.IsSolved())
}

func TestPlayModelPlayback(t *testing.T) {
	m := newPlayModel(gocube.MustTokenize("R U"), time.Second, false)

	_, cmd := m.Update(key(" "))
	require.NotNil(t, cmd)
	assert.True(t, m.playing)

	// A tick from an older run is ignored.
	m.Update(playTickMsg{gen: m.gen - 1})
	assert.Equal(t, 0, m.pos)

	_, cmd = m.Update(playTickMsg{gen: m.gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.pos)

	_, cmd = m.Update(playTickMsg{gen: m.gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.pos)
	assert.False(t, m.playing)
}

func TestPlayModelSpeedAndView(t *testing.T) {
	m := newPlayModel(gocube.SexyMove, 400*time.Millisecond, false)
	m.Update(key("+"))
	assert.Equal(t, 200*time.Millisecond, m.interval)
	m.Update(key("-"))
	m.Update(key("-"))
	assert.Equal(t, 800*time.Millisecond, m.interval)

	view := m.View()
	assert.Contains(t, view, "Move 0/4")
	assert.Contains(t, view, "identity")

	m.Update(key("n"))
	view = m.View()
	assert.Contains(t, view, "Move 1/4")
	assert.Contains(t, view, "Cycles (5)")

	m.Update(key("f"))
	assert.Contains(t, m.View(), "Cycles (33)")

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestDecodeFrames(t *testing.T) {
	rotation := protocol.Build(protocol.MsgTypeRotation, []byte{0x04, 0x00})
	battery := protocol.Build(protocol.MsgTypeBattery, []byte{42})

	out, err := execute(t, "", "decode", hex.EncodeToString(rotation), base64.StdEncoding.EncodeToString(battery))
	require.NoError(t, err)
	assert.Equal(t, "rotation: U cw (white)\nbattery: 42%\n", out)

	out, err = run("% X\n"+"zz\n", "decode")
	require.Error(t, err)
	assert.Contains(t, out, "not hex or base64")
	assert.Contains(t, err.Error(), "2 frame(s)")
}
