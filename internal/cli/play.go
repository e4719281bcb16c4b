package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

var playCmd = &cobra.Command{
	Use:   "play [notation...]",
	Short: "Step through a sequence interactively",
	Long: `Open an interactive player that applies a sequence one move at a time and
shows the cube net, the permutation's order and its cycles after each step.

Keys:
  SPACE/p   play or pause
  n/right   step forward
  b/left    step back
  r         rewind to the start
  f         show or hide fixed facelets
  +/-       change speed
  q/Esc     quit

With no arguments the demo scramble is played.`,
	RunE: runPlay,
}

var (
	playInterval time.Duration
	playExpand   bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().DurationVarP(&playInterval, "interval", "i", 0, "Delay between moves while playing (default from player.interval)")
	playCmd.Flags().BoolVarP(&playExpand, "expand", "x", false, "Play half turns as two quarter turns")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var moves []gocube.Move
	var err error
	if len(args) == 0 {
		moves = gocube.MustTokenize(gocube.DemoScramble)
	} else if moves, err = readMoves(cmd, args); err != nil {
		return err
	}

	interval := cfg.Player.Interval
	if playInterval > 0 {
		interval = playInterval
	}
	expand := cfg.Player.ExpandDoubles
	if cmd.Flags().Changed("expand") {
		expand = playExpand
	}
	if expand {
		moves = gocube.ExpandDoubles(moves)
	}

	model := newPlayModel(moves, interval, cfg.Cycles.IncludeFixed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player error: %w", err)
	}
	return nil
}

// maxCycleRows bounds the cycle panel height.
const maxCycleRows = 12

// playModel steps a cube through a fixed sequence.
type playModel struct {
	moves    []gocube.Move
	pos      int // number of moves applied
	cube     *gocube.Cube
	interval time.Duration
	playing  bool
	fixed    bool
	gen      int // invalidates ticks from an earlier play run
	quitting bool
}

type playTickMsg struct{ gen int }

func newPlayModel(moves []gocube.Move, interval time.Duration, showFixed bool) *playModel {
	return &playModel{
		moves:    moves,
		cube:     gocube.NewCube(),
		interval: interval,
		fixed:    showFixed,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

// seek rebuilds the cube state after the first n moves.
func (m *playModel) seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(m.moves) {
		n = len(m.moves)
	}
	m.cube.Reset()
	m.cube.Apply(m.moves[:n]...)
	m.pos = n
}

func (m *playModel) step() bool {
	if m.pos >= len(m.moves) {
		return false
	}
	m.cube.ApplyMove(m.moves[m.pos])
	m.pos++
	return true
}

func (m *playModel) back() {
	if m.pos == 0 {
		return
	}
	m.pos--
	// Undo the last move by applying its inverse.
	m.cube.ApplyMove(m.moves[m.pos].Inverse())
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "p":
			m.playing = !m.playing
			m.gen++
			if m.playing {
				if m.pos >= len(m.moves) {
					m.seek(0)
				}
				return m, m.tick()
			}

		case "n", "right":
			m.playing = false
			m.step()

		case "b", "left":
			m.playing = false
			m.back()

		case "r":
			m.playing = false
			m.seek(0)

		case "f":
			m.fixed = !m.fixed

		case "+", "=":
			m.interval /= 2
			if m.interval < 50*time.Millisecond {
				m.interval = 50 * time.Millisecond
			}

		case "-":
			m.interval *= 2
			if m.interval > 5*time.Second {
				m.interval = 5 * time.Second
			}
		}

	case playTickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		if !m.step() || m.pos >= len(m.moves) {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	p := m.cube.Permutation()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Permutation Player"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Move %d/%d", m.pos, len(m.moves))
	if m.playing {
		status += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString(fmt.Sprintf(" (%s per move)\n", m.interval))

	if len(m.moves) > 0 {
		b.WriteString(renderMoves(m.moves, m.pos-1))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	stats := fmt.Sprintf("%s %d\n%s %d/%d\n%s %s",
		labelStyle.Render("Order:"), gocube.Order(p),
		labelStyle.Render("Moved:"), gocube.MovedCount(p), gocube.Size,
		labelStyle.Render("Solved:"), yesNo(p.IsIdentity()))

	left := lipgloss.JoinVertical(lipgloss.Left, renderNet(m.cube), "", stats)
	right := panelStyle.Render(m.cyclePanel(p))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("SPACE/p=play  n=next  b=back  r=rewind  f=fixed  +/-=speed  q=quit"))
	b.WriteString("\n")
	return b.String()
}

// cyclePanel lists the current cycles, longest first.
func (m *playModel) cyclePanel(p gocube.Perm) string {
	cycles := gocube.SortLongestFirst(gocube.CyclesOf(p, m.fixed))
	if len(cycles) == 0 {
		return statusStyle.Render("identity")
	}

	lines := []string{labelStyle.Render(fmt.Sprintf("Cycles (%d)", len(cycles)))}
	for i, c := range cycles {
		if i == maxCycleRows {
			lines = append(lines, statusStyle.Render(fmt.Sprintf("... %d more", len(cycles)-maxCycleRows)))
			break
		}
		lines = append(lines, fmt.Sprintf("%d: %s", c.Len(), strings.Join(c.Labels(), " ")))
	}
	return strings.Join(lines, "\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
