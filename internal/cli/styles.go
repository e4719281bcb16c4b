package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// stickerColors maps cube colors to terminal colors.
var stickerColors = map[gocube.Color]lipgloss.Color{
	gocube.White:  lipgloss.Color("255"),
	gocube.Yellow: lipgloss.Color("226"),
	gocube.Orange: lipgloss.Color("208"),
	gocube.Red:    lipgloss.Color("196"),
	gocube.Green:  lipgloss.Color("40"),
	gocube.Blue:   lipgloss.Color("27"),
}

func sticker(c gocube.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(stickerColors[c]).
		Render(" " + c.String() + " ")
}

// renderNet draws the unfolded cube with colored stickers:
//
//	  U
//	L F R B
//	  D
func renderNet(c *gocube.Cube) string {
	grids := make(map[gocube.Face][3][3]gocube.Color, gocube.NumFaces)
	for _, f := range gocube.Faces {
		grids[f] = c.FaceColors(f)
	}

	row := func(f gocube.Face, r int) string {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(grids[f][r][col]))
		}
		return b.String()
	}

	indent := strings.Repeat(" ", 9)
	var lines []string
	for r := 0; r < 3; r++ {
		lines = append(lines, indent+row(gocube.FaceU, r))
	}
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for _, f := range []gocube.Face{gocube.FaceL, gocube.FaceF, gocube.FaceR, gocube.FaceB} {
			b.WriteString(row(f, r))
		}
		lines = append(lines, b.String())
	}
	for r := 0; r < 3; r++ {
		lines = append(lines, indent+row(gocube.FaceD, r))
	}
	return strings.Join(lines, "\n")
}

// renderMoves renders a sequence with the move at current highlighted.
// Pass current < 0 to highlight nothing.
func renderMoves(moves []gocube.Move, current int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		if i == current {
			parts[i] = currentMoveStyle.Render(m.Notation())
		} else {
			parts[i] = moveStyle.Render(m.Notation())
		}
	}
	return strings.Join(parts, " ")
}
