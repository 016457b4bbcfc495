package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 7

// tileColors maps tile values to background colors, roughly following the
// classic palette from pale to orange to red.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("223"),
	8:    lipgloss.Color("216"),
	16:   lipgloss.Color("215"),
	32:   lipgloss.Color("209"),
	64:   lipgloss.Color("202"),
	128:  lipgloss.Color("221"),
	256:  lipgloss.Color("220"),
	512:  lipgloss.Color("178"),
	1024: lipgloss.Color("172"),
	2048: lipgloss.Color("166"),
}

var (
	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(1, 3).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value. Values beyond 2048 reuse the
// hottest color.
func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = tileColors[2048]
	}
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(color).
		Foreground(lipgloss.Color("235"))
	if value >= 8 {
		style = style.Bold(true)
	}
	return style
}

// render draws the full game screen: HUD, board, overlays and help.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if overlay := m.renderOverlay(); overlay != "" {
		b.WriteString(overlay)
		b.WriteString("\n")
	}

	if m.cfg.UI.ShowHelp {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}

	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(b.String())
	}
	return b.String()
}

// renderHUD draws the title, score and best score.
func (m Model) renderHUD() string {
	v := m.session.Variant()
	title := titleStyle.Render(v.Title)
	score := hudStyle.Render(fmt.Sprintf("Score: %d   Best: %d", m.session.Score(), m.session.Best()))
	return title + "\n" + score
}

// renderBoard draws the grid with one styled block per cell. The most
// recently spawned tile is underlined for one move.
func (m Model) renderBoard() string {
	size := m.session.Variant().GridSize

	values := make([][]int, size)
	spawned := make([][]bool, size)
	for r := range values {
		values[r] = make([]int, size)
		spawned[r] = make([]bool, size)
	}
	for _, t := range m.session.Tiles() {
		values[t.Row][t.Col] = t.Value
		if m.lastSpawn != 0 && t.ID == m.lastSpawn {
			spawned[t.Row][t.Col] = true
		}
	}

	rows := make([]string, size)
	for r := range size {
		cells := make([]string, size)
		for c := range size {
			cells[c] = renderCell(values[r][c], spawned[r][c])
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return boardStyle.Render(strings.Join(rows, "\n"))
}

func renderCell(value int, isSpawn bool) string {
	if value == 0 {
		return emptyCellStyle.Render("·")
	}
	style := tileStyle(value)
	if isSpawn {
		style = style.Underline(true)
	}
	return style.Render(strconv.Itoa(value))
}

// renderOverlay draws the win or game-over banner, or nothing.
func (m Model) renderOverlay() string {
	switch {
	case m.session.Over():
		return overlayStyle.Render(fmt.Sprintf(
			"GAME OVER\nScore: %d  Max tile: %d\nR restart, Q quit",
			m.session.Score(), m.session.MaxTile(),
		))
	case m.session.Won() && !m.session.KeepGoing():
		return overlayStyle.Render(fmt.Sprintf(
			"YOU WIN!\nReached %d\nC keep going, R restart, Q quit",
			m.session.Variant().WinTarget,
		))
	}
	return ""
}

// WindowTooSmall reports whether the board fits the given terminal size.
func WindowTooSmall(gridSize, width, height int) bool {
	needW := gridSize*cellWidth + 4
	needH := gridSize + 8
	return width > 0 && height > 0 && (width < needW || height < needH)
}
