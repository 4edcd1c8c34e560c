package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jankreimeier/sudoku/internal/board"
)

var (
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	digitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// renderBoard draws a validated board string as a bordered terminal grid.
func renderBoard(board81 string) string {
	var sb strings.Builder
	line := frameStyle.Render("+-------+-------+-------+")

	sb.WriteString(line)
	sb.WriteByte('\n')
	for row := 0; row < 9; row++ {
		sb.WriteString(frameStyle.Render("| "))
		for col := 0; col < 9; col++ {
			ch := board81[board.MakePos(row, col)]
			if ch == board.Blank {
				sb.WriteString(blankStyle.Render("."))
			} else {
				sb.WriteString(digitStyle.Render(string(ch)))
			}
			sb.WriteByte(' ')
			if (col+1)%3 == 0 {
				sb.WriteString(frameStyle.Render("| "))
			}
		}
		sb.WriteByte('\n')
		if (row+1)%3 == 0 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
