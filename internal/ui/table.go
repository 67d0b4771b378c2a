package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with nvh styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header row plus its bottom border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is selectable; keep the first row looking like the rest.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a static table for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// RenderKeyValue renders label/value pairs as a two-column table sized to
// the longest entry in each column.
func RenderKeyValue(keyTitle, valueTitle string, pairs [][2]string) string {
	keyWidth := lipgloss.Width(keyTitle)
	valueWidth := lipgloss.Width(valueTitle)
	rows := make([][]string, len(pairs))

	for i, p := range pairs {
		keyWidth = max(keyWidth, lipgloss.Width(p[0]))
		valueWidth = max(valueWidth, lipgloss.Width(p[1]))
		rows[i] = []string{p[0], p[1]}
	}

	return RenderSimpleTable([]TableColumn{
		{Title: keyTitle, Width: keyWidth},
		{Title: valueTitle, Width: valueWidth},
	}, rows)
}
