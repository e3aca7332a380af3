package cli

import (
	"fmt"
	"io"
	"strings"
)

// printTable writes header and rows as a markdown table through the
// renderer when one is set, falling back to plain aligned columns.
func (s *Shell) printTable(header []string, rows [][]string) {
	if s.render != nil {
		if out, err := s.render(markdownTable(header, rows)); err == nil {
			fmt.Fprint(s.out, out)
			return
		}
	}
	plainTable(s.out, header, rows)
}

func markdownTable(header []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return sb.String()
}

func plainTable(w io.Writer, header []string, rows [][]string) {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)

	widths := make([]int, len(header))
	for _, row := range all {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range all {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
		}
		fmt.Fprintln(w, strings.Join(cells, ""))
	}
}
