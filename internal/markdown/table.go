package markdown

import "strings"

// SplitTableRow splits a pipe-table row ("| A | B | C |") into trimmed
// cell values. A backslash-escaped pipe (`\|`) is a literal pipe inside a
// cell, never a delimiter. A backslash before any other character is kept
// as-is.
func SplitTableRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	trimmed = strings.TrimLeft(trimmed, "|")
	trimmed = strings.TrimRight(trimmed, "|")

	var cells []string
	var cur strings.Builder
	runes := []rune(trimmed)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; {
		case c == '\\' && i+1 < len(runes) && runes[i+1] == '|':
			cur.WriteRune('|')
			i++
		case c == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}
