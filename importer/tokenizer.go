package importer

import "strings"

// TokenizeLine splits one line of spreadsheet CSV into cells.
//
// A double quote toggles quoted mode, except that "" inside quotes yields a
// literal quote. Commas separate cells only outside quotes. Malformed input
// never fails: an unterminated quote simply runs to the end of the line.
func TokenizeLine(line string) []string {
	cells := make([]string, 0, 16)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	return append(cells, current.String())
}

// Tokenize splits text into lines, drops blank ones and tokenizes the rest.
// Fewer than two non-blank lines (header plus one row) yields no rows.
// Cells cannot span lines.
func Tokenize(text string) [][]string {
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return nil
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = TokenizeLine(line)
	}
	return rows
}

func nonBlankLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
