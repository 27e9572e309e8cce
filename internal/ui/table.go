package ui

import (
	"fmt"
	"strconv"
	"strings"

	"librarium/internal/book"
)

var tableHeaders = []string{"#", "Type", "Title", "Author", "Year", "Detail"}

// renderTable formats records as a fixed-width table. Row numbers are
// one-based: they double as the selection index for deletion.
func renderTable(records []book.Record) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.TypeLabel(),
			r.Title(),
			r.Author(),
			strconv.Itoa(r.Year()),
			book.Detail(r),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n")
	}

	writeRow(tableHeaders)
	total := len(widths)*3 - 3
	for _, w := range widths {
		total += w
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	sb.WriteString(fmt.Sprintf("%d book(s) total\n", len(records)))
	return sb.String()
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
