package ui

import (
	"strings"
	"testing"

	"librarium/internal/book"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected substring %q in:\n%s", sub, s)
	}
}

func TestRenderTable(t *testing.T) {
	e, err := book.NewEBook("Clean Code", "Robert C. Martin", 2008, 4.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := book.NewPrintedBook("The Pragmatic Programmer", "Andy Hunt", 1999, 352)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := renderTable([]book.Record{e, p})

	mustContain(t, out, "Type")
	mustContain(t, out, "Title")
	mustContain(t, out, "Detail")
	mustContain(t, out, "Clean Code")
	mustContain(t, out, "File size: 4.5 MB")
	mustContain(t, out, "Pages: 352")
	mustContain(t, out, "2 book(s) total")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header, separator, two rows, summary
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	// Row numbers are one-based so they match the delete prompt.
	if !strings.HasPrefix(lines[2], "1") || !strings.HasPrefix(lines[3], "2") {
		t.Errorf("rows must be numbered from 1:\n%s", out)
	}
}

func TestRenderTableWidensColumns(t *testing.T) {
	long, err := book.NewPrintedBook("An Extremely Long Title For Width Checks", "A", 2001, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := renderTable([]book.Record{long})
	header := strings.SplitN(out, "\n", 2)[0]
	row := strings.Split(out, "\n")[2]
	if len([]rune(header)) != len([]rune(row)) {
		t.Errorf("header and row widths must line up:\nheader: %q\nrow:    %q", header, row)
	}
}
