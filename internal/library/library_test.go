package library

import (
	"errors"
	"os"
	"testing"

	"librarium/internal/book"
	"librarium/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Quiet()
	os.Exit(m.Run())
}

func mustEBook(t *testing.T, title, author string, year int, size float64) *book.EBook {
	t.Helper()
	r, err := book.NewEBook(title, author, year, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func mustPrinted(t *testing.T, title, author string, year, pages int) *book.PrintedBook {
	t.Helper()
	r, err := book.NewPrintedBook(title, author, year, pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestAddAppendsInOrder(t *testing.T) {
	c := New()
	first := mustEBook(t, "Dune", "Frank Herbert", 1965, 1.8)
	second := mustPrinted(t, "Dune Messiah", "Frank Herbert", 1969, 256)

	if err := c.Add(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Add(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := c.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0] != book.Record(first) || got[1] != book.Record(second) {
		t.Errorf("records out of insertion order: %v", got)
	}
}

func TestAddRejectsNil(t *testing.T) {
	c := New()
	err := c.Add(nil)
	var verr *book.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if c.Len() != 0 {
		t.Errorf("collection must stay empty, got %d", c.Len())
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	c := New()
	got := c.List()
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestListIsACopy(t *testing.T) {
	c := New()
	keep := mustEBook(t, "Dune", "Frank Herbert", 1965, 1.8)
	if err := c.Add(keep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.List()
	got[0] = nil
	if c.List()[0] != book.Record(keep) {
		t.Error("mutating the returned slice must not touch the collection")
	}
}

func TestSearchByTitle(t *testing.T) {
	c := New()
	messiah := mustPrinted(t, "Dune Messiah", "Frank Herbert", 1969, 256)
	if err := c.Add(mustEBook(t, "Clean Code", "Robert C. Martin", 2008, 4.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Add(messiah); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"lowercase", "dune", 1},
		{"uppercase", "DUNE", 1},
		{"mixed case", "Dune", 1},
		{"substring mid-title", "messi", 1},
		{"no match", "solaris", 0},
		{"empty query is cancel", "", 0},
		{"whitespace query is cancel", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SearchByTitle(tt.query)
			if len(got) != tt.want {
				t.Fatalf("query %q: expected %d results, got %d", tt.query, tt.want, len(got))
			}
			if tt.want == 1 && got[0] != book.Record(messiah) {
				t.Errorf("query %q: expected Dune Messiah, got %q", tt.query, got[0].Title())
			}
		})
	}
}

func TestDeleteAtShiftsIndices(t *testing.T) {
	c := New()
	a := mustEBook(t, "A", "X", 2001, 1)
	b := mustEBook(t, "B", "X", 2002, 1)
	d := mustEBook(t, "C", "X", 2003, 1)
	for _, r := range []book.Record{a, b, d} {
		if err := c.Add(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	removed, err := c.DeleteAt(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != book.Record(b) {
		t.Errorf("expected B removed, got %q", removed.Title())
	}
	got := c.List()
	if len(got) != 2 || got[0] != book.Record(a) || got[1] != book.Record(d) {
		t.Errorf("unexpected sequence after delete: %v", got)
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	c := New()
	if err := c.Add(mustEBook(t, "A", "X", 2001, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, idx := range []int{-1, 1, 42} {
		_, err := c.DeleteAt(idx)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("index %d: expected *NotFoundError, got %T: %v", idx, err, err)
		}
	}
	if c.Len() != 1 {
		t.Errorf("failed deletes must leave the collection unchanged, got %d", c.Len())
	}
}

func TestDeleteByIdentity(t *testing.T) {
	c := New()
	keep := mustEBook(t, "Keep", "X", 2001, 1)
	gone := mustEBook(t, "Gone", "X", 2002, 1)
	for _, r := range []book.Record{keep, gone} {
		if err := c.Add(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := c.Delete(gone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.List()
	if len(got) != 1 || got[0] != book.Record(keep) {
		t.Fatalf("unexpected sequence after delete: %v", got)
	}

	// A stale reference must fail and leave the collection unchanged.
	err := c.Delete(gone)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if c.Len() != 1 {
		t.Errorf("failed delete must leave the collection unchanged, got %d", c.Len())
	}
}

// The end-to-end scenario from the acceptance checklist: seed, add one
// ebook, verify, delete it again.
func TestSeededAddDeleteRoundTrip(t *testing.T) {
	c := New()
	if err := Seed(c, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := c.Len()
	if n == 0 {
		t.Fatal("seeded collection must not be empty")
	}

	added := mustEBook(t, "Foo", "Bar", 2020, 3.5)
	if err := c.Add(added); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != n+1 {
		t.Fatalf("expected %d records, got %d", n+1, c.Len())
	}
	last := c.List()[c.Len()-1]
	if last != book.Record(added) || last.TypeLabel() != "EBook" {
		t.Errorf("expected the new EBook at the end, got %q (%s)", last.Title(), last.TypeLabel())
	}

	if err := c.Delete(added); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != n {
		t.Fatalf("expected %d records after delete, got %d", n, c.Len())
	}
	for _, r := range c.List() {
		if r == book.Record(added) {
			t.Error("deleted record still present")
		}
	}
}
