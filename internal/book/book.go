// Package book defines the closed set of book record variants managed by
// the library collection.
package book

import (
	"fmt"
	"strings"
	"time"
)

// Publication years may be set slightly ahead for announced titles.
const yearSlack = 1

// ValidationError reports a field that failed construction-time checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Record is the shared surface of every book variant. The unexported
// method keeps the variant set closed to this package.
type Record interface {
	Title() string
	Author() string
	Year() int

	// TypeLabel returns the short variant name for table rendering.
	TypeLabel() string
	// Describe returns a multi-line human-readable summary.
	Describe() string

	extraDetail() string
}

// base holds the fields common to all variants. Values are fixed at
// construction; there are no setters.
type base struct {
	title  string
	author string
	year   int
}

func newBase(title, author string, year int) (base, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return base{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if author == "" {
		return base{}, &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if year <= 0 {
		return base{}, &ValidationError{Field: "year", Reason: "must be a positive integer"}
	}
	if maxYear := time.Now().Year() + yearSlack; year > maxYear {
		return base{}, &ValidationError{Field: "year", Reason: fmt.Sprintf("must not be later than %d", maxYear)}
	}

	return base{title: title, author: author, year: year}, nil
}

func (b base) Title() string  { return b.title }
func (b base) Author() string { return b.author }
func (b base) Year() int      { return b.year }

func describe(r Record) string {
	return fmt.Sprintf("Title:  %s\nAuthor: %s\nYear:   %d\nType:   %s\nDetail: %s",
		r.Title(), r.Author(), r.Year(), r.TypeLabel(), r.extraDetail())
}

// EBook is an electronic book with an associated file size.
type EBook struct {
	base
	fileSizeMB float64
}

// NewEBook validates every field and returns a *ValidationError on the
// first violation.
func NewEBook(title, author string, year int, fileSizeMB float64) (*EBook, error) {
	b, err := newBase(title, author, year)
	if err != nil {
		return nil, err
	}
	if fileSizeMB <= 0 {
		return nil, &ValidationError{Field: "file size", Reason: "must be a positive number of megabytes"}
	}
	return &EBook{base: b, fileSizeMB: fileSizeMB}, nil
}

func (e *EBook) FileSizeMB() float64 { return e.fileSizeMB }

func (e *EBook) TypeLabel() string { return "EBook" }

func (e *EBook) extraDetail() string {
	return fmt.Sprintf("File size: %g MB", e.fileSizeMB)
}

func (e *EBook) Describe() string { return describe(e) }

// PrintedBook is a physical book with a page count.
type PrintedBook struct {
	base
	pages int
}

// NewPrintedBook validates every field and returns a *ValidationError on
// the first violation.
func NewPrintedBook(title, author string, year, pages int) (*PrintedBook, error) {
	b, err := newBase(title, author, year)
	if err != nil {
		return nil, err
	}
	if pages <= 0 {
		return nil, &ValidationError{Field: "pages", Reason: "must be a positive integer"}
	}
	return &PrintedBook{base: b, pages: pages}, nil
}

func (p *PrintedBook) Pages() int { return p.pages }

func (p *PrintedBook) TypeLabel() string { return "Printed Book" }

func (p *PrintedBook) extraDetail() string {
	return fmt.Sprintf("Pages: %d", p.pages)
}

func (p *PrintedBook) Describe() string { return describe(p) }

// Detail exposes the variant-specific column for table rendering without
// switching on concrete types outside this package.
func Detail(r Record) string { return r.extraDetail() }
