// Package library manages the in-memory ordered collection of book
// records and its seeding from the built-in samples or a catalog file.
package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"librarium/internal/book"
	"librarium/internal/logger"
	"librarium/internal/metrics"
)

// NotFoundError reports a delete or selection that referenced a record
// no longer present in the collection.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such record: %s", e.Ref)
}

// Collection owns the ordered sequence of records. Insertion order is
// display order; duplicate titles are allowed. Single-threaded by
// contract: every operation runs to completion between key reads.
type Collection struct {
	records []book.Record
}

func New() *Collection {
	return &Collection{}
}

// Add appends a record to the end of the sequence. Validation happens at
// construction; the only rejected value here is nil.
func (c *Collection) Add(r book.Record) error {
	if r == nil {
		metrics.OpsTotal.WithLabelValues("add", "error").Inc()
		return &book.ValidationError{Field: "record", Reason: "must not be nil"}
	}
	c.records = append(c.records, r)
	metrics.OpsTotal.WithLabelValues("add", "ok").Inc()
	logger.L().WithFields(logrus.Fields{
		"op":    "add",
		"type":  r.TypeLabel(),
		"title": r.Title(),
		"size":  len(c.records),
	}).Info("library.add")
	return nil
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// List returns a copy of the full ordered sequence. The copy is empty,
// never nil, when the collection is empty.
func (c *Collection) List() []book.Record {
	metrics.OpsTotal.WithLabelValues("list", "ok").Inc()
	out := make([]book.Record, len(c.records))
	copy(out, c.records)
	return out
}

// SearchByTitle returns the ordered subsequence of records whose title
// contains the query, compared under Unicode case folding. An empty or
// whitespace-only query returns an empty result: the UI treats empty
// input as "cancel", not "match all".
func (c *Collection) SearchByTitle(query string) []book.Record {
	start := time.Now()
	query = strings.TrimSpace(query)
	out := make([]book.Record, 0)
	if query == "" {
		metrics.OpsTotal.WithLabelValues("search", "ok").Inc()
		return out
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, r := range c.records {
		if strings.Contains(fold.String(r.Title()), needle) {
			out = append(out, r)
		}
	}

	took := time.Since(start)
	metrics.OpsTotal.WithLabelValues("search", "ok").Inc()
	metrics.OpDuration.WithLabelValues("search").Observe(took.Seconds())
	logger.L().WithFields(logrus.Fields{
		"op":    "search",
		"query": query,
		"count": len(out),
		"took":  took.String(),
	}).Info("library.search")
	return out
}

// DeleteAt removes and returns the record at a zero-based index. A stale
// or out-of-range index yields a *NotFoundError and leaves the
// collection unchanged.
func (c *Collection) DeleteAt(index int) (book.Record, error) {
	if index < 0 || index >= len(c.records) {
		metrics.OpsTotal.WithLabelValues("delete", "not_found").Inc()
		return nil, &NotFoundError{Ref: fmt.Sprintf("index %d", index)}
	}
	r := c.records[index]
	c.records = append(c.records[:index], c.records[index+1:]...)
	metrics.OpsTotal.WithLabelValues("delete", "ok").Inc()
	logger.L().WithFields(logrus.Fields{
		"op":    "delete",
		"title": r.Title(),
		"size":  len(c.records),
	}).Info("library.delete")
	return r, nil
}

// Delete removes exactly the given record. It fails with *NotFoundError
// when the reference is not present.
func (c *Collection) Delete(r book.Record) error {
	for i, cur := range c.records {
		if cur == r {
			_, err := c.DeleteAt(i)
			return err
		}
	}
	metrics.OpsTotal.WithLabelValues("delete", "not_found").Inc()
	ref := "<nil>"
	if r != nil {
		ref = r.Title()
	}
	return &NotFoundError{Ref: ref}
}
