package library

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"librarium/internal/book"
	"librarium/internal/logger"
)

// Catalogs exported from upstream sources routinely carry markup in the
// title and author fields, so everything is sanitized before validation.
var strict = bluemonday.StrictPolicy()

// CleanText strips markup from free text and resolves the entities the
// sanitizer escapes on the way out.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// catalogSchema is checked against the seed file before decoding, so a
// malformed catalog fails with a field-level message instead of a partial
// load.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["kind", "title", "author", "year"],
    "properties": {
      "kind": {"type": "string", "enum": ["ebook", "printed"]},
      "title": {"type": "string", "minLength": 1},
      "author": {"type": "string", "minLength": 1},
      "year": {"type": "integer", "minimum": 1},
      "file_size_mb": {"type": "number", "exclusiveMinimum": 0},
      "pages": {"type": "integer", "minimum": 1}
    },
    "additionalProperties": false
  }
}`

type catalogEntry struct {
	Kind       string  `json:"kind"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Year       int     `json:"year"`
	FileSizeMB float64 `json:"file_size_mb,omitempty"`
	Pages      int     `json:"pages,omitempty"`
}

// Show a progress bar only when the catalog is big enough to be worth it.
const progressThreshold = 50

// Seed populates the collection at startup. With an empty path, or when
// the named file does not exist, the built-in sample set is loaded; an
// existing catalog that fails schema validation aborts seeding.
func Seed(c *Collection, path string) error {
	defer logger.Track("catalog seeding")()

	if path == "" {
		return seedBuiltin(c)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.L().WithField("path", path).Warn("catalog missing, using built-in samples")
		return seedBuiltin(c)
	}
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("catalog %s does not match schema: %s", path, strings.Join(msgs, "; "))
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	var bar *progressbar.ProgressBar
	if len(entries) >= progressThreshold {
		bar = progressbar.Default(int64(len(entries)), "seeding catalog")
	}

	loaded, skipped := 0, 0
	for _, e := range entries {
		if bar != nil {
			_ = bar.Add(1)
		}
		r, err := e.record()
		if err != nil {
			skipped++
			logger.L().WithFields(logrus.Fields{
				"title": e.Title,
				"kind":  e.Kind,
			}).WithError(err).Warn("catalog entry skipped")
			continue
		}
		if err := c.Add(r); err != nil {
			skipped++
			continue
		}
		loaded++
	}

	logger.L().WithFields(logrus.Fields{
		"path":    path,
		"loaded":  loaded,
		"skipped": skipped,
	}).Info("catalog seeded")
	return nil
}

func (e catalogEntry) record() (book.Record, error) {
	title := CleanText(e.Title)
	author := CleanText(e.Author)
	switch e.Kind {
	case "ebook":
		return book.NewEBook(title, author, e.Year, e.FileSizeMB)
	case "printed":
		return book.NewPrintedBook(title, author, e.Year, e.Pages)
	default:
		return nil, &book.ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown variant %q", e.Kind)}
	}
}

// seedBuiltin loads the fixed sample set so the library is never empty on
// first run.
func seedBuiltin(c *Collection) error {
	samples := []catalogEntry{
		{Kind: "ebook", Title: "Clean Code", Author: "Robert C. Martin", Year: 2008, FileSizeMB: 4.5},
		{Kind: "printed", Title: "The Pragmatic Programmer", Author: "Andy Hunt", Year: 1999, Pages: 352},
		{Kind: "ebook", Title: "Python Crash Course", Author: "Eric Matthes", Year: 2015, FileSizeMB: 8.2},
		{Kind: "printed", Title: "Design Patterns", Author: "Gang of Four", Year: 1994, Pages: 395},
	}
	for _, e := range samples {
		r, err := e.record()
		if err != nil {
			return fmt.Errorf("built-in sample %q: %w", e.Title, err)
		}
		if err := c.Add(r); err != nil {
			return err
		}
	}
	return nil
}
