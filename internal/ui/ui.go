// Package ui drives the interactive terminal session. It owns the raw
// terminal mode through liner and talks to the collection only via its
// exported operations.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"librarium/internal/book"
	"librarium/internal/library"
)

// errBack unwinds one prompt level; "Back" is a plain return, not an
// exception path.
var errBack = errors.New("back")

type UI struct {
	lib  *library.Collection
	line *liner.State
}

func New(lib *library.Collection) *UI {
	return &UI{lib: lib}
}

const menu = `  1) List all books
  2) Add a book
  3) Delete a book
  4) Search by title
  5) Hints
  6) Exit`

// Run executes the menu loop until the user exits. The liner state is
// closed on every return path so the terminal is always restored.
func (u *UI) Run() error {
	u.line = liner.NewLiner()
	defer u.line.Close()
	u.line.SetCtrlCAborts(true)

	fmt.Println(magenta(bold("Librarium - Library Management System")))
	fmt.Println(dim("Pick an action by number or name. Ctrl-C or empty input steps back."))

	for {
		fmt.Println()
		fmt.Println(menu)
		input, err := u.line.Prompt(green("librarium> "))
		if err != nil {
			// Ctrl-C or Ctrl-D at the main menu ends the session.
			fmt.Println()
			return nil
		}
		input = strings.ToLower(strings.TrimSpace(input))
		if input == "" {
			continue
		}
		u.line.AppendHistory(input)

		switch input {
		case "1", "list":
			u.listAction(u.lib.List(), "The library is empty.")
		case "2", "add":
			err = u.addAction()
		case "3", "delete":
			err = u.deleteAction()
		case "4", "search":
			err = u.searchAction()
		case "5", "hints", "help":
			hints()
		case "6", "exit", "quit":
			fmt.Println(magenta("Goodbye!"))
			return nil
		default:
			fmt.Println(yellow("Unknown action: " + input))
		}

		if err != nil && !errors.Is(err, errBack) {
			return err
		}
	}
}

func (u *UI) listAction(records []book.Record, emptyNotice string) {
	if len(records) == 0 {
		fmt.Println(yellow(emptyNotice))
		return
	}
	fmt.Print(renderTable(records))
}

func (u *UI) addAction() error {
	for {
		kind, err := u.ask("Book type (1 = EBook, 2 = Printed Book, empty = back): ")
		if err != nil || kind == "" {
			return nil
		}
		if kind != "1" && kind != "2" {
			fmt.Println(yellow("Please answer 1 or 2."))
			continue
		}

		title, err := u.askRequired("Title : ")
		if err != nil {
			return nil
		}
		author, err := u.askRequired("Author: ")
		if err != nil {
			return nil
		}
		year, err := u.askInt("Year  : ")
		if err != nil {
			return nil
		}

		var rec book.Record
		var cerr error
		if kind == "1" {
			size, err := u.askFloat("File size (MB): ")
			if err != nil {
				return nil
			}
			rec, cerr = book.NewEBook(title, author, year, size)
		} else {
			pages, err := u.askInt("Number of pages: ")
			if err != nil {
				return nil
			}
			rec, cerr = book.NewPrintedBook(title, author, year, pages)
		}

		var verr *book.ValidationError
		if errors.As(cerr, &verr) {
			fmt.Println(red("Cannot add: " + verr.Error() + ". Try again."))
			continue
		}
		if cerr != nil {
			return cerr
		}

		if err := u.lib.Add(rec); err != nil {
			return err
		}
		fmt.Println(green(fmt.Sprintf("%q added successfully.", rec.Title())))
		return nil
	}
}

func (u *UI) deleteAction() error {
	records := u.lib.List()
	if len(records) == 0 {
		fmt.Println(yellow("No books to delete. The library is empty."))
		return nil
	}
	fmt.Print(renderTable(records))

	input, err := u.ask("Number to delete (empty = back): ")
	if err != nil || input == "" {
		return nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println(yellow("Please enter the row number."))
		return nil
	}

	idx := n - 1
	if idx < 0 || idx >= len(records) {
		_, derr := u.lib.DeleteAt(idx)
		var nf *library.NotFoundError
		if errors.As(derr, &nf) {
			fmt.Println(yellow(nf.Error()))
			return nil
		}
		return derr
	}

	rec := records[idx]
	fmt.Println(cyan(rec.Describe()))
	confirm, err := u.ask("Delete this record? [y/N]: ")
	if err != nil || !strings.EqualFold(confirm, "y") {
		fmt.Println(dim("Back to main menu."))
		return nil
	}

	if derr := u.lib.Delete(rec); derr != nil {
		var nf *library.NotFoundError
		if errors.As(derr, &nf) {
			fmt.Println(yellow(nf.Error()))
			return nil
		}
		return derr
	}
	fmt.Println(green(fmt.Sprintf("Deleted %q by %s.", rec.Title(), rec.Author())))
	return nil
}

func (u *UI) searchAction() error {
	query, err := u.ask("Title to search (empty = back): ")
	if err != nil || query == "" {
		return nil
	}
	results := u.lib.SearchByTitle(query)
	if len(results) == 0 {
		fmt.Println(yellow("No books found matching that title."))
		return nil
	}
	u.listAction(results, "")
	return nil
}

func hints() {
	fmt.Println(magenta(bold("How it works")))
	fmt.Println("  - Books are stored as EBook or Printed Book records")
	fmt.Println("  - Every field is validated when a record is created")
	fmt.Println("  - Search matches titles case-insensitively by substring")
	fmt.Println("  - Deletion asks for the row number shown in the table")
	fmt.Println("  - The collection lives in memory and is discarded on exit")
}

// ask reads one line, trims it and strips any markup. Ctrl-C and Ctrl-D
// surface as errBack.
func (u *UI) ask(prompt string) (string, error) {
	s, err := u.line.Prompt(prompt)
	if err != nil {
		fmt.Println()
		return "", errBack
	}
	return library.CleanText(s), nil
}

// askRequired re-prompts until the input is non-empty.
func (u *UI) askRequired(prompt string) (string, error) {
	for {
		s, err := u.ask(prompt)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Println(yellow("This field is required."))
	}
}

// askInt re-prompts until the input parses as a whole number.
func (u *UI) askInt(prompt string) (int, error) {
	for {
		s, err := u.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(s)
		if perr != nil {
			fmt.Println(yellow("Invalid input. Please enter a whole number."))
			continue
		}
		return n, nil
	}
}

// askFloat re-prompts until the input parses as a number.
func (u *UI) askFloat(prompt string) (float64, error) {
	for {
		s, err := u.ask(prompt)
		if err != nil {
			return 0, err
		}
		f, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			fmt.Println(yellow("Invalid input. Please enter a number."))
			continue
		}
		return f, nil
	}
}
