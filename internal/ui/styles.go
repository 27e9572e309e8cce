package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiRed     = "\033[91m"
	ansiGreen   = "\033[92m"
	ansiYellow  = "\033[93m"
	ansiCyan    = "\033[96m"
	ansiMagenta = "\033[95m"
)

var colorEnabled = true

// EnableColor turns ANSI styling on or off. Color is forced off when
// stdout is not a terminal regardless of configuration.
func EnableColor(on bool) {
	colorEnabled = on && isatty.IsTerminal(os.Stdout.Fd())
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

func bold(s string) string    { return paint(ansiBold, s) }
func dim(s string) string     { return paint(ansiDim, s) }
func red(s string) string     { return paint(ansiRed, s) }
func green(s string) string   { return paint(ansiGreen, s) }
func yellow(s string) string  { return paint(ansiYellow, s) }
func cyan(s string) string    { return paint(ansiCyan, s) }
func magenta(s string) string { return paint(ansiMagenta, s) }
