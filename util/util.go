// Package util provides small domain-agnostic helpers.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/twshades/twshades/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	repeatedUnderscores  = regexp.MustCompile(`__+`)
	edgeSeparators       = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename normalizes a string into a cross-platform filename.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")
	filename = repeatedUnderscores.ReplaceAllString(filename, "_")
	return edgeSeparators.ReplaceAllString(filename, "")
}

// Quantify returns a count with its singular or plural label.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize returns the dimensions of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// PrintErasable prints an ephemeral message and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and discards its error.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Delete removes a file or a directory tree through the filesystem backend.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
