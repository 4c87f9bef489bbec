// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	scriptNameInvalid  = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	scriptNameRepeated = regexp.MustCompile(`__+`)
	scriptNameEdges    = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// ScriptFilename turns a free-form script name into a file name with the script extension.
func ScriptFilename(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), constant.ScriptExtension)
	name = scriptNameInvalid.ReplaceAllString(name, "_")
	name = scriptNameRepeated.ReplaceAllString(name, "_")
	name = scriptNameEdges.ReplaceAllString(name, "")

	if name == "" {
		name = constant.Tiramisu
	}

	return strings.ToLower(name) + constant.ScriptExtension
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalWidth is the width of stdout, or fallback when it is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Wrap breaks s at word boundaries so no line exceeds width.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// PrintErasable prints msg on the current line and returns a function that erases it.
func PrintErasable(msg string) (eraser func()) {
	_, _ = fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}

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

// Delete removes path from the active filesystem, recursively for directories.
// A missing path is not an error.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
