package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// emit writes text plus a final newline to path, or to w when path is
// empty. In check mode path is compared instead and a line diff is written
// to w; differs reports a mismatch.
func emit(w io.Writer, path string, check bool, text string) (differs bool, err error) {
	want := text + "\n"
	if path == "" || path == "-" {
		if check {
			return false, fmt.Errorf("%w: -check requires -o", cli.ErrUsage)
		}
		_, err := io.WriteString(w, want)
		return false, err
	}
	if check {
		have, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("error reading %s: %w", path, err)
		}
		if string(have) == want {
			return false, nil
		}
		_, err = io.WriteString(w, lineDiff(string(have), want, isTerminal(w)))
		return true, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	return false, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// lineDiff renders a unified-style line diff from a to b.
func lineDiff(a, b string, colored bool) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	add, del := fmt.Sprintf, fmt.Sprintf
	if colored {
		add, del = color.GreenString, color.RedString
	}
	out := &strings.Builder{}
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffpatch.DiffInsert:
				out.WriteString(add("+%s", line))
			case diffpatch.DiffDelete:
				out.WriteString(del("-%s", line))
			case diffpatch.DiffEqual:
				out.WriteString(" " + line)
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}
