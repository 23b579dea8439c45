package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffContextLines is the number of unchanged lines kept around each change.
const DiffContextLines = 3

// LineType indicates whether a diff line is unchanged, added, or deleted.
type LineType int

const (
	LineContext LineType = iota
	LineAddition
	LineDeletion
)

// DiffLine is one line of a line-level diff.
type DiffLine struct {
	Type LineType
	Text string
}

// DiffSummary counts changed lines.
type DiffSummary struct {
	Added   int
	Deleted int
}

// Changed reports whether any line differs.
func (s DiffSummary) Changed() bool { return s.Added > 0 || s.Deleted > 0 }

// DiffText computes a line-level diff from oldText to newText.
func DiffText(oldText, newText string) []DiffLine {
	dmp := diffmatchpatch.New()

	// Diff whole lines: each line becomes one rune before DiffMain
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []DiffLine
	for _, d := range diffs {
		var typ LineType
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			typ = LineAddition
		case diffmatchpatch.DiffDelete:
			typ = LineDeletion
		default:
			typ = LineContext
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, DiffLine{Type: typ, Text: text})
		}
	}
	return lines
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Summarize counts additions and deletions.
func Summarize(lines []DiffLine) DiffSummary {
	var s DiffSummary
	for _, l := range lines {
		switch l.Type {
		case LineAddition:
			s.Added++
		case LineDeletion:
			s.Deleted++
		}
	}
	return s
}

// hunk is a run of lines[start:end] printed under one @@ header.
type hunk struct {
	start, end int
}

// hunks groups the changed lines of lines, each with up to
// DiffContextLines unchanged lines on either side.
func hunks(lines []DiffLine) []hunk {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Type == LineContext {
			continue
		}
		for j := max(0, i-DiffContextLines); j <= min(len(lines)-1, i+DiffContextLines); j++ {
			keep[j] = true
		}
	}

	var out []hunk
	for i := 0; i < len(lines); i++ {
		if !keep[i] {
			continue
		}
		h := hunk{start: i}
		for i < len(lines) && keep[i] {
			i++
		}
		h.end = i
		out = append(out, h)
	}
	return out
}

// hunkHeader formats "@@ -oldStart,oldCount +newStart,newCount @@". A side
// with no lines reports the line before the hunk, as diff -u does.
func hunkHeader(oldStart, oldCount, newStart, newCount int) string {
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
}

// RenderDiff writes lines as a unified diff with DiffContextLines of
// context around each change. Nothing but the header is written when the
// texts are identical.
func RenderDiff(w io.Writer, styles Styles, oldLabel, newLabel string, lines []DiffLine) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n",
		styles.Header.Render("--- "+oldLabel),
		styles.Header.Render("+++ "+newLabel)); err != nil {
		return err
	}

	// Line numbers (1-based) each side has reached before lines[i].
	oldAt := make([]int, len(lines))
	newAt := make([]int, len(lines))
	oldLine, newLine := 1, 1
	for i, l := range lines {
		oldAt[i], newAt[i] = oldLine, newLine
		if l.Type != LineAddition {
			oldLine++
		}
		if l.Type != LineDeletion {
			newLine++
		}
	}

	for _, h := range hunks(lines) {
		var oldCount, newCount int
		for _, l := range lines[h.start:h.end] {
			if l.Type != LineAddition {
				oldCount++
			}
			if l.Type != LineDeletion {
				newCount++
			}
		}
		header := hunkHeader(oldAt[h.start], oldCount, newAt[h.start], newCount)
		if _, err := fmt.Fprintln(w, styles.Context.Render(header)); err != nil {
			return err
		}

		for _, l := range lines[h.start:h.end] {
			var out string
			switch l.Type {
			case LineAddition:
				out = styles.Added.Render("+" + l.Text)
			case LineDeletion:
				out = styles.Removed.Render("-" + l.Text)
			default:
				out = " " + l.Text
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}
