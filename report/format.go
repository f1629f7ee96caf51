package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scidata-tools/inspect"
	"github.com/scidata-tools/inspect/message"
)

// Render writes a human-readable text report for one or more results.
// Messages are grouped per file under underlined importance sections, most
// important first, and numbered file.section.entry for cross-referencing.
func Render(w io.Writer, results ...*inspect.Result) error {
	for fileIndex, res := range results {
		banner := "File: " + displayFile(res)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", banner, strings.Repeat("=", len(banner))); err != nil {
			return err
		}
		grouped := ByImportance(res)
		sectionIndex := 0
		for _, imp := range message.AllImportances() {
			msgs, ok := grouped[imp]
			if !ok {
				continue
			}
			sectionIndex++
			heading := strings.ToUpper(strings.ReplaceAll(imp.String(), "_", " "))
			if _, err := fmt.Fprintf(w, "\n%s\n%s\n", heading, strings.Repeat("-", len(heading))); err != nil {
				return err
			}
			for entryIndex, m := range SortMessages(msgs) {
				if err := renderEntry(w, fileIndex+1, sectionIndex, entryIndex+1, m); err != nil {
					return err
				}
			}
		}
		if fileIndex != len(results)-1 {
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderEntry(w io.Writer, fileIndex, sectionIndex, entryIndex int, m message.Message) error {
	// Engine-level messages have no meaningful object identity; keep them
	// on one line.
	if m.Importance.IsReserved() {
		_, err := fmt.Fprintf(w, "%d.%d.%d   %s: %s\n",
			fileIndex, sectionIndex, entryIndex, m.CheckName, m.Text)
		return err
	}
	_, err := fmt.Fprintf(w, "%d.%d.%d   %s %q located at %q\n        %s: %s\n",
		fileIndex, sectionIndex, entryIndex,
		m.ObjectType, m.ObjectName, m.Location, m.CheckName, m.Text)
	return err
}

func displayFile(res *inspect.Result) string {
	if res.File != "" {
		return res.File
	}
	return "(in-memory)"
}

// Save writes the text report to a file, refusing to clobber an existing
// report unless overwrite is set.
func Save(path string, overwrite bool, results ...*inspect.Result) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("report file %q already exists (use overwrite)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, results...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
