// Package report renders diff results and record listings as plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/followdiff/internal/differ"
	"github.com/dbsmedya/followdiff/internal/record"
)

// Reporter writes human-readable output to a writer.
type Reporter struct {
	w        io.Writer
	colorize bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor enables or disables coloured status labels.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.colorize = enabled
	}
}

// New creates a Reporter writing to w. Colour is off unless requested.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ColorEnabled resolves a color mode (auto, always, never) for w.
// In auto mode colour is used only for terminals that support it.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		color.ForceOpenColor()
		return true
	case "never":
		return false
	default:
		return isTerminal(w) && color.SupportColor()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Report prints the status line followed by one Records block per
// non-empty difference set.
func (r *Reporter) Report(res *differ.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Status: %s\n", r.statusLabel(res))
	for _, set := range res.Differences() {
		writeRecords(&b, set.Records())
	}

	return r.flush(&b)
}

// Records prints a loaded file: its row counts and the distinct records.
func (r *Reporter) Records(name string, rows []record.Record) error {
	set := record.NewSet(rows...)

	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", name)
	fmt.Fprintf(&b, "Rows: %d\n", len(rows))
	fmt.Fprintf(&b, "Unique: %d\n", set.Len())
	if set.Duplicates() > 0 {
		fmt.Fprintf(&b, "Duplicates: %s\n", r.paint(color.Yellow, fmt.Sprint(set.Duplicates())))
	}
	writeRecords(&b, set.Records())

	return r.flush(&b)
}

func (r *Reporter) statusLabel(res *differ.Result) string {
	switch res.Direction {
	case differ.Increase:
		return r.paint(color.Green, res.Status())
	case differ.Decrease:
		return r.paint(color.Red, res.Status())
	default:
		return res.Status()
	}
}

func (r *Reporter) paint(c color.Color, s string) string {
	if !r.colorize {
		return s
	}
	return c.Sprint(s)
}

func (r *Reporter) flush(b *strings.Builder) error {
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeRecords renders a Records block with ids padded to a common
// display width. Empty input writes nothing.
func writeRecords(b *strings.Builder, records []record.Record) {
	if len(records) == 0 {
		return
	}

	width := 0
	for _, rec := range records {
		width = max(width, runewidth.StringWidth(rec.UserID))
	}

	b.WriteString("Records:\n")
	for _, rec := range records {
		fmt.Fprintf(b, "  %s  %s\n", runewidth.FillRight(rec.UserID, width), rec.UserName)
	}
}
