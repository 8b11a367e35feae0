package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/followdiff/internal/differ"
	"github.com/dbsmedya/followdiff/internal/record"
)

func recs(pairs ...string) []record.Record {
	out := make([]record.Record, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, record.New(pairs[i], pairs[i+1]))
	}
	return out
}

func render(t *testing.T, res *differ.Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Report(res))
	return buf.String()
}

func TestReport_Increase(t *testing.T) {
	out := render(t, differ.Diff(recs("1", "A", "2", "B"), recs("1", "A", "2", "B", "3", "C")))

	assert.Equal(t, "Status: increase 1 following\nRecords:\n  3  C\n", out)
}

func TestReport_Decrease(t *testing.T) {
	out := render(t, differ.Diff(recs("1", "A", "2", "B", "3", "C"), recs("1", "A")))

	assert.Equal(t, "Status: decrease 2 following\nRecords:\n  2  B\n  3  C\n", out)
}

func TestReport_NeutralWithoutChanges(t *testing.T) {
	tests := []struct {
		name  string
		left  []record.Record
		right []record.Record
	}{
		{"identical", recs("1", "A"), recs("1", "A")},
		{"renamed", recs("1", "A"), recs("1", "Z")},
		{"both empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, differ.Diff(tt.left, tt.right))
			assert.Equal(t, "Status: neutral\n", out)
			assert.NotContains(t, out, "Records:")
		})
	}
}

func TestReport_NeutralWithSwappedIdentities(t *testing.T) {
	out := render(t, differ.Diff(recs("1", "A", "2", "B"), recs("1", "A", "3", "C")))

	assert.Equal(t, "Status: neutral\nRecords:\n  2  B\nRecords:\n  3  C\n", out)
}

func TestReport_IncreaseWithoutNewIDs(t *testing.T) {
	// Duplicate rows raise the count but add no new identity.
	out := render(t, differ.Diff(recs("1", "A"), recs("1", "A", "1", "A")))

	assert.Equal(t, "Status: increase 1 following\n", out)
}

func TestReport_AlignsIDs(t *testing.T) {
	out := render(t, differ.Diff(nil, recs("7", "short", "12345", "long", "日本", "wide")))

	assert.Equal(t, "Status: increase 3 following\nRecords:\n"+
		"  7      short\n"+
		"  12345  long\n"+
		"  日本   wide\n", out)
}

func TestReport_ColorOnlyAffectsLabel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithColor(true))

	require.NoError(t, r.Report(differ.Diff(recs("1", "A"), recs("1", "A", "2", "B"))))

	plain := color.ClearCode(buf.String())
	assert.Equal(t, "Status: increase 1 following\nRecords:\n  2  B\n", plain)
}

func TestRecords_Listing(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Records("followers.csv", recs("1", "A", "2", "B", "1", "A again")))

	assert.Equal(t, "File: followers.csv\nRows: 3\nUnique: 2\nDuplicates: 1\nRecords:\n  1  A\n  2  B\n", buf.String())
}

func TestRecords_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf).Records("empty.csv", nil))

	assert.Equal(t, "File: empty.csv\nRows: 0\nUnique: 0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReport_WriteError(t *testing.T) {
	err := New(failingWriter{}).Report(differ.Diff(nil, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, ColorEnabled("never", &buf))
	assert.False(t, ColorEnabled("auto", &buf), "buffers are never terminals")
	assert.False(t, ColorEnabled("", &buf))
}
