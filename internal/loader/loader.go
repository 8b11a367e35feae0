// Package loader reads follower CSV files into records.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dimchansky/utfbom"

	"github.com/dbsmedya/followdiff/internal/config"
	"github.com/dbsmedya/followdiff/internal/logger"
	"github.com/dbsmedya/followdiff/internal/record"
)

// Loader turns CSV files into ordered record sequences.
type Loader struct {
	input config.InputConfig
	log   *logger.Logger
}

// New creates a Loader for the given input layout.
func New(input config.InputConfig, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNop()
	}
	return &Loader{input: input, log: log}
}

// Load reads path using the default input layout: comma separated,
// one header row, id in the first column and name in the second.
func Load(path string) ([]record.Record, error) {
	return New(config.DefaultConfig().Input, nil).Load(path)
}

// Load opens path and parses every data row into a record, keeping file order.
func (l *Loader) Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := ErrIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrFileNotFound
		}
		return nil, &LoadError{Path: path, Kind: kind, Err: err}
	}
	defer f.Close()

	return l.Read(f, path)
}

// Read parses CSV content from r. name is used in errors and logs.
func (l *Loader) Read(r io.Reader, name string) ([]record.Record, error) {
	log := l.log.WithFile(name)

	reader := csv.NewReader(utfbom.SkipOnly(r))
	reader.Comma = l.input.DelimiterRune()
	reader.FieldsPerRecord = -1

	minColumns := l.input.MinColumns()
	headerPending := l.input.HasHeader
	records := make([]record.Record, 0)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(name, err)
		}

		line, _ := reader.FieldPos(0)

		if headerPending {
			headerPending = false
			log.Debugw("Skipping header row", "line", line, "columns", len(row))
			continue
		}

		if len(row) < minColumns {
			return nil, &LoadError{
				Path: name,
				Line: line,
				Kind: ErrMalformedRow,
				Err:  fmt.Errorf("expected at least %d columns, got %d", minColumns, len(row)),
			}
		}

		records = append(records, record.New(row[l.input.IDColumn], row[l.input.NameColumn]))
	}

	log.Debugw("Loaded records", "rows", len(records))
	return records, nil
}

func classifyReadError(name string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &LoadError{Path: name, Line: parseErr.Line, Kind: ErrParse, Err: parseErr.Err}
	}
	return &LoadError{Path: name, Kind: ErrIO, Err: err}
}
