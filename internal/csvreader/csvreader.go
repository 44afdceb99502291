// Package csvreader loads header-less CSV files into named rows.
package csvreader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	ErrFileNotFound = errors.New("csv file not found")
	ErrEmptyFile    = errors.New("csv file has no data rows")
	ErrEncoding     = errors.New("csv file is not valid UTF-8")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Row is one data record. Fields are keyed by column name when names were
// applied, otherwise by position ("0", "1", ...). Missing cells hold "".
type Row struct {
	Line   int
	Fields map[string]string
}

func (r Row) Get(column string) string {
	return r.Fields[column]
}

type Options struct {
	// Columns names the positional columns. Ignored unless it has exactly
	// as many entries as the file has columns.
	Columns []string
	// DateColumns are normalized through the DateNormalizer.
	DateColumns []string
}

// DateNormalizer is satisfied by *hiredate.Normalizer.
type DateNormalizer interface {
	Normalize(raw, column string) (string, bool)
}

type Reader struct {
	dates  DateNormalizer
	logger *zap.Logger
}

func NewReader(dates DateNormalizer, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{dates: dates, logger: logger.Named("csvreader")}
}

// Parse reads path. Malformed records are logged and skipped; only problems
// with the file as a whole are returned.
func (r *Reader) Parse(path string, opts Options) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("csv file not found", zap.String("path", path))
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		r.logger.Error("csv file has invalid encoding", zap.String("path", path))
		return nil, fmt.Errorf("%w: %s", ErrEncoding, path)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	rows, err := r.read(path, bytes.NewReader(data), opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		r.logger.Error("csv file is empty", zap.String("path", path))
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	r.logger.Info("csv file loaded", zap.String("path", path), zap.Int("rows", len(rows)))
	return rows, nil
}

func (r *Reader) read(path string, src io.Reader, opts Options) ([]Row, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		rows    []Row
		names   []string
		width   int
		dateSet = toSet(opts.DateColumns)
	)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.logger.Warn("skipping malformed csv record",
					zap.String("path", path),
					zap.Int("line", parseErr.Line),
					zap.Error(err),
				)
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)

		if names == nil {
			width = len(record)
			names = columnNames(opts.Columns, width)
			if len(opts.Columns) > 0 && len(opts.Columns) != width {
				r.logger.Warn("column names do not match column count, keeping positions",
					zap.String("path", path),
					zap.Int("names", len(opts.Columns)),
					zap.Int("columns", width),
				)
			}
		}

		if len(record) > width {
			r.logger.Warn("skipping csv record with extra fields",
				zap.String("path", path),
				zap.Int("line", line),
				zap.Int("fields", len(record)),
				zap.Int("expected", width),
			)
			continue
		}

		fields := make(map[string]string, width)
		for i, name := range names {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" && dateSet[name] && r.dates != nil {
				normalized, ok := r.dates.Normalize(value, name)
				if !ok {
					normalized = ""
				}
				value = normalized
			}
			fields[name] = value
		}

		rows = append(rows, Row{Line: line, Fields: fields})
	}

	return rows, nil
}

func columnNames(declared []string, width int) []string {
	if len(declared) == width {
		return declared
	}
	names := make([]string, width)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
