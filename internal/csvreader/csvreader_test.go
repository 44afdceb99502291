package csvreader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var hiredColumns = []string{"id", "name", "datetime", "department_id", "job_id"}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newReader(logger *zap.Logger) *csvreader.Reader {
	return csvreader.NewReader(hiredate.NewNormalizer(logger), logger)
}

func TestReader_Parse_NamedColumns(t *testing.T) {
	path := writeFile(t, "1,Product Management\n2,Sales\n")

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{Columns: []string{"id", "department"}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].Get("id"))
	assert.Equal(t, "Product Management", rows[0].Get("department"))
	assert.Equal(t, "Sales", rows[1].Get("department"))
	assert.Equal(t, 2, rows[1].Line)
}

func TestReader_Parse_CardinalityMismatchKeepsPositions(t *testing.T) {
	path := writeFile(t, "1,Marketing Assistant\n")

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{Columns: []string{"id", "job", "extra"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, map[string]string{"0": "1", "1": "Marketing Assistant"}, rows[0].Fields)
}

func TestReader_Parse_NoColumnNames(t *testing.T) {
	path := writeFile(t, "7,Staff Scientist\n")

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{})
	require.NoError(t, err)

	assert.Equal(t, "Staff Scientist", rows[0].Get("1"))
}

func TestReader_Parse_EmptyRowsAndMissingCells(t *testing.T) {
	content := "" +
		"1,Harold Vogt,2021-11-07T02:48:42Z,2,96\n" +
		",,,,\n" +
		"\n" +
		"2,Ty Hofer,2021-05-30T05:43:46Z,8,\n" +
		"3,Lyman Hadye,,,\n" +
		"4,Short Row\n"
	path := writeFile(t, content)

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{
		Columns:     hiredColumns,
		DateColumns: []string{"datetime"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "2021-11-07 02:48:42", rows[0].Get("datetime"))
	assert.Equal(t, "", rows[1].Get("job_id"))
	assert.Equal(t, "", rows[2].Get("datetime"))
	assert.Equal(t, "", rows[2].Get("department_id"))
	assert.Equal(t, "Short Row", rows[3].Get("name"))
	assert.Equal(t, "", rows[3].Get("job_id"))

	for _, row := range rows {
		assert.Len(t, row.Fields, len(hiredColumns))
	}
}

func TestReader_Parse_InvalidDateKeepsRow(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)
	path := writeFile(t, "1,Harold Vogt,not-a-date,2,96\n")

	rows, err := newReader(logger).Parse(path, csvreader.Options{
		Columns:     hiredColumns,
		DateColumns: []string{"datetime"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "", rows[0].Get("datetime"))
	assert.Equal(t, "Harold Vogt", rows[0].Get("name"))
	assert.Equal(t, 1, logs.FilterMessage("invalid date value").Len())
}

func TestReader_Parse_ExtraFieldsSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := writeFile(t, "1,Sales\n2,Legal,unexpected\n3,Support\n")

	rows, err := newReader(zap.New(core)).Parse(path, csvreader.Options{Columns: []string{"id", "department"}})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "3", rows[1].Get("id"))
	assert.Equal(t, 1, logs.FilterMessage("skipping csv record with extra fields").Len())
}

func TestReader_Parse_QuotedFields(t *testing.T) {
	path := writeFile(t, "1,\"Research, Development\"\n")

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{Columns: []string{"id", "department"}})
	require.NoError(t, err)

	assert.Equal(t, "Research, Development", rows[0].Get("department"))
}

func TestReader_Parse_FileErrors(t *testing.T) {
	reader := newReader(zap.NewNop())

	t.Run("not found", func(t *testing.T) {
		_, err := reader.Parse(filepath.Join(t.TempDir(), "missing.csv"), csvreader.Options{})
		assert.ErrorIs(t, err, csvreader.ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := reader.Parse(writeFile(t, ""), csvreader.Options{})
		assert.ErrorIs(t, err, csvreader.ErrEmptyFile)
	})

	t.Run("only blank rows", func(t *testing.T) {
		_, err := reader.Parse(writeFile(t, ",,\n\n , \n"), csvreader.Options{})
		assert.ErrorIs(t, err, csvreader.ErrEmptyFile)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, err := reader.Parse(writeFile(t, "1,Caf\xe9\n"), csvreader.Options{})
		assert.ErrorIs(t, err, csvreader.ErrEncoding)
	})
}

func TestReader_Parse_ByteOrderMark(t *testing.T) {
	path := writeFile(t, "\xef\xbb\xbf1,Sales\n")

	rows, err := newReader(zap.NewNop()).Parse(path, csvreader.Options{Columns: []string{"id", "department"}})
	require.NoError(t, err)

	assert.Equal(t, "1", rows[0].Get("id"))
}
