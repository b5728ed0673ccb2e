package aldicrawler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []ProductRecord {
	return []ProductRecord{
		{Date: "2026-08-30", Category: "Deli", ProductName: "Sliced Turkey Breast", Price: "$3.99", Ounces: "9 oz"},
		{Date: "2026-08-30", Category: "Deli", ProductName: "Mystery Item", Price: "$Not found", Ounces: "Not found"},
	}
}

func TestAppendToCSVWritesHeaderOnce(t *testing.T) {
	app := newTestCrawler(t)
	filename := filepath.Join(t.TempDir(), "products.csv")

	require.NoError(t, app.appendToCSV(sampleRecords(), filename))
	require.NoError(t, app.appendToCSV(sampleRecords(), filename))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 5, "one header plus four records")
	assert.Equal(t, "Date,Category,Product Name,Price,Ounces", lines[0])

	headerCount := 0
	for _, line := range lines {
		if line == "Date,Category,Product Name,Price,Ounces" {
			headerCount++
		}
	}
	assert.Equal(t, 1, headerCount)
}

func TestAppendToCSVHeaderlessExistingFile(t *testing.T) {
	app := newTestCrawler(t)
	filename := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(filename, []byte("2026-08-29,Dairy,Milk,$2.49,1 gal\n"), 0644))

	require.NoError(t, app.appendToCSV(sampleRecords(), filename))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// The existing row is not a header, so one is appended before the
	// new records.
	assert.Equal(t, "2026-08-29,Dairy,Milk,$2.49,1 gal", lines[0])
	assert.Equal(t, "Date,Category,Product Name,Price,Ounces", lines[1])
	assert.Len(t, lines, 4)
}

func TestAppendToCSVEmptyBatch(t *testing.T) {
	app := newTestCrawler(t)
	filename := filepath.Join(t.TempDir(), "products.csv")

	require.NoError(t, app.appendToCSV(nil, filename))

	_, err := os.Stat(filename)
	assert.True(t, os.IsNotExist(err), "empty batch must not create the file")
}

func TestAppendToCSVCreatesDirectories(t *testing.T) {
	app := newTestCrawler(t)
	filename := filepath.Join(t.TempDir(), "out", "nested", "products.csv")

	require.NoError(t, app.appendToCSV(sampleRecords(), filename))

	_, err := os.Stat(filename)
	assert.NoError(t, err)
}

func TestSniffCSVHeader(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.csv")
	has, err := sniffCSVHeader(missing)
	require.NoError(t, err)
	assert.False(t, has)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	has, err = sniffCSVHeader(empty)
	require.NoError(t, err)
	assert.False(t, has)

	withHeader := filepath.Join(dir, "header.csv")
	require.NoError(t, os.WriteFile(withHeader, []byte("Date,Category,Product Name,Price,Ounces\nrow\n"), 0644))
	has, err = sniffCSVHeader(withHeader)
	require.NoError(t, err)
	assert.True(t, has)
}
