package aldicrawler

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var csvHeader = []string{"Date", "Category", "Product Name", "Price", "Ounces"}

// appendToCSV appends product records to filename, writing the header row
// only when the file is new or its leading bytes carry no header yet. The
// file accumulates across runs; re-scraped categories append duplicate
// rows on purpose.
func (app *Crawler) appendToCSV(products []ProductRecord, filename string) error {
	if len(products) == 0 {
		app.Logger.Info("No data to append to CSV")
		return nil
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
	}

	hasHeader, err := sniffCSVHeader(filename)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if !hasHeader {
		if err := writer.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, product := range products {
		row := []string{
			product.Date,
			product.Category,
			product.ProductName,
			product.Price,
			product.Ounces,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record to CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV records: %w", err)
	}
	app.Logger.Info("Data appended to %s", filename)
	return nil
}

// sniffCSVHeader inspects the first 1KB of an existing file for a header
// row. A missing file counts as having no header.
func sniffCSVHeader(filename string) (bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 1024)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read file: %w", err)
	}
	head := string(buf[:n])
	if head == "" {
		return false, nil
	}

	firstLine := head
	if idx := strings.IndexByte(head, '\n'); idx >= 0 {
		firstLine = head[:idx]
	}
	return strings.TrimRight(firstLine, "\r") == strings.Join(csvHeader, ","), nil
}
