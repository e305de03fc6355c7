// Package seed populates an empty catalog from gzipped JSON-lines files.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mini-orders/internal/model"

	"github.com/shopspring/decimal"
)

// Record is one catalog entry in a seed file.
type Record struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price"`
}

// Request converts the record into a catalog creation request.
func (r Record) Request() *model.CreateItemRequest {
	return &model.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a gzipped seed file and returns its records in file order.
	Load(ctx context.Context, path string) ([]Record, error)
}

// decodeRecords reads gzipped JSON lines from r. Blank lines are skipped.
func decodeRecords(ctx context.Context, r io.Reader, source string) ([]Record, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("invalid record in %s at line %d: %w", source, lineNo, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", source, err)
	}

	return records, nil
}
