package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Loader reads all rows of one benchmark sheet. Implementations own the file
// format; callers only ever see normalized Records. A load either returns the
// full sheet or an error, never a partial result.
type Loader interface {
	Load(ctx context.Context, path string) ([]Record, error)
}

// ExcelLoader loads the first worksheet of an xlsx workbook. The header row
// supplies column names; blank cells are treated as absent.
type ExcelLoader struct {
	baseDir string
}

func NewExcelLoader(baseDir string) *ExcelLoader {
	return &ExcelLoader{baseDir: baseDir}
}

func (l *ExcelLoader) Load(ctx context.Context, path string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(l.baseDir, path)
	workbook, err := excelize.OpenFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", fullPath, err)
	}
	defer func() {
		if cerr := workbook.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", fullPath).Msg("Failed to close workbook")
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", fullPath)
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		record := make(Record, len(headers))
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" || cell == "" {
				continue
			}
			record[headers[i]] = cell
		}
		records = append(records, record)
	}

	normalized := Normalize(records)
	log.Debug().Str("path", fullPath).Int("rows", len(normalized)).Msg("Loaded benchmark sheet")
	return normalized, nil
}
