package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"snplot/domain/photometry"
	"snplot/internal/logging"
	"snplot/ports"
)

// Column order of the observation table format: one header row, then one row
// per measurement.
var columns = []string{"time", "band", "flux", "fluxerr", "zp", "zpsys"}

// Reader loads observation batches from CSV or Excel files.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

var _ ports.BatchReader = (*Reader)(nil)

// NewReader creates a reader for the given file; the format is chosen from
// the extension.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// ReadBatch reads and validates an observation batch.
func (r *Reader) ReadBatch() (*photometry.Batch, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("observation file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	logging.Default.Debug("read %d rows from %s", len(rows), r.filePath)

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have a header row and at least one data row", r.filePath)
	}

	return parseRows(rows)
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

// parseRows converts header+data rows into a validated Batch. The header must
// name all six observation columns; extra columns are ignored.
func parseRows(rows [][]string) (*photometry.Batch, error) {
	colIdx := make(map[string]int, len(columns))
	for i, name := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range columns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	batch := &photometry.Batch{}
	for n, row := range rows[1:] {
		get := func(name string) string {
			i := colIdx[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		t, err := strconv.ParseFloat(get("time"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad time %q", n+1, get("time"))
		}
		flux, err := strconv.ParseFloat(get("flux"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad flux %q", n+1, get("flux"))
		}
		fluxerr, err := strconv.ParseFloat(get("fluxerr"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad fluxerr %q", n+1, get("fluxerr"))
		}
		zp, err := strconv.ParseFloat(get("zp"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad zp %q", n+1, get("zp"))
		}
		band, err := photometry.ParseBandKey(get("band"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		sys, err := photometry.ParseSysKey(get("zpsys"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}

		batch.Time = append(batch.Time, t)
		batch.Band = append(batch.Band, band)
		batch.Flux = append(batch.Flux, flux)
		batch.FluxErr = append(batch.FluxErr, fluxerr)
		batch.ZP = append(batch.ZP, zp)
		batch.ZPSys = append(batch.ZPSys, sys)
	}

	if err := batch.Validate(); err != nil {
		return nil, err
	}
	return batch, nil
}
