package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FromCSV builds a Frame from CSV data with a header row. A column is
// numeric when every one of its cells parses as a float64 (empty cells
// count as zero); anything else is loaded as a categorical column.
func FromCSV(r io.Reader) (*Frame, error) {
	csvReader := csv.NewReader(r)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := make([][]string, len(headers))
	rows := 0

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", rows+1, len(row), len(headers))
		}
		for i, cell := range row {
			columns[i] = append(columns[i], cell)
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	frame := NewFrame(rows)
	for i, name := range headers {
		if nums, ok := parseNumericColumn(columns[i]); ok {
			if err := frame.SetNumeric(name, nums); err != nil {
				return nil, err
			}
			continue
		}
		if err := frame.SetCategorical(name, columns[i]); err != nil {
			return nil, err
		}
	}

	return frame, nil
}

func parseNumericColumn(cells []string) ([]float64, bool) {
	nums := make([]float64, len(cells))
	for i, cell := range cells {
		if cell == "" {
			nums[i] = 0
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
	}
	return nums, true
}
