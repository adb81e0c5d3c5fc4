package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
)

// XLSXEncoder writes a single-sheet workbook.
type XLSXEncoder struct {
	sheet string
}

func NewXLSXEncoder(sheet string) *XLSXEncoder {
	return &XLSXEncoder{sheet: sheet}
}

func (e *XLSXEncoder) Encode(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), e.sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(e.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet writer: %w", err)
	}

	if err := sw.SetRow("A1", toCells(table.Header)); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *XLSXEncoder) ContentType() string {
	return constants.ContentTypeXLSX
}

func (e *XLSXEncoder) Extension() string {
	return "xlsx"
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
