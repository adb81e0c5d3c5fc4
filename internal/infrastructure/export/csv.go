package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
)

type CSVEncoder struct{}

func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

func (e *CSVEncoder) Encode(table Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *CSVEncoder) ContentType() string {
	return constants.ContentTypeCSV
}

func (e *CSVEncoder) Extension() string {
	return "csv"
}
