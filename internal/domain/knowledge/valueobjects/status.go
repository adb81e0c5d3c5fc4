package valueobjects

import "fmt"

// DocumentStatus controls search visibility; only active documents are searchable.
type DocumentStatus string

const (
	StatusActive   DocumentStatus = "active"
	StatusArchived DocumentStatus = "archived"
)

func (s DocumentStatus) String() string {
	return string(s)
}

func (s DocumentStatus) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

func (s DocumentStatus) IsActive() bool {
	return s == StatusActive
}

func NewDocumentStatus(s string) (DocumentStatus, error) {
	ds := DocumentStatus(s)
	if !ds.IsValid() {
		return "", fmt.Errorf("invalid document status: %s", s)
	}
	return ds, nil
}
