// Package knowledge holds knowledge-base articles and the search port used to
// suggest them for incoming tickets.
package knowledge

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/biztime"
)

const (
	MaxTitleLength    = 512
	MaxLanguageLength = 16
	DefaultLanguage   = "ru"
)

type Document struct {
	id        int64
	title     string
	body      string
	tags      []string
	language  string
	status    vo.DocumentStatus
	updatedAt time.Time
}

func NewDocument(title, body string, tags []string, language string, status vo.DocumentStatus) (*Document, error) {
	d := &Document{}
	if err := d.set(title, body, tags, language, status); err != nil {
		return nil, err
	}
	return d, nil
}

func ReconstructDocument(
	id int64,
	title, body string,
	tags []string,
	language string,
	status vo.DocumentStatus,
	updatedAt time.Time,
) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid document status: %s", status)
	}
	if tags == nil {
		tags = []string{}
	}

	return &Document{
		id:        id,
		title:     title,
		body:      body,
		tags:      tags,
		language:  language,
		status:    status,
		updatedAt: updatedAt,
	}, nil
}

// Update replaces every editable field.
func (d *Document) Update(title, body string, tags []string, language string, status vo.DocumentStatus) error {
	return d.set(title, body, tags, language, status)
}

func (d *Document) set(title, body string, tags []string, language string, status vo.DocumentStatus) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if language == "" {
		language = DefaultLanguage
	}
	if len(language) > MaxLanguageLength {
		return fmt.Errorf("language exceeds maximum length of %d characters", MaxLanguageLength)
	}
	if status == "" {
		status = vo.StatusActive
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid document status: %s", status)
	}

	tagsCopy := make([]string, 0, len(tags))
	tagsCopy = append(tagsCopy, tags...)

	d.title = title
	d.body = body
	d.tags = tagsCopy
	d.language = language
	d.status = status
	d.updatedAt = biztime.NowUTC()
	return nil
}

func (d *Document) ID() int64 {
	return d.id
}

func (d *Document) Title() string {
	return d.title
}

func (d *Document) Body() string {
	return d.body
}

func (d *Document) Tags() []string {
	tagsCopy := make([]string, len(d.tags))
	copy(tagsCopy, d.tags)
	return tagsCopy
}

func (d *Document) Language() string {
	return d.language
}

func (d *Document) Status() vo.DocumentStatus {
	return d.status
}

func (d *Document) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Document) SetID(id int64) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}
