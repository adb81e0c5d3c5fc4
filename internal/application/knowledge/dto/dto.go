package dto

import (
	"time"

	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
)

type KbDocumentDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Language  string    `json:"language"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KbDocumentRequest is used for both create and full update. Empty language
// and status fall back to "ru" and "active".
type KbDocumentRequest struct {
	Title    string   `json:"title" binding:"required,max=512" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	Tags     []string `json:"tags" yaml:"tags"`
	Language string   `json:"language" binding:"omitempty,max=16" yaml:"language"`
	Status   string   `json:"status" binding:"omitempty,kb_status" yaml:"status"`
}

type KbSearchHitDTO struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet"`
}

type KbSearchResponse struct {
	Query string           `json:"query"`
	Hits  []KbSearchHitDTO `json:"hits"`
}

// ImportFile is the YAML layout read by `kb import`.
type ImportFile struct {
	Documents []KbDocumentRequest `yaml:"documents"`
}

func ToKbDocumentDTO(d *knowledge.Document) *KbDocumentDTO {
	if d == nil {
		return nil
	}

	return &KbDocumentDTO{
		ID:        d.ID(),
		Title:     d.Title(),
		Body:      d.Body(),
		Tags:      d.Tags(),
		Language:  d.Language(),
		Status:    d.Status().String(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func ToKbSearchHitDTO(h knowledge.SearchHit) KbSearchHitDTO {
	return KbSearchHitDTO{
		ID:      h.ID,
		Title:   h.Title,
		Rank:    h.Rank,
		Snippet: h.Snippet,
	}
}
