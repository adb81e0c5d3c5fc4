package ticket

import (
	"fmt"
	"time"

	"github.com/helpdesk-ai/helpdesk/internal/shared/biztime"
)

// AiRun records one automated assessment of a ticket. Runs are append-only.
type AiRun struct {
	id            int64
	ticketID      int64
	modelVersions map[string]any
	outputs       map[string]any
	confidence    int
	createdAt     time.Time
}

func NewAiRun(ticketID int64, modelVersions, outputs map[string]any, confidence int) (*AiRun, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if modelVersions == nil {
		modelVersions = make(map[string]any)
	}
	if outputs == nil {
		outputs = make(map[string]any)
	}

	return &AiRun{
		ticketID:      ticketID,
		modelVersions: modelVersions,
		outputs:       outputs,
		confidence:    confidence,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructAiRun(id, ticketID int64, modelVersions, outputs map[string]any, confidence int, createdAt time.Time) *AiRun {
	return &AiRun{
		id:            id,
		ticketID:      ticketID,
		modelVersions: modelVersions,
		outputs:       outputs,
		confidence:    confidence,
		createdAt:     createdAt,
	}
}

func (r *AiRun) ID() int64                     { return r.id }
func (r *AiRun) TicketID() int64               { return r.ticketID }
func (r *AiRun) ModelVersions() map[string]any { return r.modelVersions }
func (r *AiRun) Outputs() map[string]any       { return r.outputs }
func (r *AiRun) Confidence() int               { return r.confidence }
func (r *AiRun) CreatedAt() time.Time          { return r.createdAt }

func (r *AiRun) SetID(id int64) error {
	if r.id != 0 {
		return fmt.Errorf("ai run ID is already set")
	}
	r.id = id
	return nil
}
