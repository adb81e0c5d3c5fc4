package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/biztime"
)

const (
	MaxSubjectLength  = 512
	MaxEmailLength    = 320
	MaxCategoryLength = 128
	MaxProductLength  = 128
)

// Assessment is the automated classification merged onto a ticket after intake.
type Assessment struct {
	Category         string
	Product          string
	Priority         vo.Priority
	Confidence       int
	Summary          string
	DraftReply       string
	SuggestedActions map[string]any
}

type Ticket struct {
	id                 int64
	subject            string
	customerEmail      string
	status             vo.TicketStatus
	category           string
	product            string
	priority           vo.Priority
	aiConfidence       int
	aiSummary          string
	aiSuggestedActions map[string]any
	aiDraftReply       string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(subject string, customerEmail string) (*Ticket, error) {
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	if utf8.RuneCountInString(customerEmail) > MaxEmailLength {
		return nil, fmt.Errorf("customer email exceeds maximum length of %d characters", MaxEmailLength)
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:            subject,
		customerEmail:      customerEmail,
		status:             vo.StatusNew,
		priority:           vo.PriorityMedium,
		aiSuggestedActions: make(map[string]any),
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructTicket(
	id int64,
	subject string,
	customerEmail string,
	status vo.TicketStatus,
	category string,
	product string,
	priority vo.Priority,
	aiConfidence int,
	aiSummary string,
	aiSuggestedActions map[string]any,
	aiDraftReply string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	if aiSuggestedActions == nil {
		aiSuggestedActions = make(map[string]any)
	}

	return &Ticket{
		id:                 id,
		subject:            subject,
		customerEmail:      customerEmail,
		status:             status,
		category:           category,
		product:            product,
		priority:           priority,
		aiConfidence:       aiConfidence,
		aiSummary:          aiSummary,
		aiSuggestedActions: aiSuggestedActions,
		aiDraftReply:       aiDraftReply,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() int64 {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) CustomerEmail() string {
	return t.customerEmail
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Product() string {
	return t.product
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AIConfidence() int {
	return t.aiConfidence
}

func (t *Ticket) AISummary() string {
	return t.aiSummary
}

func (t *Ticket) AISuggestedActions() map[string]any {
	actionsCopy := make(map[string]any, len(t.aiSuggestedActions))
	for k, v := range t.aiSuggestedActions {
		actionsCopy[k] = v
	}
	return actionsCopy
}

func (t *Ticket) AIDraftReply() string {
	return t.aiDraftReply
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id int64) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ApplyAssessment overwrites the classification fields with an automated
// assessment. The status is left untouched.
func (t *Ticket) ApplyAssessment(a Assessment) error {
	if !a.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", a.Priority)
	}
	if a.Confidence < 0 || a.Confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100, got %d", a.Confidence)
	}

	t.category = a.Category
	t.product = a.Product
	t.priority = a.Priority
	t.aiConfidence = a.Confidence
	t.aiSummary = a.Summary
	t.aiDraftReply = a.DraftReply
	t.aiSuggestedActions = make(map[string]any, len(a.SuggestedActions))
	for k, v := range a.SuggestedActions {
		t.aiSuggestedActions[k] = v
	}
	t.touch()

	return nil
}

// ChangeStatus sets any valid status; there is no transition table.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(category string) error {
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return fmt.Errorf("category exceeds maximum length of %d characters", MaxCategoryLength)
	}

	t.category = category
	t.touch()
	return nil
}

func (t *Ticket) ChangeProduct(product string) error {
	if utf8.RuneCountInString(product) > MaxProductLength {
		return fmt.Errorf("product exceeds maximum length of %d characters", MaxProductLength)
	}

	t.product = product
	t.touch()
	return nil
}

// ReplyRecipient returns override when set, otherwise the customer address.
func (t *Ticket) ReplyRecipient(override string) string {
	if override != "" {
		return override
	}
	return t.customerEmail
}

// ReplySubject returns override when set, then the ticket subject, then fallback.
func (t *Ticket) ReplySubject(override, fallback string) string {
	if override != "" {
		return override
	}
	if t.subject != "" {
		return t.subject
	}
	return fallback
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}
