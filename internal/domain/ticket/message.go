package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/biztime"
)

// Message is one email in a ticket thread. Messages are never modified once stored.
type Message struct {
	id          int64
	ticketID    int64
	direction   vo.Direction
	fromEmail   string
	toEmail     string
	subject     string
	rawHeaders  map[string]any
	cleanedText string
	createdAt   time.Time
}

func NewInboundMessage(
	ticketID int64,
	fromEmail string,
	toEmail string,
	subject string,
	cleanedText string,
	rawHeaders map[string]any,
) (*Message, error) {
	return newMessage(ticketID, vo.DirectionInbound, fromEmail, toEmail, subject, cleanedText, rawHeaders)
}

func NewOutboundMessage(
	ticketID int64,
	fromEmail string,
	toEmail string,
	subject string,
	bodyText string,
	rawHeaders map[string]any,
) (*Message, error) {
	return newMessage(ticketID, vo.DirectionOutbound, fromEmail, toEmail, subject, bodyText, rawHeaders)
}

func newMessage(
	ticketID int64,
	direction vo.Direction,
	fromEmail, toEmail, subject, text string,
	rawHeaders map[string]any,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fromEmail) > MaxEmailLength || len(toEmail) > MaxEmailLength {
		return nil, fmt.Errorf("email address exceeds maximum length of %d characters", MaxEmailLength)
	}
	if rawHeaders == nil {
		rawHeaders = make(map[string]any)
	}

	return &Message{
		ticketID:    ticketID,
		direction:   direction,
		fromEmail:   fromEmail,
		toEmail:     toEmail,
		subject:     subject,
		rawHeaders:  rawHeaders,
		cleanedText: text,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id int64,
	ticketID int64,
	direction vo.Direction,
	fromEmail string,
	toEmail string,
	subject string,
	rawHeaders map[string]any,
	cleanedText string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction: %s", direction)
	}
	if rawHeaders == nil {
		rawHeaders = make(map[string]any)
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		direction:   direction,
		fromEmail:   fromEmail,
		toEmail:     toEmail,
		subject:     subject,
		rawHeaders:  rawHeaders,
		cleanedText: cleanedText,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() int64 {
	return m.id
}

func (m *Message) TicketID() int64 {
	return m.ticketID
}

func (m *Message) Direction() vo.Direction {
	return m.direction
}

func (m *Message) FromEmail() string {
	return m.fromEmail
}

func (m *Message) ToEmail() string {
	return m.toEmail
}

func (m *Message) Subject() string {
	return m.subject
}

func (m *Message) RawHeaders() map[string]any {
	headersCopy := make(map[string]any, len(m.rawHeaders))
	for k, v := range m.rawHeaders {
		headersCopy[k] = v
	}
	return headersCopy
}

func (m *Message) CleanedText() string {
	return m.cleanedText
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id int64) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// Header looks a header up case-insensitively. Multi-valued headers stored as
// lists yield their first value.
func (m *Message) Header(name string) string {
	for k, v := range m.rawHeaders {
		if !strings.EqualFold(k, name) {
			continue
		}
		switch val := v.(type) {
		case string:
			return val
		case []string:
			if len(val) > 0 {
				return val[0]
			}
		case []any:
			if len(val) > 0 {
				if s, ok := val[0].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}

func (m *Message) IsInbound() bool {
	return m.direction == vo.DirectionInbound
}
