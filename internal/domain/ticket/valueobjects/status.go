package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew             TicketStatus = "new"
	StatusNeedsInfo       TicketStatus = "needs_info"
	StatusWaitingCustomer TicketStatus = "waiting_customer"
	StatusSolved          TicketStatus = "solved"
	StatusEscalated       TicketStatus = "escalated"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:             true,
	StatusNeedsInfo:       true,
	StatusWaitingCustomer: true,
	StatusSolved:          true,
	StatusEscalated:       true,
}

// TicketStatuses lists every status in workflow order.
var TicketStatuses = []TicketStatus{
	StatusNew,
	StatusNeedsInfo,
	StatusWaitingCustomer,
	StatusSolved,
	StatusEscalated,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
