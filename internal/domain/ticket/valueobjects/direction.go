package valueobjects

import "fmt"

// Direction tells whether a message came from the customer or was sent by support.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

func NewDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid message direction: %s", s)
	}
	return d, nil
}
