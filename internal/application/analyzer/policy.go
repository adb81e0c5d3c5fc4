package analyzer

import (
	"fmt"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
)

// PriorityPolicy derives a priority from the lower-cased subject and body.
type PriorityPolicy func(low string) vo.Priority

const (
	PolicyLegacy       = "legacy"
	PolicyUrgencyFirst = "urgency_first"
)

// LegacyPriority raises to high on urgency markers, then drops to low on
// question markers, so a message carrying both ends up low.
func LegacyPriority(low string) vo.Priority {
	priority := vo.PriorityMedium
	if containsAny(low, urgencyMarkers) {
		priority = vo.PriorityHigh
	}
	if containsAny(low, lowMarkers) {
		priority = vo.PriorityLow
	}
	return priority
}

// UrgencyFirstPriority lets urgency markers win over question markers.
func UrgencyFirstPriority(low string) vo.Priority {
	if containsAny(low, urgencyMarkers) {
		return vo.PriorityHigh
	}
	if containsAny(low, lowMarkers) {
		return vo.PriorityLow
	}
	return vo.PriorityMedium
}

// PolicyByName maps the analyzer.priority_policy setting to a policy.
// An empty name selects the legacy policy.
func PolicyByName(name string) (PriorityPolicy, error) {
	switch name {
	case "", PolicyLegacy:
		return LegacyPriority, nil
	case PolicyUrgencyFirst:
		return UrgencyFirstPriority, nil
	default:
		return nil, fmt.Errorf("unknown priority policy: %q", name)
	}
}
