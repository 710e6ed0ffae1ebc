// Package entities contains the core domain entities for the wrap notifier.
// It defines queued jobs, token events returned by the subgraph and delivery records.
package entities

import (
	"fmt"
	"strings"
)

// EventType identifies which side of a super token wrap an event belongs to.
type EventType string

// EventType constants.
const (
	EventTypeUpgrade   EventType = "upgrade"
	EventTypeDowngrade EventType = "downgrade"
)

// ParseEventType converts a route tag or CLI argument into an EventType.
func ParseEventType(s string) (EventType, error) {
	switch EventType(strings.ToLower(strings.TrimSpace(s))) {
	case EventTypeUpgrade:
		return EventTypeUpgrade, nil
	case EventTypeDowngrade:
		return EventTypeDowngrade, nil
	default:
		return "", fmt.Errorf("unknown event type %q (supported: upgrade, downgrade)", s)
	}
}

// IsValid reports whether t is one of the known event types.
func (t EventType) IsValid() bool {
	return t == EventTypeUpgrade || t == EventTypeDowngrade
}

// String returns the raw tag.
func (t EventType) String() string {
	return string(t)
}

// Job is one queued unit of work: a token event to resolve and notify.
type Job struct {
	TokenAddress string
	EventType    EventType
	BlockNumber  uint64
}
