// Package notify announces git action outcomes to interested sinks (logs,
// webhooks). Notifiers are best-effort: a failed notification never affects
// the action result it describes.
package notify

import (
	"context"
	"time"
)

// EventType represents the kind of git action event.
type EventType string

const (
	EventActionStarted   EventType = "action_started"
	EventActionCompleted EventType = "action_completed"
	EventActionFailed    EventType = "action_failed"
	EventActionCancelled EventType = "action_cancelled"
	EventPRCreated       EventType = "pr_created"
)

// Severity constants for events.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes one git action outcome.
type Event struct {
	Type      EventType `json:"type"`
	ActionID  string    `json:"action_id,omitempty"`
	Phase     string    `json:"phase"` // committing, pushing, creating-pr
	Dir       string    `json:"dir"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier sends notifications about git action events.
type Notifier interface {
	// Notify sends a notification. Implementations should handle their own
	// errors gracefully; callers ignore the returned error beyond logging.
	Notify(ctx context.Context, event Event) error
}
