package domain

import (
	"strings"
	"time"
)

// Fingerprint records the action key that last produced an artifact.
type Fingerprint struct {
	Artifact  string    `json:"artifact,omitzero"`
	ActionKey string    `json:"action_key,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ActionStatus is the incremental state of a planned action.
type ActionStatus string

const (
	// ActionStatusStale indicates the action must run.
	ActionStatusStale ActionStatus = "stale"
	// ActionStatusUpToDate indicates the recorded key matches and every output exists.
	ActionStatusUpToDate ActionStatus = "up-to-date"
	// ActionStatusUnknown indicates no fingerprinting was performed.
	ActionStatusUnknown ActionStatus = "unknown"
)

// NeedsRun reports whether an executor has to run the action.
func (s ActionStatus) NeedsRun() bool {
	return s != ActionStatusUpToDate
}

// NormalizeActionStatus converts a string to an ActionStatus, defaulting to unknown.
func NormalizeActionStatus(s string) ActionStatus {
	switch strings.ToLower(s) {
	case string(ActionStatusStale):
		return ActionStatusStale
	case string(ActionStatusUpToDate):
		return ActionStatusUpToDate
	default:
		return ActionStatusUnknown
	}
}
