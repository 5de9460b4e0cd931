package domain

import "time"

// SpanTiming is the recorded duration of one finished span.
type SpanTiming struct {
	Name     string        `json:"name"`
	Depth    int           `json:"depth"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}
