package health

import (
	"regexp"
	"time"
)

// States a Status can report.
const (
	StateHealthy   = "healthy"
	StateDegraded  = "degraded"
	StateUnhealthy = "unhealthy"
)

// Message sanitization patterns. Provider locations and credential bags must
// not surface through health endpoints.
var (
	urlRegex        = regexp.MustCompile(`[a-z]+://[^\s]+`)
	credentialRegex = regexp.MustCompile(`(?i)(password|token|key|secret|credential)[^a-zA-Z]*[:=][^,\s}]+`)
)

// Status represents the health state of a component or system.
type Status struct {
	Component   string    `json:"component"`
	Healthy     bool      `json:"healthy"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	SubStatuses []Status  `json:"sub_statuses,omitempty"`
}

// NewHealthy creates a healthy status.
func NewHealthy(component, message string) Status {
	return newStatus(component, StateHealthy, message)
}

// NewDegraded creates a degraded status.
func NewDegraded(component, message string) Status {
	return newStatus(component, StateDegraded, message)
}

// NewUnhealthy creates an unhealthy status.
func NewUnhealthy(component, message string) Status {
	return newStatus(component, StateUnhealthy, message)
}

func newStatus(component, state, message string) Status {
	return Status{
		Component: component,
		Healthy:   state == StateHealthy,
		Status:    state,
		Message:   sanitizeMessage(message),
		Timestamp: time.Now(),
	}
}

// IsHealthy returns true if the status is healthy.
func (s Status) IsHealthy() bool {
	return s.Status == StateHealthy
}

// IsDegraded returns true if the status is degraded.
func (s Status) IsDegraded() bool {
	return s.Status == StateDegraded
}

// IsUnhealthy returns true if the status is unhealthy.
func (s Status) IsUnhealthy() bool {
	return s.Status == StateUnhealthy
}

// WithSubStatus adds a sub-status and returns a copy.
func (s Status) WithSubStatus(sub Status) Status {
	subStatuses := make([]Status, len(s.SubStatuses), len(s.SubStatuses)+1)
	copy(subStatuses, s.SubStatuses)
	s.SubStatuses = append(subStatuses, sub)
	return s
}

// sanitizeMessage redacts URLs and credential-looking fragments.
func sanitizeMessage(message string) string {
	message = urlRegex.ReplaceAllString(message, "[URL]")
	message = credentialRegex.ReplaceAllString(message, "$1=[REDACTED]")
	return message
}
