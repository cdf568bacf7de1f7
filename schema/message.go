package schema

import "sync"

// MessageLevel represents the severity of a synthesis message
type MessageLevel string

const (
	// LevelWarn marks a recoverable anomaly, e.g. an unmapped vocabulary term
	LevelWarn MessageLevel = "WARN"
	// LevelError marks a provider-scoped failure, e.g. a fetch that raised
	LevelError MessageLevel = "ERROR"
	// LevelCritical marks a condition that prevented any synthesis for a provider
	LevelCritical MessageLevel = "CRITICAL"
)

// SynthesisMessage is a non-fatal diagnostic describing a translation or
// provider-level anomaly encountered during a query. Provider is empty for
// request-level messages.
type SynthesisMessage struct {
	Level    MessageLevel `json:"level"`
	Text     string       `json:"text"`
	Provider string       `json:"provider,omitempty"`
}

// MessageList is an append-only accumulator of synthesis messages. It is safe
// for concurrent appends and reads, so parallel provider fetches can report
// diagnostics while the caller is still draining the result stream.
type MessageList struct {
	mu       sync.Mutex
	messages []SynthesisMessage
}

// NewMessageList returns an empty message list.
func NewMessageList() *MessageList {
	return &MessageList{}
}

// Append adds a message to the list.
func (l *MessageList) Append(m SynthesisMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

// Warn appends a WARN level message. Provider may be empty for request-level
// messages.
func (l *MessageList) Warn(provider, text string) {
	l.Append(SynthesisMessage{Level: LevelWarn, Text: text, Provider: provider})
}

// Error appends an ERROR level message.
func (l *MessageList) Error(provider, text string) {
	l.Append(SynthesisMessage{Level: LevelError, Text: text, Provider: provider})
}

// Critical appends a CRITICAL level message.
func (l *MessageList) Critical(provider, text string) {
	l.Append(SynthesisMessage{Level: LevelCritical, Text: text, Provider: provider})
}

// All returns a snapshot copy of the accumulated messages.
func (l *MessageList) All() []SynthesisMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]SynthesisMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of accumulated messages.
func (l *MessageList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
