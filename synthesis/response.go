package synthesis

import (
	"iter"

	"github.com/google/uuid"

	"github.com/BASIN-3D/basin3d/schema"
)

// Response pairs a lazy result stream with the messages accumulated while
// producing it. The stream is single-use: it may be ranged over once.
type Response[T any] struct {
	// ID correlates this response's log lines and messages.
	ID uuid.UUID
	// Results yields translated records lazily, in provider registration
	// order. Breaking out early abandons the remaining providers.
	Results iter.Seq[T]
	// Messages accumulates warnings and errors while Results is consumed.
	// It is complete once Results is drained.
	Messages *schema.MessageList
}

func newResponse[T any](results iter.Seq[T], msgs *schema.MessageList) *Response[T] {
	return &Response[T]{
		ID:       uuid.New(),
		Results:  results,
		Messages: msgs,
	}
}

// Collect drains the response's stream into a slice. Convenience for callers
// that do not need lazy consumption.
func (r *Response[T]) Collect() []T {
	var out []T
	for v := range r.Results {
		out = append(out, v)
	}
	return out
}
