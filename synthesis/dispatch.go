package synthesis

import (
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
)

// providerStream is one provider's planned contribution to a query: a
// translated result sequence that yields a non-nil error at most once, as its
// final element.
type providerStream[T any] struct {
	ds  provider.DataSource
	seq func() iter.Seq2[T, error]
}

// merge combines the planned provider streams into one lazy sequence in
// registration order. A provider failing mid-stream keeps the records it
// already produced and does not stop the remaining providers. Query duration
// and message metrics are recorded when the sequence ends, drained or not.
func merge[T any](s *Synthesizer, operation string, streams []providerStream[T], msgs *schema.MessageList, start time.Time) iter.Seq[T] {
	if s.parallel && len(streams) > 1 {
		return mergeParallel(s, operation, streams, msgs, start)
	}
	return func(yield func(T) bool) {
		defer s.finishQuery(operation, msgs, start)
		for _, st := range streams {
			n := 0
			for v, err := range st.seq() {
				if err != nil {
					s.streamFailed(st.ds, err, msgs)
					break
				}
				n++
				if !yield(v) {
					s.recordRecords(operation, st.ds.ID, n)
					return
				}
			}
			s.recordRecords(operation, st.ds.ID, n)
		}
	}
}

// mergeParallel drains every provider stream concurrently, then yields the
// buffered results in registration order. Latency improves at the cost of
// buffering each provider's results in memory.
func mergeParallel[T any](s *Synthesizer, operation string, streams []providerStream[T], msgs *schema.MessageList, start time.Time) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.finishQuery(operation, msgs, start)

		results := make([][]T, len(streams))
		var g errgroup.Group
		for i, st := range streams {
			g.Go(func() error {
				for v, err := range st.seq() {
					if err != nil {
						s.streamFailed(st.ds, err, msgs)
						return nil
					}
					results[i] = append(results[i], v)
				}
				return nil
			})
		}
		// Streams never surface errors through the group; failures become
		// messages so one provider cannot tear the query down.
		_ = g.Wait()

		for i, st := range streams {
			s.recordRecords(operation, st.ds.ID, len(results[i]))
			for _, v := range results[i] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (s *Synthesizer) streamFailed(ds provider.DataSource, err error, msgs *schema.MessageList) {
	msgs.Error(ds.ID, fmt.Sprintf("datasource %s failed while streaming results: %v", ds.ID, err))
	s.logger.Warn("provider fetch failed", "datasource", ds.ID, "error", err)
	if s.metrics != nil {
		s.metrics.RecordProviderError(ds.ID)
	}
}

func (s *Synthesizer) recordRecords(operation, datasource string, n int) {
	if s.metrics != nil {
		s.metrics.RecordRecords(operation, datasource, n)
	}
}

func (s *Synthesizer) finishQuery(operation string, msgs *schema.MessageList, start time.Time) {
	s.recordMessages(msgs)
	if s.metrics != nil {
		s.metrics.ObserveQueryDuration(operation, time.Since(start).Seconds())
	}
	s.logger.Debug("query finished", "operation", operation, "elapsed", time.Since(start))
}
