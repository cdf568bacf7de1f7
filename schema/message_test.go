package schema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageListAppendAndRead(t *testing.T) {
	list := NewMessageList()
	assert.Equal(t, 0, list.Len())

	list.Warn("USGS", "term not mapped")
	list.Error("", "request-level problem")
	list.Critical("EPA", "no mappings at all")

	msgs := list.All()
	require.Len(t, msgs, 3)
	assert.Equal(t, LevelWarn, msgs[0].Level)
	assert.Equal(t, "USGS", msgs[0].Provider)
	assert.Equal(t, LevelError, msgs[1].Level)
	assert.Empty(t, msgs[1].Provider, "request-level message has no provider")
	assert.Equal(t, LevelCritical, msgs[2].Level)
}

func TestMessageListSnapshotIsolation(t *testing.T) {
	list := NewMessageList()
	list.Warn("A", "first")

	snapshot := list.All()
	list.Warn("A", "second")

	assert.Len(t, snapshot, 1, "snapshot does not observe later appends")
	assert.Equal(t, 2, list.Len())
}

func TestMessageListConcurrentAppends(t *testing.T) {
	list := NewMessageList()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				list.Warn("P", "concurrent")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, list.Len())
}
