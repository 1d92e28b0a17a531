package events

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreAppendAndRead(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.AppendEvent("run-1", NewEvent(AnalysisStartedEvent, "run-1", AnalysisStarted{RunID: "run-1"})))
	require.NoError(t, store.AppendEvent("run-1", NewEvent(StageCompletedEvent, "run-1", StageCompleted{Stage: "load"})))
	require.NoError(t, store.AppendEvent("run-2", NewEvent(AnalysisStartedEvent, "run-2", AnalysisStarted{RunID: "run-2"})))

	events, err := store.ReadEvents("run-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, AnalysisStartedEvent, events[0].Type())
	assert.Equal(t, StageCompletedEvent, events[1].Type())

	all, err := store.ReadAllEvents()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemoryStoreUnknownStream(t *testing.T) {
	store := NewInMemoryStore()

	events, err := store.ReadEvents("nope")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestInMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			stream := fmt.Sprintf("run-%d", n%2)
			for j := 0; j < 50; j++ {
				_ = store.AppendEvent(stream, NewEvent(StageCompletedEvent, stream, nil))
			}
		}(i)
	}
	wg.Wait()

	all, err := store.ReadAllEvents()
	require.NoError(t, err)
	assert.Len(t, all, 500)
}
