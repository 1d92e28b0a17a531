package events

import (
	"sync"
)

// InMemoryStore keeps events in memory, grouped by stream.
type InMemoryStore struct {
	streams   map[string][]Event
	allEvents []Event
	mutex     sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory event store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:   make(map[string][]Event),
		allEvents: make([]Event, 0),
	}
}

var _ Store = (*InMemoryStore)(nil)

func (s *InMemoryStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.streams[streamID] = append(s.streams[streamID], event)
	s.allEvents = append(s.allEvents, event)
	return nil
}

func (s *InMemoryStore) ReadEvents(streamID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	out := make([]Event, len(stream))
	copy(out, stream)
	return out, nil
}

func (s *InMemoryStore) ReadAllEvents() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Event, len(s.allEvents))
	copy(out, s.allEvents)
	return out, nil
}
