package events

import (
	"time"
)

// Event is one telemetry record emitted by the analysis pipeline. The stream
// identifier is the run id, so one run's events can be read back together.
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
}

// Store collects events per stream.
type Store interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string) ([]Event, error)
	ReadAllEvents() ([]Event, error)
}

// BaseEvent is the standard Event implementation.
type BaseEvent struct {
	EventType string
	Stream    string
	EventData interface{}
	EventTime time.Time
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) StreamID() string {
	return e.Stream
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Timestamp() time.Time {
	return e.EventTime
}

// NewEvent creates a timestamped event.
func NewEvent(eventType, streamID string, data interface{}) Event {
	return BaseEvent{
		EventType: eventType,
		Stream:    streamID,
		EventData: data,
		EventTime: time.Now(),
	}
}
