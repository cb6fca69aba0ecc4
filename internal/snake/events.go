package snake

import (
	"time"

	"github.com/vovakirdan/snake-arena/internal/entity"
)

// Event is a notification raised during a tick. Eat and relocation events
// are queued by collision detection and applied after it; every event of a
// tick is reported back to the host in StepResult.
type Event interface {
	roundEvent()
}

// EatEvent is raised when a head overlaps the apple.
type EatEvent struct {
	Head   entity.ID
	Player entity.ID
}

func (EatEvent) roundEvent() {}

// RelocateAppleEvent requests a new apple position.
type RelocateAppleEvent struct{}

func (RelocateAppleEvent) roundEvent() {}

// DeathEvent is raised when a head is marked dead.
type DeathEvent struct {
	Head   entity.ID
	Player entity.ID
	Cause  DeathCause
}

func (DeathEvent) roundEvent() {}

// PhaseChangedEvent is raised on every phase transition.
type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

func (PhaseChangedEvent) roundEvent() {}

// SpeedChangedEvent is raised when eating shortens the tick interval.
type SpeedChangedEvent struct {
	Interval time.Duration
}

func (SpeedChangedEvent) roundEvent() {}

// eventQueue is a FIFO of pending events, drained once per tick.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Consume returns all pending events in FIFO order and empties the queue.
func (q *eventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *eventQueue) Reset() {
	q.events = nil
}
