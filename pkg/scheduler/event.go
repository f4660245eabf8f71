package scheduler

// EventKind enumerates the trace notifications a scheduler emits.
type EventKind int

const (
	EventTickStarted EventKind = iota
	EventTickCompleted
	EventPhaseStarted
	EventPhaseCompleted
	EventFlushStarted
	EventFlushCompleted
	EventTaskInvoked
	EventTaskFailed
)

var eventKindNames = [...]string{
	EventTickStarted:    "tick started",
	EventTickCompleted:  "tick completed",
	EventPhaseStarted:   "phase started",
	EventPhaseCompleted: "phase completed",
	EventFlushStarted:   "priority flush started",
	EventFlushCompleted: "priority flush completed",
	EventTaskInvoked:    "task invoked",
	EventTaskFailed:     "task failed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown event"
	}
	return eventKindNames[k]
}

// Event is a side-channel notification about scheduler progress.
// Events never influence execution order.
type Event struct {
	Kind EventKind
	Tick uint64

	// Queue is the phase for phase events and the queue the task came from
	// for task events. It is QueueNone for tick and flush events.
	Queue Queue

	// TaskID labels the task for task events, if it has one.
	TaskID string

	// Invoked counts the tasks run by a completed phase or flush.
	Invoked int

	// Err is set for EventTaskFailed.
	Err error
}

// Observer receives scheduler events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
