package scheduler

import "fmt"

// Queue identifies one of the scheduler's eight queues.
type Queue int

const (
	// QueueNone marks events that are not tied to a queue.
	QueueNone Queue = -1
)

const (
	// QueuePriorityImmediate drains completely before any phase and after
	// every single phase task.
	QueuePriorityImmediate Queue = iota
	// QueuePriorityDeferred drains completely after QueuePriorityImmediate.
	QueuePriorityDeferred
	QueueTimers
	QueuePending
	QueueIdlePrepare
	QueuePoll
	QueueCheck
	QueueClosing

	// QueueCount is the number of queues.
	QueueCount = int(QueueClosing) + 1
)

var queueNames = [QueueCount]string{
	QueuePriorityImmediate: "priority-immediate",
	QueuePriorityDeferred:  "priority-deferred",
	QueueTimers:            "timers",
	QueuePending:           "pending",
	QueueIdlePrepare:       "idle-prepare",
	QueuePoll:              "poll",
	QueueCheck:             "check",
	QueueClosing:           "closing",
}

var phases = [...]Queue{
	QueueTimers,
	QueuePending,
	QueueIdlePrepare,
	QueuePoll,
	QueueCheck,
	QueueClosing,
}

func (q Queue) String() string {
	if q == QueueNone {
		return "none"
	}
	if !q.Valid() {
		return fmt.Sprintf("queue(%d)", int(q))
	}
	return queueNames[q]
}

// Valid reports whether q names one of the eight queues.
func (q Queue) Valid() bool {
	return q >= 0 && int(q) < QueueCount
}

// IsPhase reports whether q is one of the six phase queues.
func (q Queue) IsPhase() bool {
	return q >= QueueTimers && q <= QueueClosing
}

// ParseQueue returns the queue with the given name.
func ParseQueue(name string) (Queue, error) {
	for i, n := range queueNames {
		if n == name {
			return Queue(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQueue, name)
}

// Queues returns all queues, priority queues first, then phases in drain order.
func Queues() []Queue {
	qs := make([]Queue, QueueCount)
	for i := range qs {
		qs[i] = Queue(i)
	}
	return qs
}

// Phases returns the phase queues in the order a tick runs them.
func Phases() []Queue {
	return phases[:]
}
