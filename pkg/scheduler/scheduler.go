package scheduler

// Scheduler owns the named queues and drains them one tick at a time.
type Scheduler interface {
	// Enqueue appends a task to the end of the named queue.
	Enqueue(queue Queue, task Task) error

	// Tick runs every phase once, in order, flushing the priority queues
	// before each phase and after each phase task.
	Tick() error

	// PendingTasksCount returns the number of tasks waiting to be executed.
	PendingTasksCount() int
}
