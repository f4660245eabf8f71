package loop

import "github.com/hackebrot/go-event-loop/pkg/scheduler"

// taskQueue is an unbounded FIFO of tasks.
type taskQueue struct {
	items []scheduler.Task
	head  int
}

func (q *taskQueue) push(task scheduler.Task) {
	q.items = append(q.items, task)
}

// pop removes and returns the head task.
func (q *taskQueue) pop() (scheduler.Task, bool) {
	if q.head == len(q.items) {
		return nil, false
	}

	task := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	// Reuse the backing array once drained
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return task, true
}

func (q *taskQueue) len() int {
	return len(q.items) - q.head
}
