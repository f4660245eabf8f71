package fib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackebrot/go-event-loop/internal/loop"
	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

func TestTaskExecute(t *testing.T) {
	task := NewTask("fib10", 10, nil)
	assert.Equal(t, "fib10", task.ID())
	assert.NoError(t, task.Execute())
}

func TestTaskNegative(t *testing.T) {
	task := NewTask("fib-1", -1, nil)
	assert.ErrorContains(t, task.Execute(), "n=-1 is negative")
}

func TestTaskOnLoop(t *testing.T) {
	l := loop.New()
	require.NoError(t, l.Enqueue(scheduler.QueueTimers, NewTask("ok", 5, nil)))
	require.NoError(t, l.Enqueue(scheduler.QueuePoll, NewTask("bad", -3, nil)))

	err := l.Tick()
	var taskErr *scheduler.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, "bad", taskErr.TaskID)
	assert.Equal(t, scheduler.QueuePoll, taskErr.Queue)
}

func TestNilTaskRejected(t *testing.T) {
	l := loop.New()

	err := l.Enqueue(scheduler.QueueTimers, (*Task)(nil))
	assert.ErrorIs(t, err, scheduler.ErrInvalidTask)
	assert.Zero(t, l.PendingTasksCount())
	assert.NoError(t, l.Tick())
}
