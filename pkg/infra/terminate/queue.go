package terminate

import (
	"context"
	"sync"

	"github.com/NeuralTrust/InstallGate/pkg/common"
)

// Queue collects work that must run once the current request has been
// handled, after the handler returned and its response was written.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Defer(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// Run executes queued tasks in registration order and empties the queue.
func (q *Queue) Run() {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func WithQueue(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, common.TerminateQueueKey, q)
}

func FromContext(ctx context.Context) (*Queue, bool) {
	if ctx == nil {
		return nil, false
	}
	q, ok := ctx.Value(common.TerminateQueueKey).(*Queue)
	return q, ok && q != nil
}
