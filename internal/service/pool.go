package service

import "context"

// WorkerPool bounds the number of concurrently executing candidate tasks.
// The budget is process-wide: one pool instance is shared by every running
// job, so total resource usage stays bounded no matter how many jobs run at
// once.
type WorkerPool struct {
	slots  chan int
	budget int
}

// DefaultWorkerBudget is the pool size used when none is configured.
const DefaultWorkerBudget = 20

// NewWorkerPool creates a pool with the given budget.
// Parameters:
//   - budget: maximum simultaneous tasks; non-positive uses DefaultWorkerBudget.
// Returns:
//   - *WorkerPool: initialized pool with all slots free.
func NewWorkerPool(budget int) *WorkerPool {
	if budget <= 0 {
		budget = DefaultWorkerBudget
	}
	slots := make(chan int, budget)
	for i := 1; i <= budget; i++ {
		slots <- i
	}
	return &WorkerPool{slots: slots, budget: budget}
}

// Budget returns the configured worker budget.
func (p *WorkerPool) Budget() int {
	return p.budget
}

// InFlight returns the number of currently executing tasks.
func (p *WorkerPool) InFlight() int {
	return p.budget - len(p.slots)
}

// Submit admits the task once a worker slot is free, then runs it on its own
// goroutine, passing the slot's worker ordinal. Submission order is admission
// order, best effort. Submit blocks while the pool is saturated.
// Parameters:
//   - ctx: aborts the wait for a slot; a task already started is unaffected.
//   - task: work to execute; receives the worker ordinal (1-based).
// Returns:
//   - error: ctx.Err() if the context ended before a slot freed, else nil.
func (p *WorkerPool) Submit(ctx context.Context, task func(workerID int)) error {
	select {
	case id := <-p.slots:
		go func() {
			defer func() { p.slots <- id }()
			task(id)
		}()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
