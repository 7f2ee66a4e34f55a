// File: internal/infra/worker/pool.go
package worker

import (
	"context"
	"errors"
	"log"
	"runtime"
	"sync"
)

type Task func(ctx context.Context) error

// KeyedPool runs submitted tasks on a fixed set of workers, routing each task
// to a worker chosen by its key. Tasks sharing a key therefore execute in
// submission order on a single goroutine, which is what makes one user's
// read-validate-write conversation turn safe without a store-wide lock.
type KeyedPool struct {
	wg     sync.WaitGroup
	queues []chan Task
	n      int
}

func NewKeyedPool(workers int) *KeyedPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	queues := make([]chan Task, workers)
	for i := range queues {
		queues[i] = make(chan Task, 16)
	}
	return &KeyedPool{queues: queues, n: workers}
}

func (p *KeyedPool) Start(ctx context.Context) {
	for i := 0; i < p.n; i++ {
		p.wg.Add(1)
		go func(id int, jobs <-chan Task) {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-jobs:
					if !ok {
						return
					}
					if task == nil {
						continue
					}
					if err := task(ctx); err != nil {
						log.Printf("worker %d task error: %v", id, err)
					}
				}
			}
		}(i, p.queues[i])
	}
}

// Stop closes the queues and waits for in-flight tasks to finish.
func (p *KeyedPool) Stop() {
	for _, q := range p.queues {
		close(q)
	}
	p.wg.Wait()
}

// Submit enqueues the task on the worker owning key. It rejects rather than
// blocks when that worker's queue is saturated, so one flooding user cannot
// stall the polling loop for everyone else.
func (p *KeyedPool) Submit(key int64, task Task) error {
	if task == nil {
		return errors.New("nil task")
	}
	idx := int(uint64(key) % uint64(p.n))
	select {
	case p.queues[idx] <- task:
		return nil
	default:
		return errors.New("worker queue full")
	}
}
