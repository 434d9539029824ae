// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"math/rand/v2"
	"sync"

	"github.com/gogpu/outpaint/internal/parallel"
)

// defaultRowsPerTask is the row band height used to split blends across
// workers.
const defaultRowsPerTask = 64

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Serial engine with random noise
//	e := outpaint.NewEngine()
//
//	// Parallel, reproducible engine
//	e := outpaint.NewEngine(outpaint.WithWorkers(8), outpaint.WithSeed(42))
//	defer e.Close()
type EngineOption func(*engineOptions)

type engineOptions struct {
	workers     int
	seed        uint64
	seeded      bool
	rowsPerTask int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		workers:     0, // serial
		rowsPerTask: defaultRowsPerTask,
	}
}

// WithWorkers runs each call on a pool of n workers. Work is split by batch
// item and row band. n <= 0 keeps the engine serial.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithSeed makes noise reproducible. Two engines built with the same seed
// produce bit-identical canvases for the same sequence of calls, regardless
// of worker count.
func WithSeed(seed uint64) EngineOption {
	return func(o *engineOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRowsPerTask sets the row band height used to split blends across
// workers. Values <= 0 process a whole batch item per task.
func WithRowsPerTask(rows int) EngineOption {
	return func(o *engineOptions) {
		o.rowsPerTask = rows
	}
}

// Engine runs Expand and Merge.
//
// Calls are independent pure transforms: an Engine holds no per-image state
// and is safe for concurrent use. The only shared state is the noise seed
// source, which is guarded by a mutex.
type Engine struct {
	pool        *parallel.WorkerPool
	rowsPerTask int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine configured by opts.
// Call Close when the engine has a worker pool.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{rowsPerTask: o.rowsPerTask}
	if o.seeded {
		e.rng = rand.New(rand.NewPCG(o.seed, 0))
	} else {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.workers > 0 {
		e.pool = parallel.NewWorkerPool(o.workers)
	}
	return e
}

// Close stops the worker pool, if any. Close is safe to call multiple times.
// A closed engine keeps working serially.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the pool size, or 0 for a serial engine.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 0
	}
	return e.pool.Workers()
}

// callSeed draws the seed for one call. Every batch item then draws noise
// from its own stream keyed by (callSeed, item), so results do not depend
// on scheduling.
func (e *Engine) callSeed() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Uint64()
}

// run executes tasks on the pool, or inline for a serial engine, and
// returns once all of them have finished.
func (e *Engine) run(tasks []func()) {
	if e.pool == nil || len(tasks) == 1 {
		for _, t := range tasks {
			t()
		}
		return
	}
	e.pool.ExecuteAll(tasks)
}

// perItem builds one task per batch item.
func perItem(batch int, fn func(b int)) []func() {
	tasks := make([]func(), batch)
	for b := range batch {
		tasks[b] = func() { fn(b) }
	}
	return tasks
}

var defaultEngine = NewEngine()

// Expand runs Engine.Expand on a shared serial engine.
func Expand(image *Image, opts Options, mask *Mask) (*Image, *Mask, error) {
	return defaultEngine.Expand(image, opts, mask)
}

// ExpandChain runs Engine.ExpandChain on a shared serial engine.
func ExpandChain(image *Image, mask *Mask, steps ...Options) (*Image, *Mask, error) {
	return defaultEngine.ExpandChain(image, mask, steps...)
}

// Merge runs Engine.Merge on a shared serial engine.
func Merge(image1, image2 *Image, opts Options, mask *Mask) (*Image, error) {
	return defaultEngine.Merge(image1, image2, opts, mask)
}
