// Package runqueue implements a virtual-time scheduler run-queue on top of
// the rbtree intrusive core: the task with the smallest virtual time is
// always at the front, and Dispatch hands it to a worker pool.
package runqueue

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	uberatomic "go.uber.org/atomic"

	"github.com/latticetree/rbtree"
	"github.com/latticetree/rbtree/telemetry"
)

// Task is a schedulable unit of work. It embeds rbtree.Node as its first
// field so the scheduler can recover a *Task from the *rbtree.Node the tree
// hands back from First/Next.
type Task struct {
	rbtree.Node

	// ID breaks ties between tasks that land on the same VTime: the
	// scheduler treats (VTime, ID) as the ordering key, never VTime alone.
	ID uuid.UUID

	// VTime is the task's virtual-time priority. Lower runs first.
	VTime int64

	// Fn is the work to run when the task is dispatched.
	Fn func(ctx context.Context)
}

// less orders tasks by (VTime, ID), giving every task embedded in the same
// tree a total order even when virtual times collide.
func (t *Task) less(other *Task) bool {
	if t.VTime != other.VTime {
		return t.VTime < other.VTime
	}

	return t.ID.String() < other.ID.String()
}

// Stats reports the scheduler's running counters.
type Stats struct {
	Queued     int
	Dispatched int64
}

// Scheduler holds a run-queue of pending Tasks plus the worker pool and
// metrics Dispatch reports against. Like the rbtree core it sits on, a
// Scheduler is not internally synchronized: a caller driving Enqueue/Pick/
// Dispatch from multiple goroutines must provide its own mutual exclusion.
// The wrapped pond.Pool and prometheus.Gauge are themselves safe for
// concurrent use, but the run-queue's tree is not, and this package adds no
// mutex the core doesn't already do without.
type Scheduler struct {
	tree  rbtree.Tree
	queue int

	pool       pond.Pool
	depthGauge prometheus.Gauge
	dispatched uberatomic.Int64
}

// NewScheduler returns an empty Scheduler backed by pool. depthGauge, if
// non-nil, is updated with the current queue length on every Enqueue and
// Pick; passing nil disables that reporting without affecting scheduling.
func NewScheduler(pool pond.Pool, depthGauge prometheus.Gauge) *Scheduler {
	return &Scheduler{
		pool:       pool,
		depthGauge: depthGauge,
	}
}

// Enqueue links task into the run-queue at the position its (VTime, ID)
// ordering dictates. task must be a freshly constructed, detached *Task;
// re-enqueueing an already-linked task is a caller error (see rbtree's
// LinkNode precondition).
func (s *Scheduler) Enqueue(task *Task) {
	parent, side := s.locate(task)
	s.tree.LinkNode(&task.Node, parent, side)
	s.tree.InsertFixup(&task.Node)
	s.queue++
	s.reportDepth()
}

// Pick removes and returns the task with the smallest (VTime, ID), or nil if
// the run-queue is empty. It does not dispatch the task; callers that want
// both should use Dispatch.
func (s *Scheduler) Pick() *Task {
	n := s.tree.First()
	if n == nil {
		return nil
	}

	s.tree.Erase(n)
	s.queue--
	s.reportDepth()

	return rbtree.Of[Task](n)
}

// Dispatch picks the earliest task and submits its Fn to the worker pool
// inside a span, returning the pond.Task handle so the caller can wait for
// completion. It returns nil if the run-queue was empty.
func (s *Scheduler) Dispatch(ctx context.Context) pond.Task { //nolint:ireturn
	task := s.Pick()
	if task == nil {
		return nil
	}

	s.dispatched.Inc()

	tracer := telemetry.Tracer()

	return s.pool.Submit(func() {
		spanCtx, span := tracer.Start(ctx, "runqueue.dispatch")
		defer span.End()

		task.Fn(spanCtx)
	})
}

// Stats returns the scheduler's current queue depth and lifetime dispatch
// count.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Queued:     s.queue,
		Dispatched: s.dispatched.Load(),
	}
}

func (s *Scheduler) reportDepth() {
	if s.depthGauge != nil {
		s.depthGauge.Set(float64(s.queue))
	}
}

func (s *Scheduler) locate(task *Task) (parent *rbtree.Node, side rbtree.Side) {
	cur := s.tree.Root()
	if cur == nil {
		return nil, rbtree.NoSide
	}

	for {
		curTask := rbtree.Of[Task](cur)

		if task.less(curTask) {
			if cur.Left() == nil {
				return cur, rbtree.Left
			}

			cur = cur.Left()
		} else {
			if cur.Right() == nil {
				return cur, rbtree.Right
			}

			cur = cur.Right()
		}
	}
}
