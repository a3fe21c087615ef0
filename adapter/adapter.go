package adapter

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/axtree/internal/logger"
	"github.com/joshuapare/axtree/pkg/action"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// Source builds the initial full update. It is called at most once.
type Source func() *tree.Update

// EventSink receives change batches for translation into platform events.
type EventSink interface {
	RaiseEvents(batch *tree.ChangeBatch)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(batch *tree.ChangeBatch)

// RaiseEvents calls f(batch).
func (f EventSinkFunc) RaiseEvents(batch *tree.ChangeBatch) { f(batch) }

// Adapter owns the tree for one UI surface. It is safe for concurrent use.
type Adapter struct {
	mu     sync.RWMutex
	source Source     // nil once activated
	tree   *tree.Tree // nil until activated

	handler action.Handler
	sink    EventSink

	log        *slog.Logger // nil means logger.L at the time of logging
	registerer prometheus.Registerer
	metrics    *metrics
	treeOpts   tree.Options
}

// New returns an inactive adapter. A nil handler discards action requests
// and a nil sink drops events.
func New(source Source, handler action.Handler, sink EventSink, opts ...Option) *Adapter {
	if handler == nil {
		handler = action.Discard
	}
	if sink == nil {
		sink = EventSinkFunc(func(*tree.ChangeBatch) {})
	}
	a := &Adapter{
		source:   source,
		handler:  handler,
		sink:     sink,
		treeOpts: tree.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.metrics = newMetrics(a.registerer)
	return a
}

// IsActive reports whether the initial tree has been built.
func (a *Adapter) IsActive() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tree != nil
}

// Activate builds the initial tree from the source if that has not
// happened yet. If the source's update is rejected the adapter stays
// inactive and the next call tries again.
func (a *Adapter) Activate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activateLocked()
}

func (a *Adapter) currentLogger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return logger.L
}

func (a *Adapter) activateLocked() error {
	if a.tree != nil {
		return nil
	}
	if a.source == nil {
		return fmt.Errorf("activate: %w", types.Errorf(types.ErrKindState, "adapter has no tree source"))
	}

	start := time.Now()
	t, batch, err := tree.New(a.source(), a.treeOpts)
	if err != nil {
		a.metrics.observeRejected(err)
		a.currentLogger().Warn("initial tree rejected", "error", err, "kind", rejectKind(err))
		return fmt.Errorf("activate: %w", err)
	}
	a.metrics.applyDuration.Observe(time.Since(start).Seconds())
	a.metrics.observeApplied(batch, t.Len())

	a.tree = t
	a.source = nil
	a.currentLogger().Debug("adapter activated", "nodes", t.Len(), "root", t.Root())
	return nil
}

// Read activates the adapter if needed and runs fn with the tree under the
// read lock. fn must not retain the tree or call back into the adapter's
// write methods.
func (a *Adapter) Read(fn func(t *tree.Tree) error) error {
	if err := a.Activate(); err != nil {
		return err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return fn(a.tree)
}

// Update activates the adapter if needed and applies u. On error the tree
// keeps its last valid state.
func (a *Adapter) Update(u *tree.Update) (*QueuedEvents, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activateLocked(); err != nil {
		return nil, err
	}
	return a.applyLocked(u)
}

// UpdateIfActive applies the update built by factory, but only when the
// adapter is active. Otherwise it returns nil without calling factory.
func (a *Adapter) UpdateIfActive(factory func() *tree.Update) (*QueuedEvents, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.tree == nil {
		return nil, nil
	}
	return a.applyLocked(factory())
}

func (a *Adapter) applyLocked(u *tree.Update) (*QueuedEvents, error) {
	start := time.Now()
	batch, err := a.tree.Apply(u)
	if err != nil {
		a.metrics.observeRejected(err)
		a.currentLogger().Warn("tree update rejected", "error", err, "kind", rejectKind(err))
		return nil, fmt.Errorf("update: %w", err)
	}
	a.metrics.applyDuration.Observe(time.Since(start).Seconds())
	a.metrics.observeApplied(batch, a.tree.Len())
	return &QueuedEvents{sink: a.sink, batch: batch}, nil
}

// DoAction checks req against the current tree and forwards it to the
// handler. The target must exist and, except for custom actions, list the
// action among its supported actions. The handler runs after the read lock
// is released.
func (a *Adapter) DoAction(req action.Request) error {
	if err := a.checkAction(req); err != nil {
		a.metrics.actions.WithLabelValues("refused").Inc()
		a.currentLogger().Info("action refused", "request", req.String(), "error", err)
		return fmt.Errorf("do action: %w", err)
	}
	a.metrics.actions.WithLabelValues("dispatched").Inc()
	a.handler.DoAction(req)
	return nil
}

func (a *Adapter) checkAction(req action.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.tree == nil {
		return types.ErrInactive
	}
	n, ok := a.tree.Node(req.Target)
	if !ok {
		return types.Errorf(types.ErrKindNotFound, "node %s not in tree", req.Target)
	}
	if req.Action == node.ActionCustomAction {
		return nil
	}
	if !n.SupportsAction(req.Action) {
		return types.Errorf(types.ErrKindUnsupported, "node %s does not support %s", req.Target, req.Action)
	}
	return nil
}

// QueuedEvents holds the changes of one accepted update until they are
// raised.
type QueuedEvents struct {
	sink  EventSink
	batch *tree.ChangeBatch
}

// Batch returns the queued changes.
func (q *QueuedEvents) Batch() *tree.ChangeBatch {
	if q == nil {
		return nil
	}
	return q.batch
}

// Raise delivers the changes to the sink. Empty batches are not
// delivered. Raise is safe on a nil receiver, which is what
// UpdateIfActive returns for an inactive adapter.
func (q *QueuedEvents) Raise() {
	if q == nil || q.batch.IsEmpty() {
		return
	}
	q.sink.RaiseEvents(q.batch)
}
