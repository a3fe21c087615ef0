package adapter_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axtree/adapter"
	"github.com/joshuapare/axtree/internal/logger"
	"github.com/joshuapare/axtree/internal/testutil"
	"github.com/joshuapare/axtree/pkg/action"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

var id = testutil.ID

// recorder collects raised batches and handled actions.
type recorder struct {
	mu      sync.Mutex
	batches []*tree.ChangeBatch
	actions []action.Request
}

func (r *recorder) RaiseEvents(b *tree.ChangeBatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, b)
}

func (r *recorder) DoAction(req action.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, req)
}

func countingSource(calls *int) adapter.Source {
	return func() *tree.Update {
		*calls++
		return tree.NewUpdate().
			Add(id(1), testutil.Parent(node.RoleWindow, 2, 3)).
			Add(id(2), node.NewBuilder(node.RoleButton).
				SetName("OK").
				AddAction(node.ActionFocus).
				AddAction(node.ActionDefault).
				Build(nil)).
			Add(id(3), testutil.Leaf(node.RoleButton, "Cancel")).
			SetRoot(id(1))
	}
}

func TestAdapter_LazyActivation(t *testing.T) {
	calls := 0
	rec := &recorder{}
	a := adapter.New(countingSource(&calls), rec, rec)

	assert.False(t, a.IsActive())

	// Inactive: the factory must not run.
	factoryRan := false
	events, err := a.UpdateIfActive(func() *tree.Update {
		factoryRan = true
		return tree.NewUpdate()
	})
	require.NoError(t, err)
	assert.Nil(t, events)
	assert.False(t, factoryRan)
	events.Raise() // nil-safe
	assert.Zero(t, calls)

	require.NoError(t, a.Activate())
	require.NoError(t, a.Activate())
	assert.True(t, a.IsActive())
	assert.Equal(t, 1, calls, "source is called once")
	assert.Empty(t, rec.batches, "activation raises no events")

	events, err = a.UpdateIfActive(func() *tree.Update {
		factoryRan = true
		return tree.NewUpdate().SetFocus(id(2))
	})
	require.NoError(t, err)
	assert.True(t, factoryRan)
	events.Raise()
	require.Len(t, rec.batches, 1)
	fc, ok := rec.batches[0].Focus()
	require.True(t, ok)
	assert.Equal(t, id(2), fc.New)
}

func TestAdapter_ReadActivates(t *testing.T) {
	calls := 0
	a := adapter.New(countingSource(&calls), nil, nil)

	var n int
	require.NoError(t, a.Read(func(tr *tree.Tree) error {
		n = tr.Len()
		return nil
	}))
	assert.Equal(t, 3, n)
	assert.True(t, a.IsActive())

	sentinel := errors.New("stop")
	assert.ErrorIs(t, a.Read(func(*tree.Tree) error { return sentinel }), sentinel)
}

func TestAdapter_UpdateActivatesFirst(t *testing.T) {
	calls := 0
	rec := &recorder{}
	a := adapter.New(countingSource(&calls), rec, rec)

	events, err := a.Update(tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 2)))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	events.Raise()
	require.Len(t, rec.batches, 1)
	removed := rec.batches[0].Removed()
	require.Len(t, removed, 1)
	assert.Equal(t, id(3), removed[0].ID)
}

func TestAdapter_RejectedUpdate(t *testing.T) {
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	calls := 0
	rec := &recorder{}
	a := adapter.New(countingSource(&calls), rec, rec,
		adapter.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		adapter.WithMetrics(reg),
	)
	require.NoError(t, a.Activate())

	events, err := a.Update(tree.NewUpdate().SetFocus(id(42)))
	require.ErrorIs(t, err, tree.ErrDanglingFocus)
	assert.Nil(t, events)
	assert.Contains(t, logs.String(), "tree update rejected")
	assert.Contains(t, logs.String(), "kind=dangling_focus")

	// Tree is still at its last valid state.
	require.NoError(t, a.Read(func(tr *tree.Tree) error {
		assert.Equal(t, 3, tr.Len())
		_, focused := tr.Focus()
		assert.False(t, focused)
		return nil
	}))

	_, err = a.Update(tree.NewUpdate().Add(id(3), testutil.Parent(node.RoleGroup, 1)))
	require.ErrorIs(t, err, tree.ErrCycle)

	assert.Equal(t, 1.0, metricValue(t, reg, "axtree_adapter_updates_applied_total"))
	assert.Equal(t, 2, seriesCount(t, reg, "axtree_adapter_updates_rejected_total"))
}

func TestAdapter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	calls := 0
	a := adapter.New(countingSource(&calls), nil, nil, adapter.WithMetrics(reg))

	require.NoError(t, a.Activate())
	_, err := a.Update(tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 2, 3, 4)).
		Add(id(4), testutil.Leaf(node.RoleStaticText, "hint")))
	require.NoError(t, err)

	assert.Equal(t, 2.0, metricValue(t, reg, "axtree_adapter_updates_applied_total"))
	assert.Equal(t, 4.0, metricValue(t, reg, "axtree_adapter_nodes"))
	// 3 initial additions, 1 addition and 1 update from the second batch.
	assert.Equal(t, 2, seriesCount(t, reg, "axtree_adapter_changes_total"))
}

func TestAdapter_StrictTreeOptions(t *testing.T) {
	calls := 0
	a := adapter.New(countingSource(&calls), nil, nil, adapter.WithTreeOptions(tree.StrictOptions()))
	require.NoError(t, a.Activate())

	_, err := a.Update(tree.NewUpdate().Add(id(2),
		node.NewBuilder(node.RoleButton).SetControls(testutil.IDs(9)).Build(nil)))
	assert.ErrorIs(t, err, tree.ErrDanglingReference)
}

func TestAdapter_BadSource(t *testing.T) {
	calls := 0
	a := adapter.New(func() *tree.Update {
		calls++
		return tree.NewUpdate().Add(id(1), testutil.Leaf(node.RoleWindow, "no root"))
	}, nil, nil)

	require.ErrorIs(t, a.Activate(), tree.ErrMissingRoot)
	assert.False(t, a.IsActive())

	// The source is retried.
	require.Error(t, a.Activate())
	assert.Equal(t, 2, calls)

	require.ErrorIs(t, adapter.New(nil, nil, nil).Activate(), types.ErrInactive)
}

func TestAdapter_DoAction(t *testing.T) {
	calls := 0
	rec := &recorder{}
	a := adapter.New(countingSource(&calls), rec, rec)

	err := a.DoAction(action.Request{Action: node.ActionFocus, Target: id(2)})
	require.ErrorIs(t, err, types.ErrInactive)

	require.NoError(t, a.Activate())

	tests := []struct {
		name    string
		req     action.Request
		wantErr error
	}{
		{"supported", action.Request{Action: node.ActionFocus, Target: id(2)}, nil},
		{"custom action skips support check", action.Request{Action: node.ActionCustomAction, Target: id(3), Data: action.CustomAction(1)}, nil},
		{"unsupported", action.Request{Action: node.ActionExpand, Target: id(2)}, types.ErrUnsupported},
		{"missing target", action.Request{Action: node.ActionFocus, Target: id(99)}, types.ErrNotFound},
		{"malformed payload", action.Request{Action: node.ActionSetValue, Target: id(2)}, types.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(rec.actions)
			err := a.DoAction(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.Len(t, rec.actions, before+1)
				assert.Equal(t, tt.req, rec.actions[before])
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, rec.actions, before, "refused actions never reach the handler")
		})
	}
}

func TestAdapter_ConcurrentReadersAndWriter(t *testing.T) {
	calls := 0
	a := adapter.New(countingSource(&calls), nil, nil)
	require.NoError(t, a.Activate())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i == 0 {
					focus := id(uint64(2 + j%2))
					_, err := a.Update(tree.NewUpdate().SetFocus(focus))
					assert.NoError(t, err)
					continue
				}
				assert.NoError(t, a.Read(func(tr *tree.Tree) error {
					if f, ok := tr.Focus(); ok && !tr.Contains(f) {
						return errors.New("focus outside tree")
					}
					return nil
				}))
			}
		}()
	}
	wg.Wait()
}

// metricValue sums every sample of the named counter or gauge.
func metricValue(t *testing.T, reg prometheus.Gatherer, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var sum float64
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return sum
}

func seriesCount(t *testing.T, reg prometheus.Gatherer, name string) int {
	t.Helper()
	n, err := promtest.GatherAndCount(reg, name)
	require.NoError(t, err)
	return n
}

func TestAdapter_LogsThroughLaterInitializedLogger(t *testing.T) {
	saved := logger.L
	t.Cleanup(func() { logger.L = saved })

	a := adapter.New(testutil.ThreeNodeUpdate, nil, nil)
	require.NoError(t, a.Activate())

	var logs bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug, Output: &logs}))

	_, err := a.Update(tree.NewUpdate().SetFocus(id(42)))
	require.Error(t, err)
	assert.Contains(t, logs.String(), "tree update rejected")
	assert.Contains(t, logs.String(), "dangling_focus")
}
