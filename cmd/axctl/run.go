package main

import (
	"errors"

	"github.com/joshuapare/axtree/adapter"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/wire"
)

// stepResult records what happened to one script update.
type stepResult struct {
	Step     int          `json:"step"`
	Line     int          `json:"line,omitempty"`
	Applied  bool         `json:"applied"`
	Initial  bool         `json:"initial,omitempty"`
	Error    string       `json:"error,omitempty"`
	Kind     string       `json:"error_kind,omitempty"`
	Expected string       `json:"expect_error,omitempty"`
	Nodes    int          `json:"nodes"`
	Changes  []changeJSON `json:"changes,omitempty"`

	batch *tree.ChangeBatch
}

// OK reports whether the step behaved as the script expected.
func (r *stepResult) OK() bool {
	if r.Expected == "" {
		return r.Applied
	}
	return !r.Applied && r.Kind == r.Expected
}

// replayScript feeds the first limit steps of s (all when limit <= 0)
// through an adapter, the way a platform integration would: steps are
// offered as the adapter's initial tree until one is accepted, and every
// step after that is an update. Rejected steps are recorded and skipped.
func replayScript(s *wire.Script, opts tree.Options, limit int) (*adapter.Adapter, []stepResult) {
	steps := s.Steps
	if limit > 0 && limit < len(steps) {
		steps = steps[:limit]
	}
	if len(steps) == 0 {
		return nil, nil
	}

	results := make([]stepResult, 0, len(steps))
	var current *stepResult
	sink := adapter.EventSinkFunc(func(b *tree.ChangeBatch) {
		current.batch = b
		current.Changes = batchToJSON(b)
	})

	cur := 0
	a := adapter.New(
		func() *tree.Update { return steps[cur].Update },
		nil,
		sink,
		adapter.WithTreeOptions(opts),
	)

	for i, st := range steps {
		cur = i
		results = append(results, stepResult{Step: i + 1, Line: st.Line, Expected: st.ExpectError})
		current = &results[len(results)-1]

		var err error
		if !a.IsActive() {
			err = a.Activate()
			current.Initial = err == nil
		} else {
			var events *adapter.QueuedEvents
			events, err = a.Update(st.Update)
			events.Raise()
		}

		if err != nil {
			current.Error = err.Error()
			current.Kind = "other"
			var verr *tree.ValidationError
			if errors.As(err, &verr) {
				current.Kind = verr.Kind.String()
			}
		} else {
			current.Applied = true
		}
		_ = a.Read(func(t *tree.Tree) error {
			current.Nodes = t.Len()
			return nil
		})
	}
	return a, results
}
