package adapter

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/axtree/pkg/tree"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger for rejected updates and actions. Without it
// the adapter logs through logger.L as configured when each message is
// written, so logger.Init may run after New.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics registers the adapter's collectors on reg. Without it the
// collectors are still maintained but not exported.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(a *Adapter) { a.registerer = reg }
}

// WithTreeOptions sets the validation options of the owned tree.
func WithTreeOptions(opts tree.Options) Option {
	return func(a *Adapter) { a.treeOpts = opts }
}
