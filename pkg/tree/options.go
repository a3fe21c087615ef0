package tree

// Options tunes validation.
type Options struct {
	// StrictRelations rejects updates in which a relation property
	// (labelled_by, active_descendant, ...) names a node that is not in
	// the resulting tree. By default such references are kept and filtered
	// out by the query helpers.
	StrictRelations bool

	// MaxNodes caps the number of nodes in the tree. Zero means no limit.
	MaxNodes int

	// MaxDepth caps the depth of the tree, the root being depth 1. Zero
	// means no limit.
	MaxDepth int
}

// DefaultOptions tolerates dangling relations and sets no limits.
func DefaultOptions() Options {
	return Options{}
}

// StrictOptions rejects dangling relations and bounds the tree to sizes no
// real UI reaches.
func StrictOptions() Options {
	return Options{
		StrictRelations: true,
		MaxNodes:        1 << 20,
		MaxDepth:        1 << 10,
	}
}
