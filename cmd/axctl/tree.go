package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

var (
	treeDepth    int
	treeSteps    int
	treeFiltered bool
	treeASCII    bool
	treeLimits   string
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 for unlimited)")
	cmd.Flags().IntVar(&treeSteps, "steps", 0, "Replay only the first N updates (0 for all)")
	cmd.Flags().BoolVar(&treeFiltered, "filtered", false, "Show the tree as platforms see it (hidden and presentational nodes removed)")
	cmd.Flags().BoolVar(&treeASCII, "ascii", false, "ASCII-only characters")
	cmd.Flags().StringVar(&treeLimits, "limits", "script", "Validation options (script, default, strict)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <script>",
		Short: "Display the tree after replaying a script",
		Long: `The tree command replays a script and prints the resulting tree.

Example:
  axctl tree testdata/scripts/hello_world.yaml
  axctl tree hello_world.yaml --steps 1 --depth 2
  axctl tree hello_world.yaml --filtered --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

// treeJSON is the --json form of one node and its subtree.
type treeJSON struct {
	ID       string      `json:"id"`
	Role     string      `json:"role"`
	Name     string      `json:"name,omitempty"`
	Focused  bool        `json:"focused,omitempty"`
	Bounds   []float64   `json:"bounds,omitempty"`
	Children []*treeJSON `json:"children,omitempty"`
}

func runTree(args []string) error {
	scriptPath := args[0]

	printVerbose("Loading script: %s\n", scriptPath)

	s, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	opts, err := scriptOptions(s, treeLimits)
	if err != nil {
		return err
	}
	a, results := replayScript(s, opts, treeSteps)
	if a == nil {
		return fmt.Errorf("%s: script has no updates", scriptPath)
	}
	for _, r := range results {
		if !r.Applied && r.Expected == "" {
			printVerbose("update %d rejected: %s\n", r.Step, r.Error)
		}
	}

	return a.Read(func(t *tree.Tree) error {
		children := t.Children
		if treeFiltered {
			children = func(id types.NodeID) []types.NodeID { return t.FilteredChildren(id, nil) }
		}
		focus, _ := t.Focus()

		// Handle JSON output
		if jsonOut {
			return printJSON(buildTreeJSON(t, t.Root(), focus, children, 1))
		}

		var sb strings.Builder
		sb.WriteString(nodeLabel(t.Root(), t.RootNode(), focus) + "\n")
		writeTree(&sb, t, t.Root(), focus, children, "", 1)
		printInfo("%s", sb.String())
		return nil
	})
}

func nodeLabel(id types.NodeID, n *node.Node, focus types.NodeID) string {
	label := colorize(colorDim, id.String()) + " " + describeNode(n)
	if id == focus {
		label += " " + colorize(colorCyan, "(focused)")
	}
	return label
}

func writeTree(sb *strings.Builder, t *tree.Tree, id, focus types.NodeID,
	children func(types.NodeID) []types.NodeID, prefix string, depth int) {
	if treeDepth > 0 && depth > treeDepth {
		return
	}
	branch, last, pipe := "├── ", "└── ", "│   "
	if treeASCII {
		branch, last, pipe = "|-- ", "`-- ", "|   "
	}

	kids := children(id)
	for i, c := range kids {
		n, _ := t.Node(c)
		connector, next := branch, pipe
		if i == len(kids)-1 {
			connector, next = last, "    "
		}
		sb.WriteString(prefix + connector + nodeLabel(c, n, focus) + "\n")
		writeTree(sb, t, c, focus, children, prefix+next, depth+1)
	}
}

func buildTreeJSON(t *tree.Tree, id, focus types.NodeID,
	children func(types.NodeID) []types.NodeID, depth int) *treeJSON {
	n, _ := t.Node(id)
	out := &treeJSON{ID: id.String(), Role: n.Role().String(), Focused: id == focus}
	out.Name, _ = n.Name()
	if bb, ok := t.BoundingBox(id); ok {
		out.Bounds = []float64{bb.X0, bb.Y0, bb.X1, bb.Y1}
	}
	if treeDepth > 0 && depth > treeDepth {
		return out
	}
	for _, c := range children(id) {
		out.Children = append(out.Children, buildTreeJSON(t, c, focus, children, depth+1))
	}
	return out
}
