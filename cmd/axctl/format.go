package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// changeJSON is the --json form of one change notification.
type changeJSON struct {
	Kind       string   `json:"kind"`
	ID         string   `json:"id,omitempty"`
	Role       string   `json:"role,omitempty"`
	Name       string   `json:"name,omitempty"`
	Properties []string `json:"properties,omitempty"`
	Old        string   `json:"old,omitempty"`
	New        string   `json:"new,omitempty"`
}

func idText(id types.NodeID) string {
	if id.IsZero() {
		return "none"
	}
	return id.String()
}

func describeNode(n *node.Node) string {
	if name, ok := n.Name(); ok {
		return fmt.Sprintf("%s %q", n.Role(), name)
	}
	return n.Role().String()
}

func propertyNames(ids []node.PropertyID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// formatChange renders one change as a single text line.
func formatChange(c tree.Change) string {
	switch v := c.(type) {
	case tree.NodeRemoved:
		return colorize(colorRed, fmt.Sprintf("- %s %s", v.ID, describeNode(v.Node)))
	case tree.NodeAdded:
		return colorize(colorGreen, fmt.Sprintf("+ %s %s", v.ID, describeNode(v.Node)))
	case tree.NodeUpdated:
		return colorize(colorYellow, fmt.Sprintf("~ %s %s [%s]",
			v.ID, describeNode(v.New), strings.Join(propertyNames(v.ChangedProperties()), ", ")))
	case tree.FocusChanged:
		return colorize(colorCyan, fmt.Sprintf("focus %s -> %s", idText(v.Old), idText(v.New)))
	case tree.TreeChanged:
		s := fmt.Sprintf("root %s -> %s", idText(v.OldRoot), idText(v.NewRoot))
		if v.OldRootScroller != v.NewRootScroller {
			s += fmt.Sprintf(", scroller %s -> %s", idText(v.OldRootScroller), idText(v.NewRootScroller))
		}
		return colorize(colorCyan, s)
	}
	return fmt.Sprintf("%v", c)
}

func changeToJSON(c tree.Change) changeJSON {
	out := changeJSON{Kind: c.Kind().String()}
	switch v := c.(type) {
	case tree.NodeRemoved:
		out.ID, out.Role = v.ID.String(), v.Node.Role().String()
		out.Name, _ = v.Node.Name()
	case tree.NodeAdded:
		out.ID, out.Role = v.ID.String(), v.Node.Role().String()
		out.Name, _ = v.Node.Name()
	case tree.NodeUpdated:
		out.ID, out.Role = v.ID.String(), v.New.Role().String()
		out.Name, _ = v.New.Name()
		out.Properties = propertyNames(v.ChangedProperties())
	case tree.FocusChanged:
		out.Old, out.New = idText(v.Old), idText(v.New)
	case tree.TreeChanged:
		out.Old, out.New = idText(v.OldRoot), idText(v.NewRoot)
	}
	return out
}

func batchToJSON(b *tree.ChangeBatch) []changeJSON {
	changes := b.Changes()
	out := make([]changeJSON, len(changes))
	for i, c := range changes {
		out[i] = changeToJSON(c)
	}
	return out
}
