// Package node defines Node, the immutable semantic description of one UI
// element, and Builder, the mutable record used to assemble one.
//
// # Property Model
//
// Apart from its Role and supported Actions, every attribute of a node is
// an optional property identified by a PropertyID. The property schema
// (schema.yaml) assigns each PropertyID a name and a PropertyKind, and
// that table drives storage, equality, the wire codec and script decoding.
//
// Two access styles are available:
//
//   - Generic: Node.Get, Node.Has, Node.Properties, Builder.Set and
//     Builder.Clear work with any PropertyID and untyped values.
//   - Typed: Node.Name, Builder.SetName, Builder.ClearName and friends are
//     generated from the schema and are the usual way to use the package.
//
// Absent properties are reported as absent, never as a zero value. Flags
// are tri-state: unset, false or true.
//
// # Lifecycle
//
//	b := node.NewBuilder(node.RoleButton).
//		SetName("OK").
//		AddAction(node.ActionFocus)
//	n := b.Build(classes)
//
// A built Node never changes. It may be shared between trees, change
// batches and goroutines. Slices passed to a Builder or returned by a Node
// are copies.
//
// # Class Sets
//
// A ClassSet interns the (role, actions, flags) part of nodes so that
// nodes of the same shape share one class value. Interning is purely a
// memory optimization: equality compares class content, so nodes built
// with different class sets (or none) still compare equal.
package node

//go:generate go run ./internal/propgen -schema schema.yaml -out .
