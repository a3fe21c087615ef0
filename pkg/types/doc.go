// Package types defines the small value types shared by every axtree
// package: the NodeID identity space and the typed Error used for
// non-validation failures.
//
// Design goals:
//   - NodeID is a comparable 16-byte array, usable directly as a map key.
//   - The all-zero NodeID is reserved and never names a real node.
//   - Typed errors with stable categories (format/type/not-found/state).
//
// Identifiers are producer-assigned. Nothing in this module allocates them
// implicitly; NewRandomNodeID and NodeIDFromUUID are conveniences for
// producers that already key their UI elements by UUID.
package types
