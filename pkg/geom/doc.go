// Package geom provides the 2D value types used for node geometry:
// Affine transforms, axis-aligned Rects, Points, Vec2 displacements and
// Sizes.
//
// All types are plain values. No function allocates or retains state.
//
// # Coordinate Conventions
//
// An Affine stores six coefficients [a b c d e f] in column-major order,
// so a point (x, y) maps to (a*x + c*y + e, b*x + d*y + f). Composition via
// Mul follows matrix multiplication: t.Mul(u) applies u first, then t.
//
// A Rect is (X0, Y0, X1, Y1). It is non-degenerate when X1 >= X0 and
// Y1 >= Y0, and empty when X1 <= X0 or Y1 <= Y0. Containment is half-open:
// the left and top edges are inside, the right and bottom edges are not.
package geom
