// Package collapse decides, for every resolved node, which of its four edges
// should be drawn fused with an adjacent border instead of doubling up — the
// classic table border-collapse treatment applied to a flex-flow box tree.
//
// The analysis is a single downward walk threading an explicit context value
// (the collapse status inherited from the parent for the current node's own
// edges). It produces a side table of per-node boolean edge flags and has no
// effect on computed geometry.
//
// Three rules interact, all axis-aware relative to the container's flow
// direction:
//
//  1. Adjacent siblings fuse across their shared main-axis edge when the
//     container has no gap and both sides have a border reachable on that
//     edge (directly, or through unbordered zero-padding wrappers).
//  2. A bordered container fuses with its children where its padding is zero:
//     the first child on the leading main-axis edge, the last child that
//     touches the trailing edge, and every child on both cross-axis edges.
//  3. An unbordered container forwards its own inherited context through to
//     its children, so fusion propagates transparently across layout-only
//     wrappers.
//
// Nonzero padding on an edge always blocks collapse on that edge.
package collapse
