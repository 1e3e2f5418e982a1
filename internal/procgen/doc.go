// Package procgen produces the synthetic data that fills data-bearing
// wireframe nodes: 2D path trajectories for maps, sampled series for charts,
// great-circle routes with elevation arcs for globes, and 3D point
// distributions for point clouds.
//
// Every generator is a pure function of its parameters and an explicit random
// source. Degenerate parameters (zero counts, inverted ranges, near-coincident
// slerp endpoints) are clamped or guarded so generators never emit NaN or Inf.
package procgen
