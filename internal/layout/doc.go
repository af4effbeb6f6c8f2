// Package layout implements a deterministic 2D force-directed layout
// engine for dependency graphs.
//
// The engine combines spring edges, a local inverse-square-minus-constant
// repulsion law applied to each node's smallest containing triangle of
// neighbors, angular spacing forces that fan a node's neighbors out evenly,
// positional collision resolution, and boundary containment, all scaled by
// an alpha "temperature" that cools geometrically until the simulation
// sleeps.
//
// The triangle-neighbor search is O(n^3) per step. That is a known
// scalability limit, acceptable for graphs of a few dozen nodes; swapping
// in a spatial index would have to preserve the same force law and the
// connected/unconnected scaling contract.
//
// A render-loop driver calls [Engine.Step] once per frame and reads node
// positions afterwards. The engine owns the model exclusively during a
// step; the only sanctioned external mutations between steps are pinning
// (drag), [Engine.SetModel], and [Engine.SetAnchors].
package layout
