// Package pattern defines the pattern snapshot consumed by the layout engine.
//
// # Overview
//
// A [Pattern] is a named item with an ordered list of prerequisites. Every
// prerequisite id that refers to another pattern in the same snapshot yields
// a directed edge prerequisite → pattern. Prerequisites that reference ids
// outside the snapshot are dangling and are ignored everywhere in the engine.
//
// # Types and Levels
//
// [Type] is a small fixed enumeration. Its declaration order is also the
// top-to-bottom swimlane order of the timeline layout (see [Types]).
// [Level] is an optional three-tier difficulty marker.
//
// # Snapshots
//
// Layout functions take a []Pattern and never mutate it. [Index] builds an
// id lookup for a snapshot; [Edges] derives the edge list.
//
// # Validation
//
// [Validate] reports duplicate ids and unknown enumeration values. Loaders in
// pkg/io call it; the layout engine does not, so malformed snapshots degrade
// gracefully instead of failing a render.
package pattern
