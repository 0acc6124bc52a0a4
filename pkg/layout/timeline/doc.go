// Package timeline lays patterns out in per-type swimlanes ordered by depth.
//
// # Overview
//
// The timeline reads left to right: a pattern's x coordinate is its depth
// column, and its y coordinate falls inside the swimlane of its type.
// Lanes are stacked top to bottom in [pattern.Types] order without gaps.
//
// # Algorithm
//
//  1. Depths are computed with [analyze.ComputeDepths].
//  2. Patterns are bucketed by (lane, depth). The tallest bucket of a lane
//     sets its initial height:
//
//     height = LaneTopOffset + NodeHeight + (maxStack-1) * StackSpacing
//
//  3. Inside a bucket patterns are ordered by their smallest prerequisite
//     id, then by id, and stacked StackSpacing apart.
//  4. The [collision] planner pushes nodes out of the way of skip-level
//     edges. Each lane grows by its largest shift.
//  5. Lane offsets are recomputed and every node and channel moves by the
//     offset change of its lane.
//
// The result is deterministic: the same snapshot always yields the same
// coordinates, independent of map iteration order.
//
// # Canvas
//
// ActualWidth is max(availableWidth, LeftMargin + (maxDepth+0.5) *
// HorizontalSpacing) and MinHeight is max(baseHeight, total lane height).
// An empty snapshot yields no positions, no lanes, and the caller's
// dimensions.
//
// [collision]: github.com/matzehuels/patternmap/pkg/layout/collision
package timeline
