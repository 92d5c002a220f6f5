// Package scene defines the canvas data model: placements, annotation
// elements, canvas dimensions, and the pure list operations that mutate a
// composition.
//
// # Overview
//
// A [Scene] is the complete in-memory state of one composition: a canvas
// context (which fixes pixel dimensions), an optional background color, the
// positioned asset [Placement]s, and the freeform [Element]s drawn on top.
// All geometry is percent-based so a scene survives re-targeting to a
// different pixel size.
//
// # Mutation discipline
//
// Every store operation ([Add], [Update], [Remove], [BumpZ]) returns a new
// slice instead of mutating in place. Any reader holding the previous slice
// observes a fully consistent snapshot; under the engine's single-threaded
// event model this whole-list replacement substitutes for locking.
//
// The order of the placement slice carries no paint-order meaning. Paint
// order is always derived by a stable sort on ZIndex at draw time
// ([SortedByZ]), never cached, so duplicate z-indices resolve by insertion
// order deterministically.
//
// # Invariants
//
// After every mutation, position and size percentages are clamped into
// [MinPercent, MaxPercent] and opacity into [0, 100]. Invalid geometry is
// always repaired rather than rejected; no store operation returns an error.
package scene
