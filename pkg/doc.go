// Package pkg provides the core libraries for the Canvas composition engine.
//
// # Overview
//
// Canvas arranges media assets on a virtual canvas using percent-based,
// resolution-independent coordinates and renders the result to exportable
// images. The pkg directory is organized into four main areas:
//
//  1. Geometry and state ([geom], [scene], [collision], [defaults])
//  2. Composition ([template], [interact], [sceneio])
//  3. Rendering ([render], [render/raster], [render/sink], [assets])
//  4. Infrastructure ([cache], [config], [httputil], [observability],
//     [errors], [pipeline])
//
// # Architecture
//
// The typical data flow through Canvas:
//
//	Scene Document (JSON)
//	         ↓
//	Placement Store + Annotation Elements
//	         ↓
//	Compile (z-sorted draw instructions)
//	         ↓
//	Rasterize (pixels)
//	         ↓
//	Encode (PNG/JPEG artifact)
//
// Interaction (pointer/keyboard gestures) and templates both mutate the
// placement list through whole-list replacement, so every render observes a
// consistent snapshot. The [pipeline] package ties the stages together with
// caching for both CLI and HTTP entry points.
package pkg
