// Package gen produces the generator's artifacts from a feature catalog.
//
// A run is a single forward pass:
//   - normalize every adlog field into candidates (package normalize)
//   - filter candidates into canonical paths (package canon)
//   - assign registry ids and sort (package enum)
//   - render the annotated catalog, the global path list and the enum
//
// Rendering is deterministic: identical inputs yield byte-identical files.
package gen
