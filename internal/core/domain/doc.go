// Package domain defines the core entities for heos.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MediaSource: A browsable node in the device's content tree
//   - ChildIndex: The name-keyed cache of a node's immediate children
//   - RawItem: One record as returned by a browse command
//   - IndexReport: The outcome of a recursive index run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
