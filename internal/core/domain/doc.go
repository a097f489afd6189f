// Package domain defines the core entities of the export engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Account: A source store entry with optional export instructions
//   - Pairs: An ordered mapping of declared fields
//   - EntryType: A supported record type with its field table
//   - Record: One assembled output item
//   - VaultDocument: The root output object
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, plus github.com/google/uuid for the
//     identifier value type (pure, no I/O)
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
