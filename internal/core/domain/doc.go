// Package domain defines the core calendar entities for Huangli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CalendarInstant: A calendar day pinned to local noon in a timezone
//   - AlmanacRecord: The normalised almanac output schema
//   - AlmanacRequest: The raw inputs of a lookup
//   - Language: Presentation language of localised labels
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
