// Package services implements the driving port interfaces.
// Services contain the core almanac logic and orchestrate
// calls to driven ports (adapters).
//
// The pieces, leaf first:
//
//   - DateTimeResolver: date string + timezone to a noon CalendarInstant
//   - Result, Query, Safe, SafeList: the seam that absorbs optional
//     provider failures into typed defaults
//   - AlmanacAssembler: builds the complete AlmanacRecord
//   - HuangliService: the get_huangli operation
//
// Services are pure Go with no CGO or external dependencies.
package services
