// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LunarProvider: Gregorian to lunisolar conversion (mandatory subset)
//   - Localizer: Weekday labels and language matching
//   - ConfigStore: Application configuration
//
// # Optional Capabilities
//
// A LunarDay returned by a provider may implement any subset of
// LunarNamer, SolarTermer, MoonPhaser, ActivityLister, DeityTeller,
// ClashTeller, PengZuTeller, DirectionTeller, StarLister and NaYinTeller.
// Older providers omit whole categories; the assembler fills the gaps
// with empty values.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
