// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - AccountSource: Enumerates accounts and expands value expressions
//   - FieldBlockParser: Parses inline custom-field blocks
//   - SettingsStore: Persisted settings (identity seed, folder template)
//   - VaultWriter: Serializes the assembled vault document
//
// # Optional Interfaces
//
//   - AccountWatcher: Change notification for watch mode; sources that
//     cannot watch simply do not implement it
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
