// Package logging provides logging utilities for configuranator.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for the operator
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("collected field", "field", "turn_radius", "value", 12.5)
//	logging.Warn("config file has unknown keys", "path", path)
//
// Logs go to stderr unless Setup is given another writer, such as the
// rotated file from FileWriter.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading %s...", path)
//	logging.UserSuccess("Configuration file generation: SUCCESS")
//	logging.UserWarning("%s is not valid", path)
//	logging.UserError("Failed to save configuration: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout (os.Stdout unless redirected)
//   - UserWarning, UserError: Stderr (os.Stderr unless redirected)
//
// Tests redirect both streams with SetUserOutput.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
