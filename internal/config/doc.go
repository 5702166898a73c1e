// Package config defines the platform configuration schema and its
// load/save boundary.
//
// # Schema
//
// ManagerConfig is the root of one configuration document and is shared
// by every process on the aircraft and ground station:
//
//	type ManagerConfig struct {
//	    Test               bool               // Test configuration flag
//	    SauronConfig       SauronConfig       // Vision model settings
//	    AircraftProperties AircraftProperties // Turn radius and velocity
//	    Coordinates        Coordinates        // Waypoints, areas, altitude thresholds
//	    CommConfig         CommConfig         // Inter-process ports and IPs
//	}
//
// Every section is required. Areas are ordered point sequences and may be
// empty.
//
// # Defaults
//
// DefaultSauronConfig returns the canonical vision model defaults. It
// builds a fresh value on every call, so callers may modify the result.
//
// # Documents
//
// ReadConfig and GenerateConfig are the entry points used by other
// processes and by the interactive builder:
//
//	cfg, err := config.ReadConfig("flight.toml")
//	err = config.GenerateConfig("flight.toml", cfg)
//
// The format is chosen from the file extension (TOML unless the path ends
// in .yaml, .yml or .json). Saves are atomic: the document is encoded in
// memory and written to a temporary file that is renamed over the target.
//
// # Validation
//
// Load checks structure only (every key present, types match, no unknown
// keys). Validate additionally checks field-level rules: parseable IP
// addresses, an accepted dataset name, finite reals and port ranges.
package config
