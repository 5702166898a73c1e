// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading valid and invalid configuration documents in unit tests.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_config.toml         // complete, valid document
//	fixtures/missing_commconfig.toml   // structurally incomplete
//	fixtures/wrong_type.toml           // test flag holds a string
//	fixtures/invalid_syntax.toml       // not parseable TOML
//	fixtures/invalid_fields.toml       // decodes, but fails Validate
//
// # Test Environment
//
// NewTestEnv creates a temporary directory and captures user-facing
// output for the duration of the test:
//
//	env := testutil.NewTestEnv(t)
//	path := env.WriteFixture("valid_config.toml")
//	cfg, err := config.Load(path)
//	if !strings.Contains(env.Stdout.String(), "SUCCESS") { ... }
package testutil
