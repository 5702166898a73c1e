package testutil

import (
	"bytes"
	"os"
	"testing"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/feonix-uav/configuranator/internal/logging"
)

// TestEnv holds the test environment
type TestEnv struct {
	T      *testing.T
	TmpDir string
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}

// NewTestEnv creates a temporary directory and redirects user-facing
// output into buffers until the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	env := &TestEnv{
		T:      t,
		TmpDir: t.TempDir(),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	logging.SetUserOutput(env.Stdout, env.Stderr)
	t.Cleanup(func() {
		logging.SetUserOutput(nil, nil)
	})

	return env
}

// Path returns the path of name inside the test directory. Names that
// would escape the directory are clamped to it.
func (e *TestEnv) Path(name string) string {
	e.T.Helper()

	path, err := securejoin.SecureJoin(e.TmpDir, name)
	if err != nil {
		e.T.Fatalf("Failed to resolve %s: %v", name, err)
	}
	return path
}

// WriteFile writes data to name inside the test directory and returns its path
func (e *TestEnv) WriteFile(name string, data []byte) string {
	e.T.Helper()

	path := e.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteFixture copies an embedded fixture into the test directory
func (e *TestEnv) WriteFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return e.WriteFile(name, data)
}
