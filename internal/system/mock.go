package system

import (
	"context"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// InteractiveErr is returned by ExecuteInteractive if set.
	InteractiveErr error

	// OnInteractive, if set, runs in place of the command. Tests use it
	// to act like an editor changing a file.
	OnInteractive func(name string, args []string) error
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands: make([]MockCommand, 0),
	}
}

func (m *MockExecutor) ExecuteInteractive(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})
	hook := m.OnInteractive
	m.mu.Unlock()

	if m.InteractiveErr != nil {
		return m.InteractiveErr
	}
	if hook != nil {
		return hook(name, args)
	}
	return nil
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Reset clears all recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]MockCommand, 0)
}
