// Package editor opens configuration files in the operator's text editor.
package editor

import (
	"context"
	"fmt"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/feonix-uav/configuranator/internal/system"
)

// DefaultEditor is used when neither $VISUAL nor $EDITOR is set.
const DefaultEditor = "vi"

// Command returns the argv that opens path, taken from $VISUAL, then
// $EDITOR, then DefaultEditor. The variable is split with shell quoting
// rules so values like `code --wait` work.
func Command(getenv func(string) string, path string) ([]string, error) {
	raw := getenv("VISUAL")
	if raw == "" {
		raw = getenv("EDITOR")
	}
	if raw == "" {
		raw = DefaultEditor
	}

	argv, err := shellquote.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", raw, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid editor command %q: empty", raw)
	}
	return append(argv, path), nil
}

// Open runs the editor on path and waits for it to exit.
func Open(ctx context.Context, exec system.CommandExecutor, getenv func(string) string, path string) error {
	argv, err := Command(getenv, path)
	if err != nil {
		return err
	}
	if err := exec.ExecuteInteractive(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("editor %s failed: %w", argv[0], err)
	}
	return nil
}
