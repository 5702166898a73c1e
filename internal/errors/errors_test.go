package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfiguranatorError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ConfiguranatorError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestConfiguranatorError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestIOError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := IOError("write", "/etc/feonix/cfg.toml", cause)

	if err.Code != ExitIOError {
		t.Errorf("Code = %d, want %d", err.Code, ExitIOError)
	}
	if err.Message != "failed to write /etc/feonix/cfg.toml" {
		t.Errorf("Message = %q, want %q", err.Message, "failed to write /etc/feonix/cfg.toml")
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestDecodeError(t *testing.T) {
	cause := fmt.Errorf("missing key commconfig")
	err := DecodeError("cfg.toml", cause)

	if err.Code != ExitDecodeError {
		t.Errorf("Code = %d, want %d", err.Code, ExitDecodeError)
	}
	if got, want := err.Error(), "failed to decode cfg.toml: missing key commconfig"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEncodeError(t *testing.T) {
	cause := fmt.Errorf("unsupported type")
	err := EncodeError(cause)

	if err.Code != ExitEncodeError {
		t.Errorf("Code = %d, want %d", err.Code, ExitEncodeError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("dataset must be COCO")

	if err.Code != ExitValidationError {
		t.Errorf("Code = %d, want %d", err.Code, ExitValidationError)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "ConfiguranatorError",
			err:      DecodeError("cfg.toml", fmt.Errorf("bad")),
			wantCode: ExitDecodeError,
		},
		{
			name:     "wrapped ConfiguranatorError",
			err:      fmt.Errorf("outer: %w", InputError(fmt.Errorf("EOF"))),
			wantCode: ExitInputError,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := IOError("read", "cfg.toml", root)
	outer := fmt.Errorf("load failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var cfgErr *ConfiguranatorError
	if !As(outer, &cfgErr) {
		t.Fatal("As should find ConfiguranatorError")
	}
	if cfgErr.Code != ExitIOError {
		t.Errorf("Code = %d, want %d", cfgErr.Code, ExitIOError)
	}
	if !Is(outer, root) {
		t.Error("Is should find root cause")
	}
}
