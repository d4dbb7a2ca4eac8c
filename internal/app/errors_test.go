package app

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dshills/picoterm/internal/dispatcher"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "op only",
			err:      NewOperationError("watch", "", fs.ErrClosed),
			expected: "watch: file already closed",
		},
		{
			name:     "with target",
			err:      NewOperationError("open", "a.txt", fs.ErrPermission),
			expected: "open a.txt: permission denied",
		},
		{
			name:     "with context",
			err:      NewOperationError("config", "keys", errors.New("bad key")).WithContext("quit"),
			expected: "config keys (quit): bad key",
		},
		{
			name:     "no cause",
			err:      NewOperationError("open log", "x.log", nil),
			expected: "open log x.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("open", "a.txt", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match itself")
	}
	if errors.Is(err, NewOperationError("open", "a.txt", fs.ErrNotExist)) {
		t.Error("expected distinct OperationErrors not to match")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Target != "a.txt" {
		t.Errorf("expected errors.As to find the target, got %v", opErr)
	}
}

func TestOperationError_NilReceiver(t *testing.T) {
	var err *OperationError
	if err.Error() != "" {
		t.Error("expected empty message for nil error")
	}
	if err.Unwrap() != nil {
		t.Error("expected nil unwrap for nil error")
	}
	if err.WithContext("x") != nil {
		t.Error("expected nil from WithContext on nil error")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("index out of range", "goroutine 1 [running]:")
	msg := err.Error()
	if !strings.HasPrefix(msg, "panic: index out of range\n") {
		t.Errorf("expected panic prefix, got %q", msg)
	}
	if !strings.Contains(msg, "goroutine 1") {
		t.Errorf("expected stack in message, got %q", msg)
	}

	if got := NewRecoveredPanicError(42, "").Error(); got != "panic: 42" {
		t.Errorf("expected %q, got %q", "panic: 42", got)
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("no tty")
	err := &InitError{Component: "backend", Err: cause}

	if err.Error() != "init backend: no tty" {
		t.Errorf("expected %q, got %q", "init backend: no tty", err.Error())
	}
	if !errors.Is(err, ErrInitialization) {
		t.Error("expected InitError to match ErrInitialization")
	}
	if !errors.Is(err, cause) {
		t.Error("expected InitError to match its cause")
	}
}

func TestErrQuitAlias(t *testing.T) {
	if !errors.Is(ErrQuit, dispatcher.ErrQuit) {
		t.Error("expected ErrQuit to be the dispatcher quit sentinel")
	}
}
