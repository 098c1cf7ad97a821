package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeToolFailed, Message: "xclip failed", Underlying: errors.New("exit status 1")},
			expected: "xclip failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeGeneral,
		Message:    "test error",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})

	t.Run("plain error gets general code", func(t *testing.T) {
		plain := errors.New("boom")
		got := Wrap(plain, "copying")
		if got.Code != ExitCodeGeneral {
			t.Errorf("Code = %d, want %d", got.Code, ExitCodeGeneral)
		}
		if got.Underlying != plain {
			t.Errorf("Underlying = %v, want %v", got.Underlying, plain)
		}
	})

	t.Run("wrapped Error preserves code and suggestion", func(t *testing.T) {
		inner := NewWithSuggestion(ExitCodeNoBackend, "nothing found", "install xclip")
		got := Wrap(inner, "copying")
		if got.Code != ExitCodeNoBackend {
			t.Errorf("Code = %d, want %d", got.Code, ExitCodeNoBackend)
		}
		if got.Message != "copying: nothing found" {
			t.Errorf("Message = %q", got.Message)
		}
		if got.Suggestion != "install xclip" {
			t.Errorf("Suggestion = %q", got.Suggestion)
		}
	})
}

func TestIsExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ExitCode
		want bool
	}{
		{
			name: "matching code",
			err:  New(ExitCodeTimeout, "timed out"),
			code: ExitCodeTimeout,
			want: true,
		},
		{
			name: "non-matching code",
			err:  New(ExitCodeTimeout, "timed out"),
			code: ExitCodeConfig,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: ExitCodeGeneral,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ExitCodeSuccess,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExitCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleQuietReturn(t *testing.T) {
	if got := HandleQuietReturn(nil); got != ExitCodeSuccess {
		t.Errorf("HandleQuietReturn(nil) = %d, want %d", got, ExitCodeSuccess)
	}
	if got := HandleQuietReturn(BackendUnavailableError("xsel", "xsel")); got != ExitCodeNoBackend {
		t.Errorf("HandleQuietReturn(BackendUnavailableError()) = %d, want %d", got, ExitCodeNoBackend)
	}
	if got := HandleQuietReturn(errors.New("boom")); got != ExitCodeGeneral {
		t.Errorf("HandleQuietReturn(plain) = %d, want %d", got, ExitCodeGeneral)
	}
}
