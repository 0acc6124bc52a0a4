package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInvalidVizType, "unknown visualization %q", "sankey")
	if got, want := err.Error(), `INVALID_VIZ_TYPE: unknown visualization "sankey"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("no such file")
	wrapped := Wrap(ErrCodeFileNotFound, cause, "snapshot %s", "gof.yaml")
	if got, want := wrapped.Error(), "FILE_NOT_FOUND: snapshot gof.yaml: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestCodeThroughWrapping(t *testing.T) {
	base := New(ErrCodeInvalidPattern, "duplicate id 3")
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"direct", base, ErrCodeInvalidPattern},
		{"fmt wrapped", fmt.Errorf("load: %w", base), ErrCodeInvalidPattern},
		{"outer code wins", Wrap(ErrCodeInternal, base, "render"), ErrCodeInternal},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeTimeout) {
				t.Error("Is(TIMEOUT) = true for unrelated error")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidFormat, "unsupported format: gif")); got != "unsupported format: gif" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidFormat, http.StatusBadRequest},
		{ErrCodeInvalidVizType, http.StatusBadRequest},
		{ErrCodeInvalidPattern, http.StatusBadRequest},
		{ErrCodeInvalidDimensions, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeFileNotFound, http.StatusNotFound},
		{ErrCodeNetwork, http.StatusBadGateway},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
		{ErrCodeUnsupported, http.StatusNotImplemented},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(New(tt.code, "x")); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}
