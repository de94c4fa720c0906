package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageShapes(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"op and message", &Error{Code: CodeNotFound, Op: "EventService.Get", Message: "event not found"}, "EventService.Get: event not found (not_found)"},
		{"op only", &Error{Code: CodeInternal, Op: "RoundRepo.Create"}, "RoundRepo.Create (internal)"},
		{"message only", &Error{Code: CodeValidation, Message: "name is required"}, "name is required (validation)"},
		{"bare code", &Error{Code: CodeConflict}, "conflict"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(CodeConflict, "UserRepo.Create", "username taken", errors.New("duplicate key"))
	wrapped := fmt.Errorf("register: %w", base)

	if !IsCode(wrapped, CodeConflict) {
		t.Fatalf("IsCode should see conflict through fmt wrapping")
	}
	if IsCode(wrapped, CodeNotFound) {
		t.Fatalf("IsCode matched the wrong code")
	}
	if CodeOf(wrapped) != CodeConflict {
		t.Fatalf("CodeOf = %q, want conflict", CodeOf(wrapped))
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatalf("CodeOf on a plain error should be empty")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestMessageOf(t *testing.T) {
	err := New(CodeForbidden, "EventService.Delete", "not your event", nil)
	if got := MessageOf(err); got != "not your event" {
		t.Fatalf("MessageOf = %q", got)
	}
	if got := MessageOf(errors.New("x")); got != "" {
		t.Fatalf("MessageOf on plain error = %q, want empty", got)
	}
}
