package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRatio, "ratio %q not recognized", "silver")

	if err.Code != ErrCodeInvalidRatio {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRatio)
	}
	if err.Message != `ratio "silver" not recognized` {
		t.Errorf("Message = %v, want %v", err.Message, `ratio "silver" not recognized`)
	}
	want := `INVALID_RATIO: ratio "silver" not recognized`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("strconv: bad digit")
	err := Wrap(ErrCodeInvalidSize, cause, "size element %q", "3a")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := `INVALID_SIZE: size element "3a": strconv: bad digit`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidSide, "x"), ErrCodeInvalidSide, true},
		{"other code", New(ErrCodeInvalidSide, "x"), ErrCodeInvalidMode, false},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidStyle, "inner"), "outer"), ErrCodeInvalidConfig, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(ErrCodeNotFound, "cmap")), ErrCodeNotFound, true},
		{"plain error", errors.New("plain"), ErrCodeNotFound, false},
		{"nil error", nil, ErrCodeNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := fmt.Errorf("saving: %w", New(ErrCodeInvalidFormat, "format %q not supported", "bmp"))
	if got := GetCode(err); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidFormat)
	}
	if got := UserMessage(err); got != `format "bmp" not supported` {
		t.Errorf("UserMessage() = %v, want %v", got, `format "bmp" not supported`)
	}

	plain := errors.New("plain")
	if got := GetCode(plain); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
	if got := UserMessage(plain); got != "plain" {
		t.Errorf("UserMessage(plain) = %v, want plain", got)
	}
}
