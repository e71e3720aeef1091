package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrNoClassSelected    = NewErr("NO_CLASS_SELECTED", "select at least one character type")
	ErrIDGenerationFailed = NewErr("ID_GENERATION_FAILED", "id generation failed")
)

type Err struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

func (e *Err) Error() string { return e.Msg }
func NewErr(code, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// Code extracts the domain error code from err or anything wrapping it.
func Code(err error) string {
	if e, ok := err.(*Err); ok {
		return e.Code
	}
	if e, ok := errors.Cause(err).(*Err); ok {
		return e.Code
	}
	return "INTERNAL_ERROR"
}

// IsValidation reports whether err is a user-facing validation failure,
// the only error category meant to reach the user as a message.
func IsValidation(err error) bool {
	return Code(err) == ErrNoClassSelected.Code
}
