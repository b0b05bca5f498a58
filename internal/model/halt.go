package model

import "errors"

// HaltError stops the current page render; Message is shown to the user verbatim
type HaltError struct {
	Message string
	Err     error
}

func (e *HaltError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HaltError) Unwrap() error {
	return e.Err
}

// Halt builds a HaltError
func Halt(message string, err error) *HaltError {
	return &HaltError{Message: message, Err: err}
}

// AsHalt extracts a HaltError from err's chain
func AsHalt(err error) (*HaltError, bool) {
	var h *HaltError
	if errors.As(err, &h) {
		return h, true
	}
	return nil, false
}
