package state

import "errors"

var (
	ErrValidation = errors.New("please fix the errors before submitting")
)
