package handler

import "errors"

var (
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidPage   = errors.New("page must be a positive int")
	errInvalidField  = errors.New("field must be one of: title, body")
	errNoSession     = errors.New("session is not initialized")
)
