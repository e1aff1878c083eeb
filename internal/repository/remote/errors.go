package remote

import "errors"

var (
	ErrNetwork = errors.New("network error")
)
