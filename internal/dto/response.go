package dto

import (
	"time"

	"github.com/BloggingApp/post-manager/internal/model"
)

type BasicResponse struct {
	Ok        bool        `json:"ok"`
	Details   string      `json:"details"`
	View      *model.View `json:"view,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// NewViewResponse reports a failed action together with the state it left.
func NewViewResponse(details string, view model.View) BasicResponse {
	resp := NewBasicResponse(false, details)
	resp.View = &view
	return resp
}
