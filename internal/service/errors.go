package service

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
)

const (
	MSG_FETCHED       = "Data fetched successfully"
	MSG_FETCH_FAILED  = "Failed to fetch data"
	MSG_FIX_ERRORS    = "Please fix the errors before submitting"
	MSG_ADDED         = "Post added successfully"
	MSG_ADD_FAILED    = "Failed to add post"
	MSG_UPDATED       = "Post updated successfully"
	MSG_UPDATE_FAILED = "Failed to update post"
	MSG_DELETED       = "Post deleted successfully"
	MSG_DELETE_FAILED = "Failed to delete post"
)
