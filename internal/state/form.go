package state

import (
	"strings"

	"github.com/BloggingApp/post-manager/internal/model"
)

const (
	MSG_TITLE_REQUIRED = "Title is required"
	MSG_BODY_REQUIRED  = "Body is required"
)

// Validate checks that title and body are both non-blank.
func Validate(fields model.FormFields) (bool, model.ValidationErrors) {
	var errs model.ValidationErrors
	if strings.TrimSpace(fields.Title) == "" {
		errs.Title = MSG_TITLE_REQUIRED
	}
	if strings.TrimSpace(fields.Body) == "" {
		errs.Body = MSG_BODY_REQUIRED
	}
	return errs.Empty(), errs
}

// Form is the input buffer shared by the add and edit dialogs.
type Form struct {
	Fields model.FormFields
	Errors model.ValidationErrors
}

// SetField updates one field and clears only that field's error.
func (f *Form) SetField(field model.Field, value string) {
	switch field {
	case model.FieldTitle:
		f.Fields.Title = value
		if f.Errors.Title != "" {
			f.Errors.Title = ""
		}
	case model.FieldBody:
		f.Fields.Body = value
		if f.Errors.Body != "" {
			f.Errors.Body = ""
		}
	}
}

// Validate runs Validate over the buffer and stores the resulting errors.
func (f *Form) Validate() bool {
	ok, errs := Validate(f.Fields)
	f.Errors = errs
	return ok
}

func (f *Form) Seed(post model.Post) {
	f.Fields = model.FormFields{Title: post.Title, Body: post.Body}
}

func (f *Form) Reset() {
	f.Fields = model.FormFields{}
	f.Errors = model.ValidationErrors{}
}
