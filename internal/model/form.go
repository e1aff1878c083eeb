package model

// Field names one input of the add/edit dialogs.
type Field int

const (
	FieldTitle Field = iota
	FieldBody
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldBody:
		return "body"
	default:
		return "unknown"
	}
}

// ParseField maps a form input name onto a Field.
func ParseField(name string) (Field, bool) {
	switch name {
	case "title":
		return FieldTitle, true
	case "body":
		return FieldBody, true
	default:
		return 0, false
	}
}

type FormFields struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ValidationErrors struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (e ValidationErrors) Empty() bool {
	return e.Title == "" && e.Body == ""
}
