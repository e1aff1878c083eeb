package model

type Dialog string

const (
	DialogAdd  Dialog = "add"
	DialogEdit Dialog = "edit"
)

// View is a render snapshot of one PostManager.
type View struct {
	Posts         []Post           `json:"posts"`
	FilteredTotal int              `json:"filtered_total"`
	TotalPages    int              `json:"total_pages"`
	CurrentPage   int              `json:"current_page"`
	PageSize      int              `json:"page_size"`
	SearchTerm    string           `json:"search_term"`
	Form          FormFields       `json:"form"`
	Errors        ValidationErrors `json:"errors"`
	AddOpen       bool             `json:"add_open"`
	EditOpen      bool             `json:"edit_open"`
	EditTarget    *Post            `json:"edit_target"`
	Loaded        bool             `json:"loaded"`
	Notifications []Notification   `json:"notifications"`
}
