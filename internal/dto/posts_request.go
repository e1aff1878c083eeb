package dto

type SearchRequest struct {
	Term string `json:"term"`
}

type SetPageRequest struct {
	Page int `json:"page" binding:"required,min=1"`
}

type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type PostFormRequest struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}
