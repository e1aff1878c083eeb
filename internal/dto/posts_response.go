package dto

import "github.com/BloggingApp/post-manager/internal/model"

type PostsPage struct {
	model.View
	Pages    []int
	PrevPage int
	NextPage int
}

func NewPostsPage(view model.View) PostsPage {
	page := PostsPage{View: view}
	for i := 1; i <= view.TotalPages; i++ {
		page.Pages = append(page.Pages, i)
	}
	if view.CurrentPage > 1 {
		page.PrevPage = view.CurrentPage - 1
	}
	if view.CurrentPage < view.TotalPages {
		page.NextPage = view.CurrentPage + 1
	}
	return page
}
