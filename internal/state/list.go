package state

import (
	"strings"

	"github.com/BloggingApp/post-manager/internal/model"
)

const PAGE_SIZE = 10

// Prepend returns a new collection with post at index 0.
func Prepend(posts []model.Post, post model.Post) []model.Post {
	out := make([]model.Post, 0, len(posts)+1)
	out = append(out, post)
	return append(out, posts...)
}

// Replace substitutes the entry whose ID matches. A missing ID leaves the
// collection unchanged.
func Replace(posts []model.Post, id int64, updated model.Post) []model.Post {
	out := make([]model.Post, len(posts))
	for i, post := range posts {
		if post.ID == id {
			out[i] = updated
			continue
		}
		out[i] = post
	}
	return out
}

func Remove(posts []model.Post, id int64) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if post.ID != id {
			out = append(out, post)
		}
	}
	return out
}

func Find(posts []model.Post, id int64) (model.Post, bool) {
	for _, post := range posts {
		if post.ID == id {
			return post, true
		}
	}
	return model.Post{}, false
}

// Filter keeps posts whose title or body contains term, ignoring case.
func Filter(posts []model.Post, term string) []model.Post {
	if term == "" {
		return posts
	}

	needle := strings.ToLower(term)
	var out []model.Post
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), needle) ||
			strings.Contains(strings.ToLower(post.Body), needle) {
			out = append(out, post)
		}
	}
	return out
}

// Paginate returns the page-th slice of size pageSize (1-based) and the
// total number of pages. Pages past the end are empty.
func Paginate(filtered []model.Post, page int, pageSize int) ([]model.Post, int) {
	if pageSize <= 0 {
		pageSize = PAGE_SIZE
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	// page <= totalPages keeps (page-1)*pageSize within int range
	if page > totalPages {
		return []model.Post{}, totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], totalPages
}
