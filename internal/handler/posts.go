package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/post-manager/internal/dto"
	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/BloggingApp/post-manager/internal/repository/remote"
	"github.com/BloggingApp/post-manager/internal/service"
	"github.com/BloggingApp/post-manager/internal/state"
	"github.com/gin-gonic/gin"
)

func parsePostID(c *gin.Context) (int64, error) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		return 0, errInvalidPostID
	}
	return postID, nil
}

// applyQuery copies the q and page query params, when present, onto m.
func applyQuery(c *gin.Context, m service.PostManager) error {
	if q, ok := c.GetQuery("q"); ok {
		m.Search(q)
	}
	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || page < 1 {
			return errInvalidPage
		}
		m.SetPage(page)
	}
	return nil
}

func setFormFields(m service.PostManager, input dto.PostFormRequest) {
	m.SetField(model.FieldTitle, input.Title)
	m.SetField(model.FieldBody, input.Body)
}

// ensureLoaded runs the one-shot initial load. Its outcome reaches the user
// as a notification.
func ensureLoaded(ctx context.Context, m service.PostManager) {
	m.Load(ctx)
}

func submitStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, state.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, remote.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
