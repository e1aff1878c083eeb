package handler

import (
	"net/http"

	"github.com/BloggingApp/post-manager/internal/dto"
	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/BloggingApp/post-manager/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) respondView(c *gin.Context, m service.PostManager, err error) {
	status := submitStatus(err)
	if err != nil {
		c.JSON(status, dto.NewViewResponse(err.Error(), m.View()))
		return
	}

	c.JSON(status, m.View())
}

func (h *Handler) apiView(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	ensureLoaded(c.Request.Context(), m)

	if err := applyQuery(c, m); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, m.View())
}

func (h *Handler) apiSearch(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	var input dto.SearchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	m.Search(input.Term)
	h.respondView(c, m, nil)
}

func (h *Handler) apiSetPage(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	var input dto.SetPageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPage.Error()))
		return
	}

	m.SetPage(input.Page)
	h.respondView(c, m, nil)
}

func (h *Handler) apiSetField(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	var input dto.SetFieldRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	field, ok := model.ParseField(input.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidField.Error()))
		return
	}

	m.SetField(field, input.Value)
	h.respondView(c, m, nil)
}

func (h *Handler) apiOpenAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.OpenAdd()
	h.respondView(c, m, nil)
}

func (h *Handler) apiCancelAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.Cancel(model.DialogAdd)
	h.respondView(c, m, nil)
}

func (h *Handler) apiSubmitAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	h.respondView(c, m, m.SubmitAdd(c.Request.Context()))
}

func (h *Handler) apiOpenEdit(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := m.OpenEdit(postID); err != nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.respondView(c, m, nil)
}

func (h *Handler) apiCancelEdit(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.Cancel(model.DialogEdit)
	h.respondView(c, m, nil)
}

func (h *Handler) apiSubmitEdit(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	h.respondView(c, m, m.SubmitEdit(c.Request.Context()))
}

func (h *Handler) apiDelete(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.respondView(c, m, m.Delete(c.Request.Context(), postID))
}

func (h *Handler) apiResetSession(c *gin.Context) {
	m, ok := h.resetSession(c)
	if !ok {
		return
	}

	ensureLoaded(c.Request.Context(), m)
	h.respondView(c, m, nil)
}
