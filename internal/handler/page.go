package handler

import (
	"net/http"

	"github.com/BloggingApp/post-manager/internal/dto"
	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) pageIndex(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	ensureLoaded(c.Request.Context(), m)

	if err := applyQuery(c, m); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.HTML(http.StatusOK, "index.html", dto.NewPostsPage(m.View()))
}

func (h *Handler) pageOpenAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.OpenAdd()
	h.redirectHome(c)
}

func (h *Handler) pageCancelAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.Cancel(model.DialogAdd)
	h.redirectHome(c)
}

func (h *Handler) pageSubmitAdd(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	var input dto.PostFormRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	setFormFields(m, input)
	// the outcome reaches the page as a notification
	m.SubmitAdd(c.Request.Context())
	h.redirectHome(c)
}

func (h *Handler) pageOpenEdit(c *gin.Context) {
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

	h.redirectHome(c)
}

func (h *Handler) pageCancelEdit(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	m.Cancel(model.DialogEdit)
	h.redirectHome(c)
}

func (h *Handler) pageSubmitEdit(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	var input dto.PostFormRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	setFormFields(m, input)
	// the outcome reaches the page as a notification
	m.SubmitEdit(c.Request.Context())
	h.redirectHome(c)
}

func (h *Handler) pageDelete(c *gin.Context) {
	m, ok := h.requirePostManager(c)
	if !ok {
		return
	}

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// the outcome reaches the page as a notification
	m.Delete(c.Request.Context(), postID)
	h.redirectHome(c)
}

func (h *Handler) pageResetSession(c *gin.Context) {
	if _, ok := h.resetSession(c); !ok {
		return
	}

	h.redirectHome(c)
}
