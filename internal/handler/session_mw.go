package handler

import (
	"net/http"

	"github.com/BloggingApp/post-manager/internal/dto"
	"github.com/BloggingApp/post-manager/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	POST_MANAGER_KEY = "post-manager"
	SESSION_ID_KEY   = "session-id"
)

// sessionMiddleware attaches the caller's PostManager, issuing a new session
// cookie when the request carries none or an unreadable one.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	var id uuid.UUID
	if raw, err := c.Cookie(h.cfg.CookieName); err == nil {
		if parsed, err := uuid.Parse(raw); err == nil {
			id = parsed
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cfg.CookieName, id.String(), 0, "/", "", false, true)
	}

	c.Set(SESSION_ID_KEY, id)
	c.Set(POST_MANAGER_KEY, h.services.Sessions.Get(id))

	c.Next()
}

func (h *Handler) getPostManager(c *gin.Context) service.PostManager {
	value, _ := c.Get(POST_MANAGER_KEY)

	m, ok := value.(service.PostManager)
	if !ok {
		return nil
	}

	return m
}

func (h *Handler) requirePostManager(c *gin.Context) (service.PostManager, bool) {
	m := h.getPostManager(c)
	if m == nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errNoSession.Error()))
		return nil, false
	}
	return m, true
}

// resetSession discards the caller's PostManager so the session starts over
// with an empty, not yet loaded state. It returns the fresh PostManager.
func (h *Handler) resetSession(c *gin.Context) (service.PostManager, bool) {
	value, _ := c.Get(SESSION_ID_KEY)
	id, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errNoSession.Error()))
		return nil, false
	}

	h.services.Sessions.Remove(id)
	m := h.services.Sessions.Get(id)
	c.Set(POST_MANAGER_KEY, m)
	return m, true
}
