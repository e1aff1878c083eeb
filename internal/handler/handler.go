package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/BloggingApp/post-manager/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Config struct {
	ClientOrigin string
	CookieName   string
}

type Handler struct {
	services *service.Service
	cfg      Config
}

func New(services *service.Service, cfg Config) *Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = "pm_session"
	}

	return &Handler{
		services: services,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if h.cfg.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{h.cfg.ClientOrigin},
			AllowMethods:     []string{"POST", "GET", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	page := r.Group("", h.sessionMiddleware)
	{
		page.GET("/", h.pageIndex)
		page.POST("/session/reset", h.pageResetSession)

		posts := page.Group("/posts")
		{
			posts.POST("/add/open", h.pageOpenAdd)
			posts.POST("/add/cancel", h.pageCancelAdd)
			posts.POST("/add", h.pageSubmitAdd)
			posts.POST("/edit/cancel", h.pageCancelEdit)
			posts.POST("/edit", h.pageSubmitEdit)
			posts.POST("/:postID/edit/open", h.pageOpenEdit)
			posts.POST("/:postID/delete", h.pageDelete)
		}
	}

	v1 := r.Group("/api/v1", h.sessionMiddleware)
	{
		v1.GET("/view", h.apiView)
		v1.POST("/session/reset", h.apiResetSession)
		v1.PUT("/search", h.apiSearch)
		v1.PUT("/page", h.apiSetPage)
		v1.PATCH("/form", h.apiSetField)

		posts := v1.Group("/posts")
		{
			posts.POST("/add/open", h.apiOpenAdd)
			posts.POST("/add/cancel", h.apiCancelAdd)
			posts.POST("/add", h.apiSubmitAdd)
			posts.POST("/edit/cancel", h.apiCancelEdit)
			posts.POST("/edit", h.apiSubmitEdit)
			posts.POST("/:postID/edit/open", h.apiOpenEdit)
			posts.DELETE("/:postID", h.apiDelete)
		}
	}

	return r
}
