package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbelkin/newsnotes/internal/auth"
)

// Logical endpoint names map to these constants and builders. Handlers
// and tests share them; no path is spelled twice.
const (
	HomePath        = "/"
	NoteListPath    = "/notes/"
	NoteAddPath     = "/notes/add"
	NoteSuccessPath = "/notes/done"
	LoginPath       = "/auth/login"
	LogoutPath      = "/auth/logout"
	SignupPath      = "/auth/signup"

	healthPath  = "/health"
	metricsPath = "/metrics"
	rpcPath     = "/rpc"

	// CommentsFragment anchors detail-page redirects at the comment block.
	CommentsFragment = "#comments"

	contentTypeJSON = "application/json"
)

func NewsDetailPath(newsID int) string {
	return "/news/" + strconv.Itoa(newsID)
}

func CommentEditPath(commentID int) string {
	return "/news/comments/" + strconv.Itoa(commentID) + "/edit"
}

func CommentDeletePath(commentID int) string {
	return "/news/comments/" + strconv.Itoa(commentID) + "/delete"
}

func NoteDetailPath(slug string) string {
	return "/notes/note/" + slug
}

func NoteEditPath(slug string) string {
	return "/notes/note/" + slug + "/edit"
}

func NoteDeletePath(slug string) string {
	return "/notes/note/" + slug + "/delete"
}

// RegisterRoutes builds the echo engine: public news surface, gated
// comment mutations, fully gated notes app, auth endpoints, health,
// metrics and the JSON-RPC mount.
func (h *Handler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)
	e.Use(metricsMiddleware())
	e.Use(h.auth.LoadIdentity())

	requireLogin := auth.RequireLogin(LoginPath)

	e.GET(HomePath, h.Home)
	e.GET("/news/:id", h.NewsDetail)
	e.POST("/news/:id", h.AddComment, requireLogin)

	comments := e.Group("/news/comments", requireLogin)
	comments.GET("/:id/edit", h.EditCommentForm)
	comments.POST("/:id/edit", h.EditComment)
	comments.GET("/:id/delete", h.DeleteCommentForm)
	comments.POST("/:id/delete", h.DeleteComment)
	comments.DELETE("/:id/delete", h.DeleteComment)

	notes := e.Group("/notes", requireLogin)
	notes.GET("/", h.NoteList)
	notes.GET("/add", h.AddNoteForm)
	notes.POST("/add", h.AddNote)
	notes.GET("/done", h.NoteSuccess)
	notes.GET("/note/:slug", h.NoteDetail)
	notes.GET("/note/:slug/edit", h.EditNoteForm)
	notes.POST("/note/:slug/edit", h.EditNote)
	notes.GET("/note/:slug/delete", h.DeleteNoteForm)
	notes.POST("/note/:slug/delete", h.DeleteNote)
	notes.DELETE("/note/:slug/delete", h.DeleteNote)

	e.GET(LoginPath, h.LoginForm)
	e.POST(LoginPath, h.Login)
	e.GET(LogoutPath, h.Logout)
	e.GET(SignupPath, h.SignupForm)
	e.POST(SignupPath, h.Signup)

	e.GET(healthPath, h.handleHealth)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	if rpc != nil {
		e.POST(rpcPath, echo.WrapHandler(rpc))
	}

	return e
}

func (h *Handler) handleHealth(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, contentTypeJSON)
	return json.NewEncoder(c.Response()).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)
		return err
	}
}
