package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mbelkin/newsnotes/internal/auth"
	"github.com/mbelkin/newsnotes/internal/forms"
	"github.com/mbelkin/newsnotes/internal/newsroom"
	"github.com/mbelkin/newsnotes/internal/notes"
)

type Handler struct {
	news     *newsroom.Manager
	notes    *notes.Manager
	auth     *auth.Manager
	tokenTTL time.Duration
	log      *slog.Logger
}

func NewHandler(news *newsroom.Manager, noteManager *notes.Manager, authManager *auth.Manager, tokenTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		news:     news,
		notes:    noteManager,
		auth:     authManager,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// formPage re-displays a submitted form with a field error. The original
// answers these with the re-rendered template and status 200; the store
// is unchanged.
func (h *Handler) formPage(c echo.Context, form interface{}, fe *forms.Error) error {
	page := FormPage{Form: form}
	if fe != nil {
		page.Errors = map[string]string{fe.Field: fe.Message}
	}
	return c.JSON(http.StatusOK, page)
}

// Home handles GET /
// @Summary News home page
// @Description Latest news sorted by date DESC, capped at the configured home page size
// @Tags news
// @Produce json
// @Success 200 {array} rest.News
// @Failure 500 {object} map[string]string
// @Router / [get]
func (h *Handler) Home(c echo.Context) error {
	newsList, err := h.news.HomePage(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(newsList, NewNews))
}

// NewsDetail handles GET /news/:id
// @Summary News detail page
// @Description One news item with its comments sorted by created ASC. The comment form flag is set for authenticated requesters only
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.NewsDetail
// @Failure 400,404,500 {object} map[string]string
// @Router /news/{id} [get]
func (h *Handler) NewsDetail(c echo.Context) error {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	news, err := h.news.NewsByID(ctx, newsID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return c.String(http.StatusNotFound, "news not found")
	}

	comments, err := h.news.Comments(ctx, newsID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	detail := NewsDetail{
		News:        NewNews(*news),
		Comments:    Map(comments, NewComment),
		CommentForm: auth.IdentityFrom(c) != nil,
	}

	return c.JSON(http.StatusOK, detail)
}

// AddComment handles POST /news/:id
// @Summary Create a comment
// @Description Persists a comment attributed to the requester; text containing a disallowed word re-displays the form with a field error
// @Tags news
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /news/{id} [post]
func (h *Handler) AddComment(c echo.Context) error {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form CommentForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	identity := auth.IdentityFrom(c)
	_, err = h.news.AddComment(c.Request().Context(), newsID, identity.UserID, form.Text)
	if fe, ok := forms.AsError(err); ok {
		return h.formPage(c, form, fe)
	}
	if errors.Is(err, newsroom.ErrNotFound) {
		return c.String(http.StatusNotFound, "news not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NewsDetailPath(newsID)+CommentsFragment)
}

// EditCommentForm handles GET /news/comments/:id/edit
func (h *Handler) EditCommentForm(c echo.Context) error {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	identity := auth.IdentityFrom(c)
	comment, err := h.news.CommentForUser(c.Request().Context(), commentID, identity.UserID)
	if errors.Is(err, newsroom.ErrNotFound) {
		return c.String(http.StatusNotFound, "comment not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return h.formPage(c, CommentForm{Text: comment.Text}, nil)
}

// EditComment handles POST /news/comments/:id/edit
// @Summary Edit own comment
// @Description Author-only; non-authors receive not-found. Text is re-validated against the bad-words list
// @Tags news
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /news/comments/{id}/edit [post]
func (h *Handler) EditComment(c echo.Context) error {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form CommentForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	identity := auth.IdentityFrom(c)
	comment, err := h.news.EditComment(c.Request().Context(), commentID, identity.UserID, form.Text)
	if fe, ok := forms.AsError(err); ok {
		return h.formPage(c, form, fe)
	}
	if errors.Is(err, newsroom.ErrNotFound) {
		return c.String(http.StatusNotFound, "comment not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NewsDetailPath(comment.NewsID)+CommentsFragment)
}

// DeleteCommentForm handles GET /news/comments/:id/delete
func (h *Handler) DeleteCommentForm(c echo.Context) error {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	identity := auth.IdentityFrom(c)
	comment, err := h.news.CommentForUser(c.Request().Context(), commentID, identity.UserID)
	if errors.Is(err, newsroom.ErrNotFound) {
		return c.String(http.StatusNotFound, "comment not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// DeleteComment handles DELETE (and POST) /news/comments/:id/delete
// @Summary Delete own comment
// @Description Author-only; non-authors receive not-found and the comment stays untouched
// @Tags news
// @Produce json
// @Param id path int true "Comment ID"
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /news/comments/{id}/delete [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	identity := auth.IdentityFrom(c)
	comment, err := h.news.DeleteComment(c.Request().Context(), commentID, identity.UserID)
	if errors.Is(err, newsroom.ErrNotFound) {
		return c.String(http.StatusNotFound, "comment not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NewsDetailPath(comment.NewsID)+CommentsFragment)
}
