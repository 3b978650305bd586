package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mbelkin/newsnotes/internal/auth"
	"github.com/mbelkin/newsnotes/internal/forms"
	"github.com/mbelkin/newsnotes/internal/notes"
)

// NoteList handles GET /notes/
// @Summary List own notes
// @Description Only notes owned by the requester; other users' notes are silently omitted
// @Tags notes
// @Produce json
// @Success 200 {array} rest.Note
// @Failure 500 {object} map[string]string
// @Router /notes/ [get]
func (h *Handler) NoteList(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	noteList, err := h.notes.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(noteList, NewNote))
}

// AddNoteForm handles GET /notes/add
func (h *Handler) AddNoteForm(c echo.Context) error {
	return h.formPage(c, NoteForm{}, nil)
}

// AddNote handles POST /notes/add
// @Summary Create a note
// @Description An omitted slug is derived from the title; a duplicate slug re-displays the form with a field error and leaves the store unchanged
// @Tags notes
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,500 {object} map[string]string
// @Router /notes/add [post]
func (h *Handler) AddNote(c echo.Context) error {
	var form NoteForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	identity := auth.IdentityFrom(c)
	_, err := h.notes.Create(c.Request().Context(), identity.UserID, form.Title, form.Text, form.Slug)
	if fe, ok := forms.AsError(err); ok {
		return h.formPage(c, form, fe)
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NoteSuccessPath)
}

// NoteSuccess handles GET /notes/done
func (h *Handler) NoteSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "done"})
}

// NoteDetail handles GET /notes/note/:slug
// @Summary Note detail
// @Description Owner-only; an absent note and another user's note are both not-found
// @Tags notes
// @Produce json
// @Param slug path string true "Note slug"
// @Success 200 {object} rest.Note
// @Failure 404,500 {object} map[string]string
// @Router /notes/note/{slug} [get]
func (h *Handler) NoteDetail(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	note, err := h.notes.BySlugForUser(c.Request().Context(), c.Param("slug"), identity.UserID)
	if errors.Is(err, notes.ErrNotFound) {
		return c.String(http.StatusNotFound, "note not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNote(*note))
}

// EditNoteForm handles GET /notes/note/:slug/edit
func (h *Handler) EditNoteForm(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	note, err := h.notes.BySlugForUser(c.Request().Context(), c.Param("slug"), identity.UserID)
	if errors.Is(err, notes.ErrNotFound) {
		return c.String(http.StatusNotFound, "note not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return h.formPage(c, NoteForm{Title: note.Title, Text: note.Text, Slug: note.Slug}, nil)
}

// EditNote handles POST /notes/note/:slug/edit
// @Summary Edit own note
// @Description Owner-only; the note may keep its own slug, any other collision re-displays the form
// @Tags notes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param slug path string true "Note slug"
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /notes/note/{slug}/edit [post]
func (h *Handler) EditNote(c echo.Context) error {
	var form NoteForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	identity := auth.IdentityFrom(c)
	_, err := h.notes.Update(c.Request().Context(), c.Param("slug"), identity.UserID, form.Title, form.Text, form.Slug)
	if fe, ok := forms.AsError(err); ok {
		return h.formPage(c, form, fe)
	}
	if errors.Is(err, notes.ErrNotFound) {
		return c.String(http.StatusNotFound, "note not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NoteSuccessPath)
}

// DeleteNoteForm handles GET /notes/note/:slug/delete
func (h *Handler) DeleteNoteForm(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	note, err := h.notes.BySlugForUser(c.Request().Context(), c.Param("slug"), identity.UserID)
	if errors.Is(err, notes.ErrNotFound) {
		return c.String(http.StatusNotFound, "note not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNote(*note))
}

// DeleteNote handles DELETE (and POST) /notes/note/:slug/delete
// @Summary Delete own note
// @Description Owner-only; non-owners receive not-found and the note stays untouched
// @Tags notes
// @Produce json
// @Param slug path string true "Note slug"
// @Success 302
// @Failure 404,500 {object} map[string]string
// @Router /notes/note/{slug}/delete [delete]
func (h *Handler) DeleteNote(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	err := h.notes.Delete(c.Request().Context(), c.Param("slug"), identity.UserID)
	if errors.Is(err, notes.ErrNotFound) {
		return c.String(http.StatusNotFound, "note not found")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, NoteSuccessPath)
}
