package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mbelkin/newsnotes/internal/auth"
	"github.com/mbelkin/newsnotes/internal/forms"
)

// nonFieldErrors keys login failures that belong to no single field.
const nonFieldErrors = "__all__"

// LoginForm handles GET /auth/login
func (h *Handler) LoginForm(c echo.Context) error {
	return h.formPage(c, LoginForm{Next: c.QueryParam("next")}, nil)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verifies credentials, sets the session cookie and redirects to the next path or home
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,500 {object} map[string]string
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	token, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		form.Password = ""
		return c.JSON(http.StatusOK, FormPage{
			Form:   form,
			Errors: map[string]string{nonFieldErrors: auth.ErrInvalidCredentials.Error()},
		})
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(auth.NewSessionCookie(token, h.tokenTTL))

	// Only same-site paths are honored as redirect targets.
	next := form.Next
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = HomePath
	}
	return c.Redirect(http.StatusFound, next)
}

// Logout handles GET /auth/logout
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredSessionCookie())
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// SignupForm handles GET /auth/signup
func (h *Handler) SignupForm(c echo.Context) error {
	return h.formPage(c, SignupForm{}, nil)
}

// Signup handles POST /auth/signup
// @Summary Sign up
// @Description Creates a user; a duplicate username re-displays the form with a field error
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.FormPage
// @Success 302
// @Failure 400,500 {object} map[string]string
// @Router /auth/signup [post]
func (h *Handler) Signup(c echo.Context) error {
	var form SignupForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	_, err := h.auth.SignUp(c.Request().Context(), form.Username, form.Password)
	if fe, ok := forms.AsError(err); ok {
		form.Password = ""
		return h.formPage(c, form, fe)
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, LoginPath)
}
