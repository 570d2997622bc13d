package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Pedroxsbai/TODOAPP/internal/auth"
	dom "github.com/Pedroxsbai/TODOAPP/internal/domain"
	"github.com/Pedroxsbai/TODOAPP/internal/dto"
	"github.com/Pedroxsbai/TODOAPP/internal/service"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/views"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the inscription (sign-in) form and logout.
type AuthHandler struct {
	users *service.UserService
	gate  *auth.Gate
}

// NewAuthHandler returns a new AuthHandler. Logout sends the client to the
// gate's login path.
func NewAuthHandler(users *service.UserService, gate *auth.Gate) *AuthHandler {
	return &AuthHandler{users: users, gate: gate}
}

// Form godoc
// @Summary      Inscription form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /Inscription [get]
func (h *AuthHandler) Form(c *gin.Context) {
	h.renderForm(c, dto.InscriptionForm{}, nil)
}

// Submit godoc
// @Summary      Sign in for this session
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name      formData  string  true  "Display name"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  "form re-rendered with validation messages"
// @Success      302  "redirect to /Todo"
// @Router       /Inscription [post]
func (h *AuthHandler) Submit(c *gin.Context) {
	var form dto.InscriptionForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form, bindErrors(err))
		return
	}
	user, err := service.ValidateUser(dom.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if errors.Is(err, service.ErrInvalidName) {
		h.renderForm(c, form, map[string]string{"name": err.Error()})
		return
	}
	if err != nil {
		h.renderForm(c, form, map[string]string{"form": err.Error()})
		return
	}

	// A signed-in session never keeps the id it had before sign-in.
	sess, err := session.Renew(c)
	if err != nil {
		renderError(c, h.users, err)
		return
	}
	if err := h.users.Inscribe(c.Request.Context(), sess, user); err != nil {
		renderError(c, h.users, err)
		return
	}
	c.Redirect(http.StatusFound, TodoListPath)
}

// Logout godoc
// @Summary      Forget this session
// @Tags         auth
// @Success      302  "redirect to /Inscription"
// @Router       /Logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := session.FromContext(c); sess != nil {
		if err := h.users.Logout(c.Request.Context(), sess); err != nil {
			log.Printf("logout %s: %v", sess.ID, err)
		}
	}
	c.Redirect(http.StatusFound, h.gate.LoginPath())
}

func (h *AuthHandler) renderForm(c *gin.Context, form dto.InscriptionForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	form.Password = ""
	c.HTML(http.StatusOK, views.Inscription, viewData(c, h.users, "Inscription", gin.H{
		"Form":   form,
		"Errors": errs,
	}))
}
