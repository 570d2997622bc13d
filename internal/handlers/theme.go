package handlers

import (
	"net/http"

	"github.com/Pedroxsbai/TODOAPP/internal/theme"
	"github.com/Pedroxsbai/TODOAPP/internal/utils"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themes *theme.Resolver
}

func NewThemeHandler(themes *theme.Resolver) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Toggle godoc
// @Summary      Switch between light and dark theme
// @Tags         theme
// @Success      302  "redirect to the referring page or /"
// @Router       /Theme/Toggle [get]
// @Router       /Theme/Toggle [post]
func (h *ThemeHandler) Toggle(c *gin.Context) {
	h.themes.Toggle(c)
	c.Redirect(http.StatusFound, utils.LocalRedirect(c.Request.Referer()))
}
