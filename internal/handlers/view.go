package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Pedroxsbai/TODOAPP/internal/service"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/theme"
	"github.com/Pedroxsbai/TODOAPP/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// viewData adds what every page needs: title, theme and the signed-in name.
func viewData(c *gin.Context, users *service.UserService, title string, data gin.H) gin.H {
	out := gin.H{
		"Title":  title,
		"Theme":  theme.FromContext(c),
		"Errors": map[string]string{},
	}
	if name, ok := users.CurrentName(c.Request.Context(), session.FromContext(c)); ok {
		out["UserName"] = name
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func renderError(c *gin.Context, users *service.UserService, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, views.Error, viewData(c, users, "Error", gin.H{
		"Message": "The request could not be completed. Please try again.",
	}))
}

// bindErrors turns gin binding errors into one message per form field.
func bindErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid form submission"
		return out
	}
	for _, fe := range verrs {
		field := formFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = "enter a valid email address"
		case "oneof":
			out[field] = field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
		case "max":
			out[field] = field + " is too long"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

func formFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
