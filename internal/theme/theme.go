// Package theme keeps the light/dark preference in a client cookie.
package theme

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	DefaultCookieName = "theme"
	cookieLifetime    = 30 * 24 * time.Hour
	contextKeyTheme   = "theme"
)

// Resolver reads and writes the theme cookie. It has no server-side state.
type Resolver struct {
	cookieName string
	now        func() time.Time
}

func NewResolver(cookieName string) *Resolver {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Resolver{cookieName: cookieName, now: time.Now}
}

// Current returns the theme for this request: a value set earlier in the
// request wins over the request cookie; anything but "dark" is light.
func (r *Resolver) Current(c *gin.Context) Theme {
	if v, ok := c.Get(contextKeyTheme); ok {
		if t, ok := v.(Theme); ok {
			return t
		}
	}
	v, err := c.Cookie(r.cookieName)
	if err == nil && Theme(v) == Dark {
		return Dark
	}
	return Light
}

// Toggle flips the current theme, persists it and returns the new value.
func (r *Resolver) Toggle(c *gin.Context) Theme {
	next := Dark
	if r.Current(c) == Dark {
		next = Light
	}
	r.Set(c, next)
	return next
}

// Set writes the theme cookie for 30 days, HttpOnly and SameSite=Lax.
func (r *Resolver) Set(c *gin.Context, t Theme) {
	if t != Dark {
		t = Light
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     r.cookieName,
		Value:    string(t),
		Path:     "/",
		Expires:  r.now().Add(cookieLifetime),
		MaxAge:   int(cookieLifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(contextKeyTheme, t)
}

// Middleware makes the current theme available to views via FromContext.
func (r *Resolver) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyTheme, r.Current(c))
		c.Next()
	}
}

// FromContext returns the theme resolved for this request, light if none.
func FromContext(c *gin.Context) Theme {
	if v, ok := c.Get(contextKeyTheme); ok {
		if t, ok := v.(Theme); ok {
			return t
		}
	}
	return Light
}
