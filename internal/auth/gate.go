package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/Pedroxsbai/TODOAPP/internal/session"

	"github.com/gin-gonic/gin"
)

// DefaultLoginPath is the sign-in entry point denied requests are sent to.
const DefaultLoginPath = "/Inscription"

// Gate lets a request through only when the session's IsConnected value is
// exactly "True". Any other value, including a JSON-quoted one, is denied.
type Gate struct {
	loginPath string
}

func NewGate(loginPath string) *Gate {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &Gate{loginPath: loginPath}
}

func (g *Gate) LoginPath() string { return g.loginPath }

// Allowed reports whether sess is signed in. Store errors deny.
func (g *Gate) Allowed(ctx context.Context, sess *session.Session) bool {
	if sess == nil {
		return false
	}
	v, ok, err := sess.GetString(ctx, session.KeyIsConnected)
	if err != nil {
		log.Printf("auth gate: %v", err)
		return false
	}
	return ok && v == session.ConnectedTrue
}

// Middleware redirects denied requests to the login path and stops the chain.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Allowed(c.Request.Context(), session.FromContext(c)) {
			c.Redirect(http.StatusFound, g.loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
