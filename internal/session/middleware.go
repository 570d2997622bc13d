package session

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeySession = "session"
	contextKeyIssuer  = "session.issuer"
)

// CookieConfig describes the session id cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type issuer struct {
	store  *Store
	cookie CookieConfig
}

func (is issuer) issue(c *gin.Context) *Session {
	sess := is.store.Open(uuid.NewString())
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     is.cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   is.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(contextKeySession, sess)
	return sess
}

// Middleware binds every request to a session. An id is only adopted when
// the store holds a live record for it; anything else gets a fresh id.
func Middleware(store *Store, cookie CookieConfig) gin.HandlerFunc {
	is := issuer{store: store, cookie: cookie}
	return func(c *gin.Context) {
		c.Set(contextKeyIssuer, is)
		if id, err := c.Cookie(cookie.Name); err == nil && validID(id) {
			ok, err := store.Touch(c.Request.Context(), id)
			if err != nil {
				log.Printf("session touch %s: %v", id, err)
			}
			if ok {
				c.Set(contextKeySession, store.Open(id))
				c.Next()
				return
			}
		}
		is.issue(c)
		c.Next()
	}
}

// Renew drops the current session record and binds the request to a new id,
// sending the new cookie. Call it before storing a sign-in.
func Renew(c *gin.Context) (*Session, error) {
	v, ok := c.Get(contextKeyIssuer)
	is, isOK := v.(issuer)
	if !ok || !isOK {
		return nil, ErrNoSession
	}
	if old := FromContext(c); old != nil {
		if err := old.Clear(c.Request.Context()); err != nil {
			return nil, fmt.Errorf("session renew: %w", err)
		}
	}
	return is.issue(c), nil
}

// FromContext returns the session set by Middleware, or nil.
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(contextKeySession)
	if !ok {
		return nil
	}
	s, ok := v.(*Session)
	if !ok {
		return nil
	}
	return s
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
