package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pedroxsbai/TODOAPP/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{"absent", nil, false},
		{"empty", ptr(""), false},
		{"lowercase", ptr("true"), false},
		{"one", ptr("1"), false},
		{"json quoted", ptr(`"True"`), false},
		{"padded", ptr(" True"), false},
		{"exact", ptr("True"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			sess := session.NewStore(session.NewMemoryBackend(time.Minute)).Open("s")
			if tc.value != nil {
				require.NoError(t, sess.SetString(ctx, session.KeyIsConnected, *tc.value))
			}
			assert.Equal(t, tc.want, NewGate("").Allowed(ctx, sess))
		})
	}
}

func TestAllowed_ObjectPathNeverAuthenticates(t *testing.T) {
	ctx := context.Background()
	sess := session.NewStore(session.NewMemoryBackend(time.Minute)).Open("s")
	require.NoError(t, sess.SetObject(ctx, session.ObjectKey(session.KeyIsConnected), "True"))

	assert.False(t, NewGate("").Allowed(ctx, sess))
}

func TestAllowed_NilSession(t *testing.T) {
	assert.False(t, NewGate("").Allowed(context.Background(), nil))
}

func TestMiddleware_RedirectsAndSkipsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore(session.NewMemoryBackend(time.Minute))
	gate := NewGate("/login")

	called := false
	r := gin.New()
	r.Use(session.Middleware(store, session.CookieConfig{Name: "sid"}))
	r.GET("/private", gate.Middleware(), func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, called)
}

func TestMiddleware_PassesWhenConnected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore(session.NewMemoryBackend(time.Minute))
	const id = "7b1f2c1e-4c53-4a57-9d38-2a8d3f1f0c11"
	require.NoError(t, store.Open(id).SetString(context.Background(), session.KeyIsConnected, session.ConnectedTrue))

	r := gin.New()
	r.Use(session.Middleware(store, session.CookieConfig{Name: "sid"}))
	r.GET("/private", NewGate("").Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func ptr(s string) *string { return &s }

func TestNewGate_LoginPath(t *testing.T) {
	assert.Equal(t, DefaultLoginPath, NewGate("").LoginPath())
	assert.Equal(t, "/login", NewGate("/login").LoginPath())
}
