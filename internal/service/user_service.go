package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	dom "github.com/Pedroxsbai/TODOAPP/internal/domain"
	"github.com/Pedroxsbai/TODOAPP/internal/session"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	ErrInvalidInscription = errors.New("name, valid email and password are required")
	ErrInvalidName        = errors.New("name must not contain control characters or '|'")
)

// UserService signs a visitor in by marking the session.
// Nothing about the user is kept past the session.
type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// ValidateUser trims u and checks it can be signed in. The name ends up in
// the action log, so line breaks and the field separator are refused.
func ValidateUser(u dom.User) (dom.User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return dom.User{}, ErrInvalidInscription
	}
	if strings.ContainsFunc(u.Name, func(r rune) bool { return unicode.IsControl(r) || r == '|' }) {
		return dom.User{}, ErrInvalidName
	}
	if err := validate.Var(u.Email, "email"); err != nil {
		return dom.User{}, ErrInvalidInscription
	}
	return u, nil
}

// Inscribe validates u and records the sign-in in sess.
func (s *UserService) Inscribe(ctx context.Context, sess *session.Session, u dom.User) error {
	u, err := ValidateUser(u)
	if err != nil {
		return err
	}
	if err := sess.SetString(ctx, session.KeyUserName, u.Name); err != nil {
		return err
	}
	return sess.SetString(ctx, session.KeyIsConnected, session.ConnectedTrue)
}

// CurrentName returns the signed-in name, if any.
func (s *UserService) CurrentName(ctx context.Context, sess *session.Session) (string, bool) {
	if sess == nil {
		return "", false
	}
	name, ok, err := sess.GetString(ctx, session.KeyUserName)
	if err != nil || !ok || name == "" {
		return "", false
	}
	return name, true
}

// Logout forgets everything stored for sess.
func (s *UserService) Logout(ctx context.Context, sess *session.Session) error {
	return sess.Clear(ctx)
}
