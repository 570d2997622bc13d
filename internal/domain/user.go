package domain

// User is who signed in through the inscription form.
// Only the name outlives the request; it is kept in the session.
type User struct {
	Name     string
	Email    string
	Password string
}
