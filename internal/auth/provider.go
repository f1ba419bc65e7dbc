package auth

import "context"

// Status is the authentication state driving backend selection.
type Status string

const (
	StatusLoading       Status = "loading"
	StatusGuest         Status = "guest"
	StatusAuthenticated Status = "authenticated"
	StatusError         Status = "error"
)

// User identifies the signed-in account.
type User struct {
	ID    string
	Email string
	Name  string
}

// Provider exposes the current authentication state and sign-in/out
// operations. Token verification is the server's job; the client only needs
// identity claims and a bearer token to attach to requests.
type Provider interface {
	Status() Status
	// User returns the signed-in user, or nil unless Status is
	// StatusAuthenticated.
	User() *User
	// Token returns the bearer token for remote calls, or "" as a guest.
	Token() string
	SignIn(ctx context.Context, token string) error
	SignOut() error
	// OnChange registers a callback fired after every status transition.
	OnChange(fn func(Status))
}
