package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrTokenExpired is returned when signing in with a token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// FileProvider persists a bearer token on disk and derives identity from its
// JWT claims. The token is parsed unverified: signature verification belongs
// to the server, the client only reads identity and expiry.
type FileProvider struct {
	path string

	mu        sync.Mutex
	status    Status
	user      *User
	token     string
	listeners []func(Status)
}

// NewFileProvider creates a provider reading/writing the token at path. The
// initial status is resolved immediately from the stored token: a readable,
// unexpired token means authenticated, anything else means guest.
func NewFileProvider(path string) *FileProvider {
	p := &FileProvider{path: path, status: StatusLoading}
	p.restore()
	return p
}

func (p *FileProvider) restore() {
	p.mu.Lock()
	defer p.mu.Unlock()

	raw, err := os.ReadFile(p.path)
	if err != nil {
		p.status = StatusGuest
		return
	}
	token := strings.TrimSpace(string(raw))
	user, err := claimsOf(token)
	if err != nil {
		p.status = StatusGuest
		return
	}
	p.token = token
	p.user = user
	p.status = StatusAuthenticated
}

func (p *FileProvider) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *FileProvider) User() *User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

func (p *FileProvider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// SignIn validates and stores the token, then notifies listeners.
func (p *FileProvider) SignIn(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	user, err := claimsOf(token)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}

	p.mu.Lock()
	p.token = token
	p.user = user
	p.status = StatusAuthenticated
	p.mu.Unlock()

	p.notify()
	return nil
}

// SignOut removes the stored token and reverts to guest.
func (p *FileProvider) SignOut() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}

	p.mu.Lock()
	p.token = ""
	p.user = nil
	p.status = StatusGuest
	p.mu.Unlock()

	p.notify()
	return nil
}

func (p *FileProvider) OnChange(fn func(Status)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *FileProvider) notify() {
	p.mu.Lock()
	status := p.status
	listeners := make([]func(Status), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(status)
	}
}

func claimsOf(token string) (*User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if !claims.VerifyExpiresAt(time.Now().Unix(), false) {
		return nil, ErrTokenExpired
	}

	user := &User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if user.ID == "" {
		return nil, errors.New("token carries no subject claim")
	}
	return user, nil
}
