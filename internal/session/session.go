// Package session holds the signed-in user for the running process.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
)

var (
	// ErrEmptyName is returned when Login receives a blank name.
	ErrEmptyName = errors.New("user name is required")
	// ErrUserNotAllowed is returned when the name is not in the allow-list.
	ErrUserNotAllowed = errors.New("user is not allowed")
)

// UserProfile describes the signed-in user.
type UserProfile struct {
	Name     string
	Nickname string
	Email    string
}

// DisplayName prefers the nickname.
func (u UserProfile) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Name
}

// Session answers whether a user is signed in.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() (UserProfile, bool)
}

// Authenticator is a Session that can change state.
type Authenticator interface {
	Session
	Login(name string) error
	Logout()
}

// Local is an in-process Authenticator backed by a configured allow-list.
// An empty allow-list accepts any non-blank name.
type Local struct {
	mu      sync.RWMutex
	allowed map[string]UserProfile
	current *UserProfile
}

// NewLocal builds a Local session from configured users.
func NewLocal(users []config.UserEntry) *Local {
	l := &Local{allowed: make(map[string]UserProfile, len(users))}
	for _, u := range users {
		name := strings.TrimSpace(u.Name)
		if name == "" {
			continue
		}
		l.allowed[strings.ToLower(name)] = UserProfile{Name: name, Nickname: u.Nickname, Email: u.Email}
	}
	return l
}

// FromConfig builds a Local session and signs in auth.User when set.
func FromConfig(auth config.AuthConfig) (*Local, error) {
	l := NewLocal(auth.Users)
	if strings.TrimSpace(auth.User) == "" {
		return l, nil
	}
	if err := l.Login(auth.User); err != nil {
		return nil, err
	}
	return l, nil
}

// Login signs name in, replacing any current user.
func (l *Local) Login(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	profile := UserProfile{Name: name}
	if len(l.allowed) > 0 {
		p, ok := l.allowed[strings.ToLower(name)]
		if !ok {
			return ErrUserNotAllowed
		}
		profile = p
	}
	l.current = &profile
	return nil
}

// Logout clears the current user.
func (l *Local) Logout() {
	l.mu.Lock()
	l.current = nil
	l.mu.Unlock()
}

// IsAuthenticated implements Session.
func (l *Local) IsAuthenticated() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current != nil
}

// CurrentUser implements Session.
func (l *Local) CurrentUser() (UserProfile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.current == nil {
		return UserProfile{}, false
	}
	return *l.current, true
}
