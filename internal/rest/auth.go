package rest

import (
	"context"
	"net/http"
	"sync"

	"autorent/internal/booking"
	"autorent/internal/entities"
)

// AuthSession tracks who is signed in for this client session. Login and
// Register install the issued token on the shared Client so subsequent
// collaborator calls are authenticated. Implements booking.AuthState.
type AuthSession struct {
	client *Client
	users  *UserClient
	nav    booking.Navigator

	mu     sync.RWMutex
	userID int
}

func NewAuthSession(client *Client, users *UserClient, nav booking.Navigator) *AuthSession {
	return &AuthSession{client: client, users: users, nav: nav}
}

// Login exchanges credentials for a token and caches the signed-in user.
func (s *AuthSession) Login(ctx context.Context, email, password string) (entities.User, error) {
	return s.authenticate(ctx, "/api/auth/login", entities.LoginRequest{Email: email, Password: password})
}

// Register creates an account, signs it in and caches it.
func (s *AuthSession) Register(ctx context.Context, email, username, password string) (entities.User, error) {
	return s.authenticate(ctx, "/api/auth/register", entities.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
}

func (s *AuthSession) authenticate(ctx context.Context, path string, payload interface{}) (entities.User, error) {
	var resp entities.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, path, nil, payload, &resp); err != nil {
		return entities.User{}, err
	}

	s.client.SetToken(resp.Token)
	s.users.UpsertCached(resp.User)

	s.mu.Lock()
	s.userID = resp.User.ID
	s.mu.Unlock()
	return resp.User, nil
}

// Logout drops the session and signals a redirect to the login page.
func (s *AuthSession) Logout() {
	s.mu.Lock()
	id := s.userID
	s.userID = 0
	s.mu.Unlock()

	s.client.SetToken("")
	if id != 0 {
		s.users.DropCached(id)
	}
	if s.nav != nil {
		s.nav.GoTo(booking.PathLogin, booking.NavigateOptions{})
	}
}

func (s *AuthSession) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// CurrentUser resolves the signed-in user through the directory cache.
func (s *AuthSession) CurrentUser() (entities.User, bool) {
	s.mu.RLock()
	id := s.userID
	s.mu.RUnlock()
	if id == 0 {
		return entities.User{}, false
	}
	return s.users.GetByID(id)
}
