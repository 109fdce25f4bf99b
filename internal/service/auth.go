package service

import "sync"

// AuthService handles the simulated sign-in: a shared password and an
// in-memory session set. Nothing is persisted; restarting the bot signs
// everyone out.
type AuthService struct {
	password string

	mu       sync.RWMutex
	sessions map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(password string) *AuthService {
	return &AuthService{
		password: password,
		sessions: make(map[int64]bool),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.password
}

// SignIn opens a session for the user
func (s *AuthService) SignIn(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = true
}

// IsSignedIn checks if the user has an open session
func (s *AuthService) IsSignedIn(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// SignOut closes the user's session
func (s *AuthService) SignOut(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
