package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"go.uber.org/zap"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Session is an audit record of a login event. Sessions are never consulted
// for access control; they only record who logged in and when.
type Session struct {
	UserID    uint64
	LoginTime time.Time
}

// AuthService handles registration, the current-session slot, and
// role-based permission checks.
type AuthService struct {
	data *store.DataManager

	mu          sync.Mutex
	currentUser *models.User
	sessions    map[string]Session
}

// NewAuthService creates a new AuthService.
func NewAuthService(data *store.DataManager) *AuthService {
	return &AuthService{
		data:     data,
		sessions: make(map[string]Session),
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a user after checking that no live user shares the
// username or email. The password is accepted and discarded: credentials
// are not stored or verified anywhere in this system.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	for _, user := range s.data.GetAllUsers() {
		if user.Username == input.Username {
			return nil, ErrUsernameTaken
		}
		if user.Email == input.Email {
			return nil, ErrEmailTaken
		}
	}

	user := s.data.CreateUser(input.Username, input.Email, models.RoleUser)
	zap.L().Info("user registered",
		zap.Uint64("user_id", user.ID),
		zap.String("username", user.Username))
	return user, nil
}

// Login matches the username against all registered users. The password is
// never compared: any password is accepted for a known username. On match
// the user's last login is stamped, the current-session slot is set, and an
// audit session keyed by a fresh opaque ID is recorded.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	for _, user := range s.data.GetAllUsers() {
		if user.Username != username {
			continue
		}

		user.Login()

		s.mu.Lock()
		s.currentUser = user
		s.sessions[uuid.NewString()] = Session{
			UserID:    user.ID,
			LoginTime: time.Now(),
		}
		s.mu.Unlock()

		zap.L().Info("user logged in",
			zap.Uint64("user_id", user.ID),
			zap.String("username", user.Username))
		return user, nil
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the current-session slot. Audit session records are kept.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// IsAuthenticated reports whether a user currently holds the session slot.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser != nil
}

// CurrentUser returns the user holding the session slot, or nil.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// HasPermission reports whether the current user's role outranks or equals
// the required role. Always false when not authenticated.
func (s *AuthService) HasPermission(required models.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return false
	}
	return s.currentUser.Role.Rank() >= required.Rank()
}

// SessionCount returns the number of recorded login sessions.
func (s *AuthService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
