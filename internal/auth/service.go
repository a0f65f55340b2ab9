// Package auth is the session/auth gate: it owns registration, login and
// the "who is this request" question every protected route asks first.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/store"
)

type Service interface {
	// Register creates the account and logs it in, returning the user and
	// a fresh session token.
	Register(ctx context.Context, username, password string) (*store.User, string, error)

	// Login returns common.ErrUnauthenticated on any failure, without
	// distinguishing unknown user from wrong password.
	Login(ctx context.Context, username, password string) (*store.User, string, error)

	// CurrentUser resolves the authenticated user injected into the
	// request context by the middleware.
	CurrentUser(ctx context.Context) (*store.User, error)

	// Logout revokes the token immediately. Safe to call with garbage.
	Logout(token string)

	common.SessionValidator
}

type authService struct {
	storage store.Storage
	tokens  *common.TokenManager

	// revoked session tokens, kept until their own expiry passes.
	// process-local like the rest of the session state.
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewService(storage store.Storage, tokens *common.TokenManager) Service {
	return &authService{
		storage: storage,
		tokens:  tokens,
		revoked: make(map[string]time.Time),
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*store.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &store.User{
		Username:     username,
		PasswordHash: hashed,
	}

	// the store enforces username uniqueness atomically with the insert
	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*store.User, string, error) {
	if username == "" || password == "" {
		return nil, "", common.ErrUnauthenticated
	}

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// same answer as a bad password, no user enumeration
			return nil, "", common.ErrUnauthenticated
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.ErrUnauthenticated
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context) (*store.User, error) {
	userID, ok := common.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// ValidateSession is what the HTTP middleware calls. A token is good only
// if it verifies AND has not been revoked by logout.
func (s *authService) ValidateSession(token string) (*common.Claims, error) {
	claims, err := s.tokens.ValidToken(token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, isRevoked := s.revoked[token]
	s.mu.Unlock()
	if isRevoked {
		return nil, common.ErrUnauthenticated
	}

	return claims, nil
}

func (s *authService) Logout(token string) {
	claims, err := s.tokens.ValidToken(token)
	if err != nil {
		// invalid tokens are already unusable, nothing to revoke
		return
	}

	expiry := time.Now().Add(s.tokens.TTL())
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	s.revoked[token] = expiry

	// drop entries whose tokens have expired on their own
	now := time.Now()
	for t, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, t)
		}
	}
	s.mu.Unlock()
}
