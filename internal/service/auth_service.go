package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/registry"
	"github.com/REslim30/palette-pal-backend/internal/token"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

const bcryptCost = 12

// UserStore is the identity persistence contract. Create reports duplicate
// email/username via the model sentinel errors.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (model.User, error)
}

// AuthResult is what a successful register/login/refresh hands back to the
// HTTP layer. RefreshToken is empty on refresh: the cookie is not rotated.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         model.PublicUser
}

type AuthService struct {
	users    UserStore
	registry registry.Registry
	tokens   *token.Issuer
}

func NewAuthService(users UserStore, reg registry.Registry, tokens *token.Issuer) *AuthService {
	return &AuthService{users: users, registry: reg, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (AuthResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = apierror.CauseRequired
	} else if !model.ValidEmail(req.Email) {
		fields["email"] = apierror.CauseRegexp
	}
	if req.Username == "" {
		fields["username"] = apierror.CauseRequired
	}
	if req.Password == "" {
		fields["password"] = apierror.CauseRequired
	}
	if len(fields) > 0 {
		return AuthResult{}, apierror.Validation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return AuthResult{}, apierror.Validation(map[string]string{"email": apierror.CauseUnique})
		}
		if errors.Is(err, model.ErrDuplicateUsername) {
			return AuthResult{}, apierror.Validation(map[string]string{"username": apierror.CauseUnique})
		}
		return AuthResult{}, err
	}

	return s.startSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, identifier string, password string) (AuthResult, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if errors.Is(err, model.ErrUserNotFound) {
		return AuthResult{}, invalidCredentials()
	}
	if err != nil {
		return AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, invalidCredentials()
	}

	return s.startSession(ctx, user)
}

// Refresh mints a new access token for a refresh token whose signature checks
// out and whose subject still has a live registry entry. It performs no writes.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	subject, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return AuthResult{}, unauthenticated()
	}

	live, err := s.registry.Verify(ctx, subject)
	if err != nil {
		return AuthResult{}, fmt.Errorf("verify refresh registration: %w", err)
	}
	if !live {
		return AuthResult{}, unauthenticated()
	}

	user, err := s.users.FindByID(ctx, subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return AuthResult{}, unauthenticated()
	}
	if err != nil {
		return AuthResult{}, err
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{AccessToken: access, User: user.Public()}, nil
}

// Logout revokes the subject's registry entry. Best effort: an unusable cookie
// still results in a logged-out client.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	subject, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return
	}
	if err := s.registry.Remove(ctx, subject); err != nil {
		slog.Warn("failed to remove refresh registration", "error", err)
	}
}

// VerifyAccess validates an access token and returns its subject id.
func (s *AuthService) VerifyAccess(tokenString string) (string, error) {
	subject, err := s.tokens.VerifyAccess(tokenString)
	if err != nil {
		return "", unauthenticated()
	}
	return subject, nil
}

func (s *AuthService) UserByID(ctx context.Context, id string) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.PublicUser{}, unauthenticated()
	}
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *AuthService) startSession(ctx context.Context, user model.User) (AuthResult, error) {
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.registry.Register(ctx, user.ID); err != nil {
		return AuthResult{}, fmt.Errorf("register refresh token: %w", err)
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{AccessToken: access, RefreshToken: refresh, User: user.Public()}, nil
}

func invalidCredentials() *apierror.APIError {
	// Same message for unknown identifier and wrong password.
	return apierror.New(apierror.TypeInvalidCredentials, "invalid identifier or password", http.StatusBadRequest)
}

func unauthenticated() *apierror.APIError {
	return apierror.New(apierror.TypeUnauthenticated, "authentication required", http.StatusUnauthorized)
}
