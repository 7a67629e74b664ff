// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/sec"
	"github.com/taibuivan/legaldesign/pkg/uuid"
)

// # Contracts & Types

// TokenProvider issues and verifies access tokens. [*sec.TokenService]
// implements it.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Service implements admin authentication use cases.
type Service struct {
	users       UserRepository
	revocations RevocationRepository
	tokens      TokenProvider
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users UserRepository, revocations RevocationRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:       users,
		revocations: revocations,
		tokens:      tokens,
		logger:      logger,
		now:         docstore.Now,
	}
}

// # Authentication Flow

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession is the result of a successful login.
type LoginSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

/*
Login validates admin credentials and issues an access token.

Description: Unknown users, wrong passwords and inactive accounts all fail
with the same message. A successful login records last_login.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: The token and the admin identity
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.users.FindByUsername(context, input.Username)
	if dberr.IsNotFound(err) {
		return nil, apperr.Unauthorized(MessageBadCredentials)
	}
	if err != nil {
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) || !user.IsActive {
		service.logger.Warn("admin_login_rejected", slog.String("username", input.Username))
		return nil, apperr.Unauthorized(MessageBadCredentials)
	}

	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	if err := service.users.TouchLastLogin(context, user.ID, service.now()); err != nil {
		return nil, err
	}

	service.logger.Info("admin_logged_in", slog.String("user_id", user.ID))

	return &LoginSession{
		AccessToken: accessToken,
		TokenType:   constants.TokenType,
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}

/*
Authenticate resolves a bearer token to the claims of an active admin.
It implements the admin gate of the middleware package.

Description: The token must verify, must not be revoked and must name an
account that still exists and is active.

Returns:
  - *sec.AuthClaims: Verified claims
  - error: Unauthorized, or Internal when the revocation list is unreachable
*/
func (service *Service) Authenticate(context context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	if claims.ID != "" {
		revoked, err := service.revocations.IsRevoked(context, claims.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if revoked {
			return nil, apperr.Unauthorized("Token has been revoked")
		}
	}

	user, err := service.users.FindByID(context, claims.UserID)
	if dberr.IsNotFound(err) {
		return nil, apperr.Unauthorized("Could not validate credentials")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("Inactive user")
	}

	return claims, nil
}

/*
Logout revokes the presented token for the rest of its lifetime.

Description: Tokens that are already expired, or carry no id, need no entry.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (of the presented token)

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	remaining := claims.ExpiresAt.Time.Sub(service.now())
	if remaining <= 0 {
		return nil
	}

	if err := service.revocations.Revoke(context, claims.ID, remaining); err != nil {
		return apperr.Internal(fmt.Errorf("auth_service_logout_failed: %w", err))
	}

	service.logger.Info("admin_logged_out", slog.String("user_id", claims.UserID))
	return nil
}

// Me returns the profile of the authenticated admin.
func (service *Service) Me(context context.Context, userID string) (*Profile, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// # Account Bootstrap

/*
EnsureDefaultAdmin creates the "admin" account when it does not exist.

Parameters:
  - context: context.Context
  - password: string (initial password)

Returns:
  - error: Hashing or persistence failures
*/
func (service *Service) EnsureDefaultAdmin(context context.Context, password string) error {
	_, err := service.users.FindByUsername(context, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !dberr.IsNotFound(err) {
		return err
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("auth_default_admin_failed: empty password")
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("auth_default_admin_hash_failed: %w", err)
	}

	now := service.now()
	user := &AdminUser{
		ID:           uuid.New(),
		Username:     DefaultAdminUsername,
		PasswordHash: hashedPassword,
		Email:        DefaultAdminEmail,
		FullName:     DefaultAdminFullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.users.Create(context, user); err != nil {
		return fmt.Errorf("auth_default_admin_failed: %w", err)
	}

	service.logger.Info("default_admin_created", slog.String("username", user.Username))
	return nil
}
