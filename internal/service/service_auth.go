// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using the users repository for persistence and bcrypt for
// password hashing.
type authService struct {
	// users is the data-access layer used to create and look up users.
	users store.Repository[models.User]

	// denylist keeps revoked token ids until they expire.
	denylist store.TokenDenylist

	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	// hashCost is the bcrypt work factor.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the users repository
// and the token denylist, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.Repository[models.User], denylist store.TokenDenylist, v validators.Validator, ids IDGenerator, cfg config.Auth, logger *logger.Logger) AuthService {
	if denylist == nil {
		denylist = store.NewNopDenylist()
	}

	return &authService{
		users:         users,
		denylist:      denylist,
		validator:     v,
		ids:           ids,
		now:           time.Now,
		hashCost:      bcrypt.DefaultCost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new teacher account.
//
// The email is lowercased, the password is bcrypt-hashed and never stored in
// clear. Returns [ErrEmailTaken] when the email is already registered.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	creds = normalizeCredentials(creds)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("validate registration: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("hash password: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		ID:           a.ids.Generate(),
		Name:         creds.Name,
		Email:        creds.Email,
		PasswordHash: string(hash),
		Role:         models.RoleTeacher,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = a.users.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Info().Str("email", user.Email).Msg("registration with taken email")
			return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown emails and wrong passwords both yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	creds = normalizeCredentials(creds)
	if err := a.validator.Validate(ctx, creds, "Email", "Password"); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("validate login: %w", err)
	}

	user, err := a.users.FindOne(ctx, models.FieldEmail, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info().Str("email", creds.Email).Msg("login for unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Logout revokes the token's jti for the rest of its lifetime.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	ttl := token.TTL(a.now())
	if token.ID == "" || ttl <= 0 {
		return nil
	}

	if err := a.denylist.Revoke(ctx, token.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", token.UserID).Msg("token revocation failed")
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Me returns the account of userID. User documents carry no owner field, so
// the lookup matches on the id alone.
func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrNoOwner
	}

	user, err := a.users.FindOne(ctx, models.FieldID, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid]; revoked tokens yield [ErrTokenRevoked].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.ID != "" {
		revoked, err := a.denylist.IsRevoked(ctx, token.ID)
		if err != nil {
			return models.Token{}, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return models.Token{}, ErrTokenRevoked
		}
	}

	return token, nil
}

// createToken issues a signed JWT for the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func normalizeCredentials(creds models.Credentials) models.Credentials {
	creds.Name = strings.TrimSpace(creds.Name)
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	return creds
}
