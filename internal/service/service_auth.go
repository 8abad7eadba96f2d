// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/internal/config"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/internal/validators"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthFailureReason explains why a bearer token did not authenticate anyone.
type AuthFailureReason int

const (
	// AuthOK means the token identified an existing user.
	AuthOK AuthFailureReason = iota
	AuthExpired
	AuthMalformed
	AuthActorNotFound
	AuthUnknown
)

func (r AuthFailureReason) String() string {
	switch r {
	case AuthOK:
		return "ok"
	case AuthExpired:
		return "expired"
	case AuthMalformed:
		return "malformed"
	case AuthActorNotFound:
		return "actor_not_found"
	default:
		return "unknown"
	}
}

// AuthResult is the outcome of [AuthService.VerifyToken]. User is only
// meaningful when Authenticated returns true.
type AuthResult struct {
	User   models.User
	Reason AuthFailureReason
}

func (r AuthResult) Authenticated() bool {
	return r.Reason == AuthOK
}

func authFailure(reason AuthFailureReason) AuthResult {
	return AuthResult{Reason: reason}
}

const (
	minResetPasswordLength = 8
	maxResetPasswordLength = 128
)

// authService is the concrete implementation of AuthService.
// It handles registration, bcrypt credential checks, JWT issuing and the
// password reset token lifecycle.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	notifier       Notifier
	ids            IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration time.Duration

	// resetKey signs password reset tokens.
	resetKey     string
	resetTimeout time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
// notifier may be nil, in which case reset links are only logged.
func NewAuthService(userRepository store.UserRepository, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRegistrationValidator(userRepository),
		notifier:       notifier,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		resetKey:       cfg.PasswordResetKey,
		resetTimeout:   cfg.PasswordResetTimeout,
		now:            time.Now,
		logger:         logger,
	}
}

// Register validates the candidate, hashes the password and persists the
// user. Validation failures are returned as *validators.Error.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Info().Err(err).Str("username", req.Username).Msg("registration rejected")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:      a.ids.Generate(),
		Username:    req.Username,
		Email:       req.Email,
		Password:    hash,
		DateOfBirth: req.DateOfBirth.Time,
		DateJoined:  a.now().UTC(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return models.User{}, validators.NewFieldError(validators.FieldUsername, app.MsgUsernameExists)
	case errors.Is(err, store.ErrEmailTaken):
		return models.User{}, validators.NewFieldError(validators.FieldEmail, app.MsgEmailExists)
	case err != nil:
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID.String()).Msg("user registered")
	return created, nil
}

// Login checks username and password and records the login time.
//
// Returns a *validators.Error when either credential is empty and
// ErrInvalidCredentials when the user does not exist or the password does
// not match.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, validators.NewError(app.MsgCredentialsRequired)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("username", username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		log.Info().Str("user_id", user.UserID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	if err = a.userRepository.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		log.Warn().Err(err).Str("user_id", user.UserID.String()).Msg("failed to record last login")
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates signature, issuer and expiry of tokenString and
// loads the user it was issued to.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) AuthResult {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return authFailure(AuthMalformed)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		reason := classifyTokenError(err)
		log.Debug().Err(err).Stringer("reason", reason).Msg("token rejected")
		return authFailure(reason)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return authFailure(AuthActorNotFound)
	}
	if err != nil {
		log.Err(err).Str("user_id", token.UserID.String()).Msg("error loading token owner")
		return authFailure(AuthUnknown)
	}

	return AuthResult{User: user, Reason: AuthOK}
}

// classifyTokenError checks expiry first: jwt reports every claim failure
// wrapped in ErrTokenInvalidClaims.
func classifyTokenError(err error) AuthFailureReason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return AuthExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return AuthMalformed
	default:
		return AuthUnknown
	}
}

// GeneratePasswordResetToken returns the uid and token of a reset link for
// user. The token is "<base36 unix seconds>-<hex HMAC>", the HMAC covering
// the user id, the current password hash, the last login time and the
// timestamp. Changing the password or logging in invalidates the token.
func (a *authService) GeneratePasswordResetToken(user models.User) (string, string) {
	uid := base64.RawURLEncoding.EncodeToString([]byte(user.UserID.String()))
	return uid, a.resetToken(user, a.now().Unix())
}

func (a *authService) resetToken(user models.User, timestamp int64) string {
	ts := strconv.FormatInt(timestamp, 36)
	return ts + "-" + utils.HashString(resetTokenValue(user, ts), a.resetKey)
}

func resetTokenValue(user models.User, ts string) string {
	lastLogin := ""
	if user.LastLogin != nil {
		lastLogin = user.LastLogin.UTC().Truncate(time.Microsecond).Format(time.RFC3339Nano)
	}
	return user.UserID.String() + user.Password + lastLogin + ts
}

// CheckPasswordResetToken resolves uid to a user and checks token against
// the user's current state.
//
// Returns ErrActorNotFound when uid is malformed or unknown and
// ErrInvalidToken when the token is malformed, forged, stale or expired.
func (a *authService) CheckPasswordResetToken(ctx context.Context, uid, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := decodeUID(uid)
	if err != nil {
		log.Info().Err(err).Msg("malformed reset uid")
		return models.User{}, ErrActorNotFound
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrActorNotFound
	}
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("error loading reset link owner")
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	if !a.validResetToken(user, token) {
		log.Info().Str("user_id", userID.String()).Msg("invalid reset token")
		return models.User{}, ErrInvalidToken
	}

	return user, nil
}

func (a *authService) validResetToken(user models.User, token string) bool {
	ts, _, found := strings.Cut(token, "-")
	if !found || ts == "" {
		return false
	}

	timestamp, err := strconv.ParseInt(ts, 36, 64)
	if err != nil {
		return false
	}

	if !utils.EqualHashes(a.resetToken(user, timestamp), token) {
		return false
	}

	age := a.now().Sub(time.Unix(timestamp, 0))
	return age >= 0 && age <= a.resetTimeout
}

func decodeUID(uid string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uid is not base64: %w", err)
	}

	id, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("uid is not a user id: %w", err)
	}

	return id, nil
}

// RequestPasswordReset builds a reset link for the user owning email and
// hands it to the notifier. A failing notifier is logged and does not fail
// the request.
func (a *authService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return validators.NewError(app.MsgEmailRequired)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrActorNotFound
	}
	if err != nil {
		log.Err(err).Msg("error finding user by email")
		return fmt.Errorf("error finding user by email: %w", err)
	}

	uid, token := a.GeneratePasswordResetToken(user)
	notification := models.PasswordResetNotification{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Link:     fmt.Sprintf("%s/reset-password/%s/%s/", strings.TrimRight(baseURL, "/"), uid, token),
	}

	if a.notifier == nil {
		log.Info().Str("user_id", user.UserID.String()).Msg("no notifier configured, reset link not delivered")
		return nil
	}

	if err = a.notifier.Enqueue(ctx, notification); err != nil {
		log.Err(err).Str("user_id", user.UserID.String()).Msg("failed to enqueue reset link")
	}

	return nil
}

// ConsumePasswordReset sets a new password through a reset link. The hash
// is swapped only if it is still the one the token was checked against, so
// a second use of the same link fails with ErrInvalidToken.
func (a *authService) ConsumePasswordReset(ctx context.Context, uid, token, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := a.CheckPasswordResetToken(ctx, uid, token)
	if err != nil {
		return err
	}

	if newPassword == "" {
		return ErrMissingPassword
	}
	if n := utf8.RuneCountInString(newPassword); n < minResetPasswordLength || n > maxResetPasswordLength {
		return validators.NewFieldError("new_password", app.MsgPasswordLength)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = a.userRepository.UpdatePassword(ctx, user.UserID, user.Password, hash)
	switch {
	case errors.Is(err, store.ErrPasswordChanged), errors.Is(err, store.ErrNotFound):
		return ErrInvalidToken
	case err != nil:
		log.Err(err).Str("user_id", user.UserID.String()).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("user_id", user.UserID.String()).Msg("password has been reset")
	return nil
}
