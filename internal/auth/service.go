package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrRefreshInvalid     = errors.New("invalid or expired refresh token")
)

// AuthService handles password login and rotating refresh tokens.
type AuthService struct {
	store         *redisStore
	jwt           *JWTService
	db            *db.Queries
	refreshExpiry time.Duration
}

func NewAuthService(redisClient *redis.Client, jwtSvc *JWTService, queries *db.Queries, cfg config.JWTConfig) *AuthService {
	return &AuthService{
		store:         newRedisStore(redisClient),
		jwt:           jwtSvc,
		db:            queries,
		refreshExpiry: cfg.RefreshExpiry,
	}
}

// Store exposes the redis-backed store for sharing with the authenticator.
func (s *AuthService) Store() *redisStore {
	return s.store
}

// Login checks the password and returns a new access + refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		// Burn a comparison so a missing account costs the same as a wrong
		// password.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	if !user.Active {
		return "", "", ErrAccountDisabled
	}

	logging.Info("user logged in", "user_id", user.ID)
	return s.issueTokenPair(ctx, user.ID)
}

// Refresh rotates the refresh token and returns a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (newAccess, newRefresh string, err error) {
	hash := hashString(refreshToken)

	userIDStr, err := s.store.getRefreshToken(ctx, hash)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", ErrRefreshInvalid
		}
		return "", "", fmt.Errorf("retrieving refresh token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", fmt.Errorf("invalid user ID in refresh token: %w", err)
	}

	if err := s.store.deleteRefreshToken(ctx, hash); err != nil {
		return "", "", fmt.Errorf("deleting refresh token: %w", err)
	}

	newAccess, newRefresh, err = s.issueTokenPair(ctx, userID)
	if err != nil {
		return "", "", err
	}

	logging.Info("refresh token rotated", "user_id", userID)
	return newAccess, newRefresh, nil
}

// Logout revokes the refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	hash := hashString(refreshToken)

	userIDStr, err := s.store.getRefreshToken(ctx, hash)
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("looking up refresh token: %w", err)
	}

	if err := s.store.deleteRefreshToken(ctx, hash); err != nil {
		return fmt.Errorf("deleting refresh token: %w", err)
	}

	if userIDStr != "" {
		logging.Info("user logged out", "user_id", userIDStr)
	}
	return nil
}

// InvalidatePermissions drops the cached permission set after role changes.
func (s *AuthService) InvalidatePermissions(ctx context.Context, userID uuid.UUID) error {
	return s.store.invalidatePermissions(ctx, userID)
}

// generates a JWT access token and a random refresh token
func (s *AuthService) issueTokenPair(ctx context.Context, userID uuid.UUID) (accessToken, refreshToken string, err error) {
	accessToken, err = s.jwt.GenerateToken(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("generating access token: %w", err)
	}

	rawRefresh, err := generateRefreshToken()
	if err != nil {
		return "", "", fmt.Errorf("generating refresh token: %w", err)
	}

	hash := hashString(rawRefresh)
	if err := s.store.storeRefreshToken(ctx, hash, userID.String(), s.refreshExpiry); err != nil {
		return "", "", fmt.Errorf("storing refresh token: %w", err)
	}

	return accessToken, rawRefresh, nil
}

// returns 32 random bytes as a hex string (64 chars).
func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
