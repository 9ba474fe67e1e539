package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// typ claim value; refresh tokens are opaque strings and never parse as JWTs,
// the claim guards against any future token kind being accepted here.
const tokenTypeAccess = "access"

type JWTService struct {
	key    jwk.Key
	issuer string
	expiry time.Duration
}

type TokenClaims struct {
	UserID uuid.UUID
}

func NewJWTService(signingKey []byte, issuer string, expiry time.Duration) (*JWTService, error) {
	key, err := jwk.FromRaw(signingKey)
	if err != nil {
		return nil, fmt.Errorf("building JWK from signing key: %w", err)
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.HS256); err != nil {
		return nil, fmt.Errorf("setting JWK algorithm: %w", err)
	}

	return &JWTService{
		key:    key,
		issuer: issuer,
		expiry: expiry,
	}, nil
}

// GenerateToken issues a signed access token with the user ID as subject.
func (s *JWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Issuer(s.issuer).
		Subject(userID.String()).
		IssuedAt(now).
		Expiration(now.Add(s.expiry)).
		Claim("typ", tokenTypeAccess).
		Build()
	if err != nil {
		return "", fmt.Errorf("building token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, s.key))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return string(signed), nil
}

// ValidateToken checks the signature, issuer, expiry and token type, and
// returns the claims.
func (s *JWTService) ValidateToken(ctx context.Context, raw string) (*TokenClaims, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, s.key),
		jwt.WithIssuer(s.issuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if typ, _ := token.Get("typ"); typ != tokenTypeAccess {
		return nil, fmt.Errorf("unexpected token type %v", typ)
	}

	userID, err := uuid.Parse(token.Subject())
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return &TokenClaims{UserID: userID}, nil
}
