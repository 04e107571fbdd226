package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventadmin/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// JWTSessionCodec signs and verifies session cookie tokens with HS256.
// The registered jti claim carries the server-side session ID so that
// deleting the session row revokes the token before it expires.
type JWTSessionCodec struct {
	secret []byte
}

// NewJWTSessionCodec returns a codec using the given signing secret.
func NewJWTSessionCodec(secret string) *JWTSessionCodec {
	return &JWTSessionCodec{secret: []byte(secret)}
}

// Issue implements domain.SessionTokenIssuer.
func (c *JWTSessionCodec) Issue(sessionID string, principal domain.Principal, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   principal.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Username: principal.Username,
		Admin:    principal.Admin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify implements domain.SessionTokenVerifier.
func (c *JWTSessionCodec) Verify(tokenString string) (string, domain.Principal, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", domain.Principal{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.ID == "" {
		return "", domain.Principal{}, fmt.Errorf("invalid token")
	}
	principal := domain.Principal{
		UserID:   claims.Subject,
		Username: claims.Username,
		Admin:    claims.Admin,
	}
	return claims.ID, principal, nil
}
