package websession

import (
	"crypto/sha256"
	"errors"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	issuer     = "mindengage-quiz"
	signingKey = "quiz-session-cookie-v1"
)

var ErrBadToken = errors.New("invalid session token")

// Signer issues and verifies the HS256 token carried in the session cookie.
type Signer struct{ hmac []byte }

// NewSigner derives the signing key from the process-wide secret.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("session secret required")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKey)), key); err != nil {
		return nil, err
	}
	return &Signer{hmac: key}, nil
}

type Claims struct {
	jwt.RegisteredClaims
}

func (s *Signer) Issue(sessionID string, ttl time.Duration, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

// Parse returns the session ID of a valid, unexpired token.
func (s *Signer) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrBadToken
	}
	c, ok := token.Claims.(*Claims)
	if !ok || c.Subject == "" {
		return "", ErrBadToken
	}
	return c.Subject, nil
}
