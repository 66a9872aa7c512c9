package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "harmonyminds"

// ErrInvalidToken covers every way a session cookie can fail to verify.
var ErrInvalidToken = errors.New("session: invalid token")

// Codec signs and verifies the session cookie. The token only names the
// session; all state lives server side.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec creates a codec using an HMAC secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// NewID returns a fresh random session ID.
func NewID() string {
	return uuid.NewString()
}

// Sign issues a token for the session ID.
func (c *Codec) Sign(id string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       id,
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(c.now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns the session ID it carries.
func (c *Codec) Parse(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", fmt.Errorf("%w: bad session id", ErrInvalidToken)
	}
	return claims.ID, nil
}
