package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL matches the validity window handed out on profile sync.
const tokenTTL = 24 * time.Hour

var signingSecret []byte

// InitJWT stores the process-wide signing secret. Rotating the secret
// invalidates every outstanding token.
func InitJWT(secret string) {
	signingSecret = []byte(secret)
}

// Claims holds the typed JWT payload binding an email identity.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed token for the given email, valid for 24 hours.
func GenerateJWT(email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingSecret)
}

// ParseJWT validates a token string and returns its claims. Expired tokens
// are reported distinctly from signature failures.
func ParseJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// IsExpired reports whether a parse failure was caused by the token
// outliving its validity window rather than a bad signature.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
