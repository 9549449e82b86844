package auth

import (
	"errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
)

// Claims is the model for the claims in the JWT auth token
type Claims struct {
	jwt.StandardClaims
	Role role.UserRole `json:"role"`
}

// NewJWT creates a new auth token for the specified user, issued at the
// given timestamp and valid for validityDuration seconds
func NewJWT(user entities.User, timestamp, validityDuration int64, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT token secret undefined")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        user.ID.Hex(),
			IssuedAt:  timestamp,
			ExpiresAt: timestamp + validityDuration,
		},
		Role: user.Role,
	})

	return token.SignedString(secret)
}

// GetJWTClaims validates the given token against the secret and returns its
// claims. Returns nil if the token is invalid or expired.
func GetJWTClaims(token string, secret []byte) *Claims {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	if _, ok := parsed.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil
	}
	return &claims
}
