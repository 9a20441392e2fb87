package tokens

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/golang-jwt/jwt"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type TokenData struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Client struct {
	SecretKey string
	TTL       time.Duration
	Clock     clock.Clock
}

// Generate signs an HS256 token carrying the user id and email, expiring
// TTL from now.
func (c *Client) Generate(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     c.Clock.Now().UTC().Add(c.TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.SecretKey))
	if err != nil {
		return "", fmt.Errorf("signing token: %s", err)
	}
	return signed, nil
}

// CheckToken verifies the signature and expiry and returns the claims.
// Expired tokens are reported distinctly so callers can tell the user.
func (c *Client) CheckToken(token string) (TokenData, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(c.SecretKey), nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return TokenData{}, ErrTokenExpired
		}
		return TokenData{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return TokenData{}, ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return TokenData{}, ErrTokenInvalid
	}

	return TokenData{UserID: userID, Email: email}, nil
}
