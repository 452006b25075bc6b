package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// JWTService validates HMAC signed account tokens with a secret shared with their issuer.
// The subject claim is the canonical account id.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		now:    time.Now,
	}
}

// Validate checks the signature and expiry of token and returns its claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if expVal, ok := claims["exp"].(float64); ok {
		if int64(expVal) < gen.now().Unix() {
			return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
		}
	}

	return claims, nil
}
