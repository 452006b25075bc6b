package jwt

import "time"

func NewJWTServiceAt(jwtSecret []byte, now func() time.Time) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		now:    now,
	}
}
