package middleware

import (
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

const SessionCookie = "session"

// Session parses the signed session cookie and puts uid/role into the echo
// context. Requests without a valid cookie pass through anonymous; handlers
// that need an actor check for an empty uid themselves.
func Session(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, role := "", ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				tok, err := jwt.Parse(ck.Value, func(t *jwt.Token) (any, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return key, nil
				})
				if err == nil && tok.Valid {
					if claims, ok := tok.Claims.(jwt.MapClaims); ok {
						uid, _ = claims["userId"].(string)
						role, _ = claims["role"].(string)
					}
				}
			}
			c.Set("uid", uid)
			c.Set("role", role)
			return next(c)
		}
	}
}
