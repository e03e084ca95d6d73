package controllerImp

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"bitacora/pkg/middleware"
)

type AuthCtrl struct{ secret string }

func New(secret string) *AuthCtrl { return &AuthCtrl{secret: secret} }

type loginReq struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Login issues the session cookie. Credential verification lives in the
// identity provider outside this service; whatever identity is posted is
// attributed on execution logs.
func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.UserID == "" { return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"}) }
	if req.Role == "" { req.Role = "technician" }

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": req.UserID,
		"role":   req.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(h.secret))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	c.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: signed, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]string{"uid": req.UserID, "role": req.Role})
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid, "role": role})
}

func (h *AuthCtrl) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
