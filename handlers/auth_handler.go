package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type loginReq struct {
	NationalID string `json:"national_id" validate:"required,min=4,max=20"`
	Pin        string `json:"pin"`
}

// POST /auth/login — the "unified code" flow: the national id is looked up in
// staff. Records that carry a PIN hash additionally require the PIN; the rest
// keep the original match-means-authenticated behavior.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	nid := strings.TrimSpace(req.NationalID)
	var st models.Staff
	if err := database.DB.Where("national_id = ?", nid).First(&st).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if st.PinHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(st.PinHash), []byte(strings.TrimSpace(req.Pin))) != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
		}
	}

	token, err := h.signJWT(st.ID, st.Role, st.FullName, 12*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":          st.ID,
			"national_id": st.NationalID,
			"name":        st.FullName,
			"role":        st.Role,
		},
	})
}

// GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	id, _ := c.Get("staff_id").(string)
	var st models.Staff
	if err := database.DB.First(&st, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNKNOWN_STAFF"})
	}
	return c.JSON(http.StatusOK, st)
}
