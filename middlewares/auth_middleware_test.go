package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "staff-1",
		"role": role,
		"name": "T",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, "TEACHER", -time.Hour), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, "TEACHER", time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.header, RequireAuth(secret))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"sub": "x", "role": "TEACHER", "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	rec := do(t, "Bearer "+tok, RequireAuth(secret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		code    int
	}{
		{"role allowed", "PRINCIPAL", []string{"PRINCIPAL"}, http.StatusOK},
		{"one of several", "TEACHER", []string{"TEACHER", "PRINCIPAL"}, http.StatusOK},
		{"case insensitive", "principal", []string{"PRINCIPAL"}, http.StatusOK},
		{"role denied", "COUNSELOR", []string{"PRINCIPAL"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, "Bearer "+signToken(t, tt.role, time.Hour),
				RequireAuth(secret), RequireRole(tt.allowed...))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
