package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func request(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminRejectsMissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	if w := request(testRouter(), ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", w.Code)
	}
}

func TestRequireAdminRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	if w := request(testRouter(), "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestRequireAdminRejectsNonAdminClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token := signToken(t, jwt.MapClaims{
		"is_logged_in": true,
		"is_admin":     false,
		"exp":          time.Now().Add(time.Hour).Unix(),
	})
	if w := request(testRouter(), token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin session, got %d", w.Code)
	}
}

func TestRequireAdminRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token := signToken(t, jwt.MapClaims{
		"is_logged_in": true,
		"is_admin":     true,
		"exp":          time.Now().Add(-time.Hour).Unix(),
	})
	if w := request(testRouter(), token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired session, got %d", w.Code)
	}
}

func TestRequireAdminAcceptsValidSession(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token := signToken(t, jwt.MapClaims{
		"is_logged_in": true,
		"is_admin":     true,
		"exp":          time.Now().Add(time.Hour).Unix(),
	})
	if w := request(testRouter(), token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid session, got %d", w.Code)
	}
}
