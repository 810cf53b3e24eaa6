package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func loginRouter(store AttemptStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login(store))
	r.POST("/auth/logout", Logout())
	return r
}

func postLogin(r *gin.Engine, password string) *httptest.ResponseRecorder {
	body := `{"password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginMissingPasswordIsValidationError(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	r := loginRouter(NewMemoryAttemptStore())

	if w := postLogin(r, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	r := loginRouter(NewMemoryAttemptStore())

	w := postLogin(r, "s3cret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			found = true
			if !c.HttpOnly {
				t.Fatal("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Fatal("expected session cookie on successful login")
	}
}

func TestLoginWrongPasswordIsRejected(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	r := loginRouter(NewMemoryAttemptStore())

	if w := postLogin(r, "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestLoginLocksAfterFiveFailures(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	r := loginRouter(NewMemoryAttemptStore())

	for i := 0; i < MaxLoginAttempts-1; i++ {
		if w := postLogin(r, "wrong"); w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, w.Code)
		}
	}

	w := postLogin(r, "wrong")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on attempt %d, got %d", MaxLoginAttempts, w.Code)
	}

	var resp struct {
		RetryAfterSecs int `json:"retry_after_secs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode lockout response: %v", err)
	}
	if resp.RetryAfterSecs <= 0 {
		t.Fatalf("expected remaining lockout time, got %d", resp.RetryAfterSecs)
	}

	// Even the correct password is refused while locked.
	if w := postLogin(r, "s3cret"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 while locked, got %d", w.Code)
	}
}

func TestLoginSuccessResetsStreak(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	store := NewMemoryAttemptStore()
	r := loginRouter(store)

	for i := 0; i < MaxLoginAttempts-1; i++ {
		postLogin(r, "wrong")
	}
	if w := postLogin(r, "s3cret"); w.Code != http.StatusOK {
		t.Fatalf("expected successful login before lock, got %d", w.Code)
	}

	// The streak restarted: more failures are tolerated again.
	if w := postLogin(r, "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after reset, got %d", w.Code)
	}
}
