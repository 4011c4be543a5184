package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/testutil/usermock"
	"insurance-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

const testSecret = "middleware-test-secret"

func issueToken(t *testing.T, usr *user.User, ttl time.Duration) string {
	t.Helper()
	uc := auth.NewUsecase(&usermock.Repo{}, testSecret, ttl)
	token, err := uc.IssueToken(usr)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func echoHandler(c echo.Context) error {
	id, _ := UserID(c)
	role, _ := c.Get(CtxRole).(user.Role)
	return c.JSON(http.StatusOK, map[string]any{"user_id": id, "role": role})
}

func serve(t *testing.T, e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_SetsContext(t *testing.T) {
	e := echo.New()
	e.GET("/me", echoHandler, JWTAuth(testSecret))

	token := issueToken(t, &user.User{ID: 42, Email: "jane@example.com", Role: user.RoleUser}, time.Hour)
	rec := serve(t, e, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		UserID uint64 `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.UserID != 42 || body.Role != "USER" {
		t.Fatalf("unexpected context values: %+v", body)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	e.GET("/me", echoHandler, JWTAuth(testSecret))

	rec := serve(t, e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	e.GET("/me", echoHandler, JWTAuth(testSecret))

	token := issueToken(t, &user.User{ID: 42}, -time.Minute)
	rec := serve(t, e, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	e := echo.New()
	e.GET("/me", echoHandler, JWTAuth("a-different-secret"))

	token := issueToken(t, &user.User{ID: 42}, time.Hour)
	rec := serve(t, e, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	e.GET("/me", echoHandler, JWTAuth(testSecret), RequireAdmin)

	// Regular user is rejected
	token := issueToken(t, &user.User{ID: 42, Role: user.RoleUser}, time.Hour)
	rec := serve(t, e, "Bearer "+token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user role: status = %d, want 403", rec.Code)
	}

	// Admin passes
	token = issueToken(t, &user.User{ID: 1, Role: user.RoleAdmin}, time.Hour)
	rec = serve(t, e, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin role: status = %d, want 200", rec.Code)
	}
}

func TestUserID_AbsentWithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := UserID(c); ok {
		t.Fatalf("UserID should report absence on a bare context")
	}
}
