package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"partymenu/internal/domain"
	usersvc "partymenu/internal/service/user"
)

func TestRegisterHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _, users, _ := testDeps()
	users.user = &domain.User{ID: 1, Name: "Maria", Email: "maria@example.com"}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"name":"Maria","email":"maria@example.com","password":"Sangria99"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"maria@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Error("password hash must never appear in responses")
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _, users, _ := testDeps()
	users.registerErr = domain.ErrAlreadyExists
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"name":"Maria","email":"maria@example.com","password":"Sangria99"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _, users, _ := testDeps()
	users.loginErr = usersvc.ErrInvalidCredentials
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"email":"maria@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_MergesSessionCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, merges, _, users, _ := testDeps()
	users.user = &domain.User{ID: 7, Name: "Maria", Email: "maria@example.com"}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	sessionID := uuid.NewString()
	body := `{"email":"maria@example.com","password":"Sangria99"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if merges.calls != 1 {
		t.Fatalf("expected exactly one merge, got %d", merges.calls)
	}
	if merges.mergedSession != sessionID || merges.mergedUserID != 7 {
		t.Errorf("merged wrong identifiers: session=%s user=%d", merges.mergedSession, merges.mergedUserID)
	}
	if !strings.Contains(rec.Body.String(), `"accessToken":"access-token"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	var dropped bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			dropped = true
		}
	}
	if !dropped {
		t.Error("expected session cookie to be dropped after merge")
	}
}

func TestLoginHandler_NoSessionCookieSkipsMerge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, merges, _, users, _ := testDeps()
	users.user = &domain.User{ID: 7, Name: "Maria", Email: "maria@example.com"}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"email":"maria@example.com","password":"Sangria99"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if merges.calls != 0 {
		t.Fatalf("expected no merge, got %d", merges.calls)
	}
}

func TestProfileHandler_RequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _, users, _ := testDeps()
	users.user = &domain.User{ID: 7, Name: "Maria", Email: "maria@example.com"}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"cartItems":3`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
