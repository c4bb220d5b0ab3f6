package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/config"
	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/service"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func testAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "router-test-secret", ExpireHours: 1},
	})
}

func TestStaffJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := testAuthService()

	r := gin.New()
	r.Use(StaffJWTAuthMiddleware(authSvc))
	r.GET("/staff/ping", func(c *gin.Context) {
		session, ok := handlershared.GetSession(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": session.Role, "branch": session.Branch})
	})

	token, _, err := authSvc.GenerateJWT(authz.Session{Role: "sales", Branch: "Jakarta"})
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/staff/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["role"] != "sales" || resp["branch"] != "Jakarta" {
		t.Fatalf("session claims mismatch: %v", resp)
	}
}

func TestStaffJWTAuthMiddlewareRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := testAuthService()

	r := gin.New()
	r.Use(StaffJWTAuthMiddleware(authSvc))
	r.GET("/staff/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	cases := map[string]string{
		"tanpa header":       "",
		"bukan bearer":       "Basic abc",
		"token dimanipulasi": "Bearer not-a-token",
	}
	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/staff/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		var resp struct {
			StatusCode int `json:"status_code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal response failed: %v", name, err)
		}
		if resp.StatusCode != 401 {
			t.Fatalf("%s: status_code want 401 got %d", name, resp.StatusCode)
		}
	}
}
