package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/abaakil35/Qiuz-App/internal/auth"
)

func protectedEcho(t *testing.T, hit *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing from context inside protected handler: %v", err)
		}
		w.Write([]byte(claims.UserID))
	})
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("NoToken", func(t *testing.T) {
		hit := false
		handler := auth.AuthMiddleware(protectedEcho(t, &hit))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
		if hit {
			t.Error("Handler should not run for an unauthenticated request")
		}
	})

	t.Run("BearerToken", func(t *testing.T) {
		token, err := auth.GenerateJWT(testUserID, auth.RoleUser, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		hit := false
		handler := auth.AuthMiddleware(protectedEcho(t, &hit))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
		if !hit {
			t.Error("Handler should have run for a valid bearer token")
		}
	})

	t.Run("CookieToken", func(t *testing.T) {
		token, err := auth.GenerateJWT(testUserID, auth.RoleUser, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		hit := false
		handler := auth.AuthMiddleware(protectedEcho(t, &hit))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
		if !hit {
			t.Error("Handler should have run for a valid cookie token")
		}
	})
}

func TestAdminMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	run := func(role string) (*httptest.ResponseRecorder, bool) {
		token, err := auth.GenerateJWT(testUserID, role, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		hit := false
		handler := auth.AuthMiddleware(auth.AdminMiddleware(protectedEcho(t, &hit)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec, hit
	}

	t.Run("UserForbidden", func(t *testing.T) {
		rec, hit := run(auth.RoleUser)
		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for non-admin, got %d", rec.Code)
		}
		if hit {
			t.Error("Handler should not run for a non-admin caller")
		}
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		rec, hit := run(auth.RoleAdmin)
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200 for admin, got %d", rec.Code)
		}
		if !hit {
			t.Error("Handler should have run for an admin caller")
		}
	})
}
