package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: apperrors.NewValidationError("usn is required"), wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: apperrors.ErrDuplicateIdentifier, wantStatus: http.StatusBadRequest},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusBadRequest},
		{name: "password mismatch", err: apperrors.ErrPasswordMismatch, wantStatus: http.StatusBadRequest},
		{name: "not authenticated", err: apperrors.ErrNotAuthenticated, wantStatus: http.StatusForbidden},
		{name: "not found", err: apperrors.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "account not found", err: apperrors.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] != tt.err.Error() {
				t.Errorf("error = %q, want %q", body["error"], tt.err.Error())
			}
		})
	}
}

func TestRequireAPIAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(nil)

	router := gin.New()
	router.GET("/guarded", m.RequireAPIAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("unauthenticated status = %d, want %d", w.Code, http.StatusForbidden)
	}

	authed := gin.New()
	authed.GET("/guarded", func(c *gin.Context) { c.Set(CtxUserID, int64(1)) }, m.RequireAPIAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	w = httptest.NewRecorder()
	authed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(nil)

	setRole := func(role models.RoleType) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(CtxUserID, int64(1))
			c.Set(CtxRole, role)
		}
	}

	tests := []struct {
		name       string
		pre        gin.HandlerFunc
		wantStatus int
	}{
		{name: "teacher allowed", pre: setRole(models.RoleTeacher), wantStatus: http.StatusOK},
		{name: "student redirected", pre: setRole(models.RoleStudent), wantStatus: http.StatusSeeOther},
		{name: "anonymous redirected", pre: func(c *gin.Context) {}, wantStatus: http.StatusSeeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/cases/late", tt.pre, m.RequireRole(models.RoleTeacher, "/teacher/login"), func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/late", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusSeeOther {
				if loc := w.Header().Get("Location"); loc != "/teacher/login" {
					t.Errorf("redirect location = %q, want /teacher/login", loc)
				}
			}
		})
	}
}
