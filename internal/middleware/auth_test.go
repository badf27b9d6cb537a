package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminOnlyRequest(t *testing.T, role string, withRole bool) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	m := &AuthMiddleware{}
	called := false
	h := m.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/entries/1", nil)
	if withRole {
		req = req.WithContext(context.WithValue(req.Context(), RoleKey, role))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, called
}

func TestAdminOnlyAllowsAdminFromContext(t *testing.T) {
	rec, called := adminOnlyRequest(t, "admin", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnlyRejectsOperator(t *testing.T) {
	rec, called := adminOnlyRequest(t, "operator", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAdminOnlyRejectsMissingRole(t *testing.T) {
	rec, called := adminOnlyRequest(t, "", false)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}
