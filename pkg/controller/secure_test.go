package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plasmodocking/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithSecure_RedirectsPlainHTTP(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := controller.WithSecure(controller.SecureOptions{SSLRedirect: true, ExemptPaths: []string{"/healthz"}})(next)

	req := httptest.NewRequest(http.MethodGet, "http://api.example/api/processes/?status=EM_FILA", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "https://api.example/api/processes/?status=EM_FILA", rec.Header().Get("Location"))

	// exempt path is served
	req = httptest.NewRequest(http.MethodGet, "http://api.example/healthz", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWithSecure_HSTSBehindProxy(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := controller.WithSecure(controller.SecureOptions{SSLRedirect: true, HSTSMaxAge: time.Hour})(next)

	req := httptest.NewRequest(http.MethodGet, "http://api.example/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "max-age=3600", rec.Header().Get("Strict-Transport-Security"))
}

func TestWithSecure_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := controller.WithSecure(controller.SecureOptions{})(next)

	req := httptest.NewRequest(http.MethodGet, "http://api.example/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}
