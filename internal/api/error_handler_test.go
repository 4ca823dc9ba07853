package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"dead session", domain.ErrSessionNotFound, http.StatusUnauthorized},
		{"permission denied", domain.ErrPermissionDenied, http.StatusForbidden},
		{"admin protected", domain.ErrAdminProtected, http.StatusForbidden},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound},
		{"rink customer missing", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"duplicate username", domain.ErrUserExists, http.StatusConflict},
		{"bad customer number", domain.ErrInvalidCustomerNumber, http.StatusBadRequest},
		{"bad minutes", domain.ErrInvalidSkateMinutes, http.StatusBadRequest},
		{"unknown role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"empty sale", domain.ErrEmptySale, http.StatusUnprocessableEntity},
		{"stock exhausted", domain.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{"store down", fmt.Errorf("save: %w: timeout", domain.ErrPersistence), http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	log := zerolog.Nop()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())

			code, _ := resolveError(tc.err, log, c)
			if code != tc.want {
				t.Fatalf("resolveError(%v) = %d, want %d", tc.err, code, tc.want)
			}
		})
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(domain.ErrPermissionDenied, c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"permission denied\"}\n" {
		t.Fatalf("unexpected envelope: %q", body)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusOK)

	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not change, got %d", rec.Code)
	}
}
