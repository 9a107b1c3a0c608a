package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setupMock  func(m *mocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "rota pública dispensa token",
			path:       "/v1/status",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rota protegida sem cabeçalho",
			path:       "/v1/uploads/quotations",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rota protegida sem Bearer",
			path:       "/v1/uploads/quotations",
			header:     "abc",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/cron/status",
			header: "Bearer velho",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("velho").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/v1/uploads/weights",
			header: "Bearer bom",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserName: "ana", Role: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(auth)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem autenticação", wantStatus: http.StatusUnauthorized},
		{name: "analista", claims: &domain.Claims{UserName: "bia", Role: domain.RoleAnalyst}, wantStatus: http.StatusForbidden},
		{name: "administrador", claims: &domain.Claims{UserName: "ana", Role: domain.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/uploads/quotations", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors("https://painel.ipc.local")(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/status", nil)
	req.Header.Set("Origin", "https://painel.ipc.local")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://painel.ipc.local", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	req.Header.Set("Origin", "https://outro.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func contextWithClaims(req *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(req.Context(), ContextKeyUser, claims)
}

func TestLoggingMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/consolidated", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestSlowThreshold(t *testing.T) {
	assert.Equal(t, slowSpreadsheetCall, slowThreshold("/v1/uploads/weights"))
	assert.Equal(t, slowSpreadsheetCall, slowThreshold("/v1/consolidated/export"))
	assert.Equal(t, slowRequest, slowThreshold("/v1/status"))
}
