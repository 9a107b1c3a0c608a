package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ipc-quotation-monitor/internal/config"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

func newTestService(secret string, now time.Time) *Service {
	return &Service{
		cfg: &config.Config{Auth: config.Auth{Secret: secret}},
		now: func() time.Time { return now },
	}
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	now := time.Now()
	svc := newTestService("segredo", now)

	token, err := svc.GenerateToken("ana", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserName)
	assert.True(t, claims.IsAdmin())
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Now()
	issuer := newTestService("segredo", now.Add(-2*time.Hour))
	expired, err := issuer.GenerateToken("ana", domain.RoleAnalyst, time.Hour)
	require.NoError(t, err)

	other := newTestService("outro", now)
	foreign, err := other.GenerateToken("ana", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "token expirado", token: expired, wantErr: ErrExpiredToken},
		{name: "assinatura de outro segredo", token: foreign, wantErr: ErrInvalidToken},
		{name: "token malformado", token: "abc.def", wantErr: ErrInvalidToken},
	}

	svc := newTestService("segredo", now)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_GenerateToken_Errors(t *testing.T) {
	_, err := newTestService("", time.Now()).GenerateToken("ana", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = newTestService("segredo", time.Now()).GenerateToken("", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
