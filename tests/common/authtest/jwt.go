//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// Identity is a user id with a token for it.
type Identity struct {
	ID    uuid.UUID
	Role  user.Role
	Token string
}

func (h *JWTHelper) NewIdentity(t *testing.T, role user.Role) Identity {
	t.Helper()
	id := uuid.New()
	return Identity{ID: id, Role: role, Token: h.GenerateToken(t, id, role)}
}
