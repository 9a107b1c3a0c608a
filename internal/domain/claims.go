package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis aceitos no token de acesso
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analista"
)

// Claims são as informações do analista presentes no token de acesso
type Claims struct {
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin indica se o token permite atualizar as bases
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
