// internal/services/auth_service.go
package services

import (
	"crypto/subtle"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/models"
)

// AuthService compares a login against one fixed credential pair. It keeps
// no session and issues no token.
type AuthService struct {
	username string
	password string
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (s *AuthService) Login(req *models.LoginRequest) *models.LoginResponse {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1

	if userOK && passOK {
		return &models.LoginResponse{Success: true, Message: "Login successful"}
	}
	return &models.LoginResponse{Success: false, Message: "Invalid username or password"}
}
