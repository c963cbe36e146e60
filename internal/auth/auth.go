package auth

import (
	"context"
	"time"

	"github.com/csbs-dept/portal-api/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration matches the lifetime the admin panel expects before it has to
// log in again.
const TokenDuration = 8 * time.Hour

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginInput struct {
	Body struct {
		Username string `json:"username" doc:"Admin username"`
		Password string `json:"password" doc:"Admin password"`
	}
}

type LoginOutput struct {
	Body struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
}

// HandleLogin checks the single configured credential pair and hands back a
// signed bearer token. There is no other identity provider.
func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input.Body.Username == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest("Please provide username and password.")
	}
	if input.Body.Username != h.cfg.AdminUsername || input.Body.Password != h.cfg.AdminPassword {
		return nil, huma.Error401Unauthorized("Invalid username or password.")
	}

	token, err := h.GenerateToken(input.Body.Username)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginOutput{}
	res.Body.Token = token
	res.Body.Message = "Login successful"
	return res, nil
}

func (h *AuthHandler) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"exp":      time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
