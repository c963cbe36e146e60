package auth

import (
	"context"
	"testing"

	"github.com/csbs-dept/portal-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestHandleLogin(t *testing.T) {
	handler := NewAuthHandler(testConfig())

	t.Run("Valid credentials", func(t *testing.T) {
		input := &LoginInput{}
		input.Body.Username = "admin"
		input.Body.Password = "admin123"

		resp, err := handler.HandleLogin(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleLogin returned error: %v", err)
		}
		if resp.Body.Token == "" {
			t.Error("expected a token, got empty string")
		}
		if resp.Body.Message != "Login successful" {
			t.Errorf("unexpected message: %s", resp.Body.Message)
		}
	})

	t.Run("Wrong password", func(t *testing.T) {
		input := &LoginInput{}
		input.Body.Username = "admin"
		input.Body.Password = "wrong"

		if _, err := handler.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error for wrong password, got nil")
		}
	})

	t.Run("Missing fields", func(t *testing.T) {
		input := &LoginInput{}
		if _, err := handler.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error for missing credentials, got nil")
		}
	})
}

func TestGenerateToken(t *testing.T) {
	handler := NewAuthHandler(testConfig())

	token, err := handler.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
}
