package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseValidToken(t *testing.T) {
	staffID := uuid.New()
	token := signToken(t, testSecret, Claims{
		StaffID: staffID.String(),
		Role:    "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	principal, err := NewParser(testSecret).Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if principal.StaffID != staffID {
		t.Errorf("staff id = %s, want %s", principal.StaffID, staffID)
	}
	if principal.Role != model.StaffRoleManager {
		t.Errorf("role = %s, want manager", principal.Role)
	}
	if !principal.CanWrite() {
		t.Error("manager should be able to write")
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	parser := NewParser(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signToken(t, "other-secret", Claims{StaffID: uuid.NewString(), Role: "admin"})},
		{"expired", signToken(t, testSecret, Claims{
			StaffID: uuid.NewString(),
			Role:    "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})},
		{"unknown role", signToken(t, testSecret, Claims{StaffID: uuid.NewString(), Role: "superuser"})},
		{"bad staff id", signToken(t, testSecret, Claims{StaffID: "42", Role: "staff"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse(tt.token); err == nil {
				t.Error("Parse accepted an invalid token")
			}
		})
	}
}
