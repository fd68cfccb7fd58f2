package utils

import (
	"strings"
	"testing"
	"time"

	"offerdeck/models"
)

func testAdmin() models.Admin {
	return models.Admin{
		ID:    "a4b2a0a0-1111-2222-3333-444455556666",
		Email: "admin@offers-system.com",
		Name:  "Administrator",
	}
}

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	admin := testAdmin()

	token, err := GenerateSessionToken(issuer, admin, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != admin.ID {
		t.Errorf("expected subject %s, got %s", admin.ID, token.Claims.Subject)
	}
	if token.Claims.Email != admin.Email {
		t.Errorf("expected email claim %s, got %s", admin.Email, token.Claims.Email)
	}
	if token.Claims.Name != admin.Name {
		t.Errorf("expected name claim %s, got %s", admin.Name, token.Claims.Name)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		adminID  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "id", time.Hour, "key"},
		{"empty admin id", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "id", 0, "key"},
		{"empty key", "iss", "id", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, models.Admin{ID: tt.adminID}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	admin := testAdmin()

	generated, err := GenerateSessionToken(issuer, admin, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseSessionToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.AdminID() != admin.ID {
		t.Errorf("expected admin ID %s, got %s", admin.ID, parsed.AdminID())
	}
	if parsed.Claims.Email != admin.Email {
		t.Errorf("expected email %s, got %s", admin.Email, parsed.Claims.Email)
	}
}

func TestValidateAndParseSessionToken_Rejections(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	admin := testAdmin()

	valid, err := GenerateSessionToken(issuer, admin, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	expired, err := GenerateSessionToken(issuer, admin, -time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate expired token: %v", err)
	}

	// flip a character in the signature segment
	tampered := valid.SignedString[:len(valid.SignedString)-2] + "xx"

	// swap the payload segment between two otherwise valid tokens
	other, err := GenerateSessionToken(issuer, models.Admin{ID: "other-id", Email: "other@offers-system.com"}, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate second token: %v", err)
	}
	validParts := strings.Split(valid.SignedString, ".")
	otherParts := strings.Split(other.SignedString, ".")
	spliced := validParts[0] + "." + otherParts[1] + "." + validParts[2]

	tests := []struct {
		name        string
		tokenString string
		key         string
		issuer      string
	}{
		{"malformed token", "not-a-jwt", key, issuer},
		{"empty token", "", key, issuer},
		{"tampered signature", tampered, key, issuer},
		{"swapped payload", spliced, key, issuer},
		{"expired token", expired.SignedString, key, issuer},
		{"wrong sign key", valid.SignedString, "another-key", issuer},
		{"wrong issuer", valid.SignedString, key, "another-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseSessionToken(tt.tokenString, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
