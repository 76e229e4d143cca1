package utils

import (
	"testing"
	"time"
)

func TestProfileTokenRoundTrip(t *testing.T) {
	token, err := GenerateProfileToken("profile-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateProfileToken() = %v", err)
	}
	id, err := ParseProfileToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseProfileToken() = %v", err)
	}
	if id != "profile-1" {
		t.Errorf("ParseProfileToken() = %q, want profile-1", id)
	}
}

func TestProfileTokenRejected(t *testing.T) {
	valid, err := GenerateProfileToken("profile-1", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := GenerateProfileToken("profile-1", "secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "garbage", token: "not.a.token", secret: "secret"},
		{name: "empty", token: "", secret: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id, err := ParseProfileToken(tt.token, tt.secret); err == nil {
				t.Errorf("ParseProfileToken() = %q, want error", id)
			}
		})
	}
}
