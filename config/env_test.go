package config

import (
	"errors"
	"testing"
)

func TestLoadProfileSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		want    string
		wantErr error
	}{
		{name: "production without secret", env: "production", wantErr: ErrMissingProfileSecret},
		{name: "production with secret", env: "production", secret: "s3cret", want: "s3cret"},
		{name: "development falls back", env: "development", want: devProfileSecret},
		{name: "development keeps explicit secret", env: "development", secret: "local", want: "local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("PROFILE_SECRET", tt.secret)

			cfg := Load()
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if err == nil && cfg.ProfileSecret != tt.want {
				t.Errorf("ProfileSecret = %q, want %q", cfg.ProfileSecret, tt.want)
			}
		})
	}
}
