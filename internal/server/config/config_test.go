package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddr != ":8080" {
		t.Errorf("EndpointAddr: got %q", cfg.EndpointAddr)
	}
	if cfg.AccessTokenValidityDuration != time.Minute {
		t.Errorf("AccessTokenValidityDuration: got %v", cfg.AccessTokenValidityDuration)
	}
	if cfg.RefreshTokenValidityDuration != 24*time.Hour {
		t.Errorf("RefreshTokenValidityDuration: got %v", cfg.RefreshTokenValidityDuration)
	}
	if cfg.UploadURLValidityDuration != time.Minute {
		t.Errorf("UploadURLValidityDuration: got %v", cfg.UploadURLValidityDuration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		want    error
	}{
		{"both secrets set", "a", "r", nil},
		{"missing access secret", "", "r", ErrMissingJWTSecret},
		{"missing refresh secret", "a", "", ErrMissingJWTRefreshSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{JWTSecret: tt.access, JWTRefreshSecret: tt.refresh}
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("JWT_SECRET", "s1")
	t.Setenv("JWT_REFRESH_SECRET", "s2")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "2m")
	t.Setenv("AWS_BUCKET_NAME", "media")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.EndpointAddr != ":9090" {
		t.Errorf("EndpointAddr: got %q", cfg.EndpointAddr)
	}
	if cfg.JWTSecret != "s1" || cfg.JWTRefreshSecret != "s2" {
		t.Errorf("secrets: got %q / %q", cfg.JWTSecret, cfg.JWTRefreshSecret)
	}
	if cfg.AccessTokenValidityDuration != 2*time.Minute {
		t.Errorf("AccessTokenValidityDuration: got %v", cfg.AccessTokenValidityDuration)
	}
	if cfg.S3Bucket != "media" {
		t.Errorf("S3Bucket: got %q", cfg.S3Bucket)
	}
}

func TestParseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_VALIDITY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.AccessTokenValidityDuration != time.Minute {
		t.Errorf("AccessTokenValidityDuration: got %v, want default", cfg.AccessTokenValidityDuration)
	}
}
