package config

import (
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "AUTH_VERIFY_URL", "AUTH_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "dev" || cfg.DBDSN != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 100 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev env")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("AUTH_VERIFY_URL", "https://id.example.com")
	t.Setenv("AUTH_API_KEY", "k1")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.IsDev() || cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.AuthVerifyURL != "https://id.example.com" || cfg.AuthAPIKey != "k1" {
		t.Fatalf("unexpected auth config: %+v", cfg)
	}
}

func TestFromEnv_ProdRequiresVerifier(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("AUTH_VERIFY_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error without AUTH_VERIFY_URL in prod")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad port":  {"PORT", "http"},
		"port zero": {"PORT", "0"},
		"bad env":   {"ENV", "qa"},
		"bad rps":   {"RATE_LIMIT_RPS", "fast"},
		"neg rps":   {"RATE_LIMIT_RPS", "-1"},
		"bad burst": {"RATE_LIMIT_BURST", "x"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PORT", "8080")
			t.Setenv("ENV", "dev")
			t.Setenv("RATE_LIMIT_RPS", "")
			t.Setenv("RATE_LIMIT_BURST", "")
			t.Setenv("AUTH_VERIFY_URL", "")
			t.Setenv(kv[0], kv[1])

			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
