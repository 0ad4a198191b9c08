package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"FIRESTORE_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"GOOGLE_APPLICATION_CREDENTIALS",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"OLS_BASE_URL",
		"BIOSAMPLES_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.FirestoreProjectID != "" {
		t.Errorf("FirestoreProjectID = %q, want empty", cfg.FirestoreProjectID)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.OLSBaseURL != "https://www.ebi.ac.uk/ols4" {
		t.Errorf("OLSBaseURL = %q", cfg.OLSBaseURL)
	}
	if cfg.BioSamplesBaseURL != "https://www.ebi.ac.uk/biosamples" {
		t.Errorf("BioSamplesBaseURL = %q", cfg.BioSamplesBaseURL)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("OLS_BASE_URL", "http://localhost:8081/ols4")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.FirestoreProjectID != "demo-project" {
		t.Errorf("FirestoreProjectID = %q", cfg.FirestoreProjectID)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.OLSBaseURL != "http://localhost:8081/ols4" {
		t.Errorf("OLSBaseURL = %q", cfg.OLSBaseURL)
	}
}

func TestLoadProjectIDFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLOUD_PROJECT", "fallback-project")

	cfg := Load()
	if cfg.FirestoreProjectID != "fallback-project" {
		t.Errorf("FirestoreProjectID = %q, want fallback-project", cfg.FirestoreProjectID)
	}

	// The explicit variable wins over the generic one.
	t.Setenv("FIRESTORE_PROJECT_ID", "explicit-project")
	cfg = Load()
	if cfg.FirestoreProjectID != "explicit-project" {
		t.Errorf("FirestoreProjectID = %q, want explicit-project", cfg.FirestoreProjectID)
	}
}
