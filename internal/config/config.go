package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration. Every field has a working default so
// the server can start with no environment at all; variables only override.
type Config struct {
	Port string // HTTP port to listen on

	FirestoreProjectID string // GCP project for task persistence; empty disables Firestore
	CredentialsFile    string // path to a service account JSON file (optional)

	RedisAddr     string // host:port of Redis for the ontology term cache; empty disables Redis
	RedisPassword string
	RedisDB       string

	OLSBaseURL        string // EBI Ontology Lookup Service base URL
	BioSamplesBaseURL string // EBI BioSamples base URL
}

const defaultPort = "8000"

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getenv("PORT", defaultPort),
		FirestoreProjectID: firstNonEmpty(os.Getenv("FIRESTORE_PROJECT_ID"), os.Getenv("GOOGLE_CLOUD_PROJECT")),
		CredentialsFile:    os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            os.Getenv("REDIS_DB"),
		OLSBaseURL:         getenv("OLS_BASE_URL", "https://www.ebi.ac.uk/ols4"),
		BioSamplesBaseURL:  getenv("BIOSAMPLES_BASE_URL", "https://www.ebi.ac.uk/biosamples"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
