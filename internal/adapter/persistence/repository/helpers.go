package repository

import "os"

// tableFromEnv resolves a repository's table name, letting deployments
// override the default per environment.
func tableFromEnv(envKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
