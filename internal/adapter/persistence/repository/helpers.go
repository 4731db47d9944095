package repository

import "os"

// getenvDefault resolves per-repository table names from the environment.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
