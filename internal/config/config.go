package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads environment configuration. A missing .env file is not an
// error; deployed environments inject variables directly.
func Init() {
	_ = godotenv.Load()
	initLogger()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic("missing required environment variable: " + key)
	}
	return v
}
