package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	Port           string
	AllowedOrigins []string
}

var Env Environment

func init() {
	port := os.Getenv("PORT")

	// If no port is set, we're in development
	isDev := port == ""
	if isDev {
		port = "8080"
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	Env = Environment{
		IsDevelopment:  isDev,
		Port:           port,
		AllowedOrigins: origins,
	}
}
