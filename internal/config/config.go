package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr         string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN        string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret          string `env:"JWT_SECRET" envDefault:"secret"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID" envDefault:""`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET" envDefault:""`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/auth/google-redirect"`
	FrontendURL        string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// GoogleConfig модель настроек авторизации через Google OAuth
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	FrontendURL  string
}

// SessionsConfig модель настроек фоновой очистки сессий
type SessionsConfig struct {
	PurgeInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Google   GoogleConfig
	Sessions SessionsConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server       = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel     = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN          = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret       = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		clientID     = pflag.String("google_id", args.GoogleClientID, "Google OAuth client ID")
		clientSecret = pflag.String("google_secret", args.GoogleClientSecret, "Google OAuth client secret")
		redirectURL  = pflag.String("google_redirect", args.GoogleRedirectURL, "Google OAuth redirect URL")
		frontendURL  = pflag.String("frontend", args.FrontendURL, "Frontend origin URL")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Google: GoogleConfig{
			ClientID:     *clientID,
			ClientSecret: *clientSecret,
			RedirectURL:  *redirectURL,
			FrontendURL:  *frontendURL,
		},
		Sessions: SessionsConfig{
			PurgeInterval: time.Hour,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Google: GoogleConfig{
			RedirectURL: "http://localhost:8080/auth/google-redirect",
			FrontendURL: "http://localhost:3000",
		},
		Sessions: SessionsConfig{
			PurgeInterval: time.Hour,
		},
	}
}
