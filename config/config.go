package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env          string `env:"ENV" envDefault:"prod"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"error"`
	SessionFile  string `env:"SESSION_FILE"`
	BooksPerPage int    `env:"BOOKS_PER_PAGE" envDefault:"10"`
	Api          Api
}

type Api struct {
	BaseUrl    string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	TimeoutSec int    `env:"API_TIMEOUT_SEC" envDefault:"15"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	if cfg.SessionFile == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("resolve user config dir error: %s", err)
		}
		cfg.SessionFile = filepath.Join(configDir, "bookshelf", "session.json")
	}

	return cfg
}
