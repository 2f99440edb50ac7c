package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	cfg := MustLoad()

	assert.Equal(t, "http://localhost:8080/api", cfg.Api.BaseUrl)
	assert.Equal(t, 15, cfg.Api.TimeoutSec)
	assert.Equal(t, 10, cfg.BooksPerPage)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://catalog.example.com/api")
	t.Setenv("BOOKS_PER_PAGE", "25")
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	cfg := MustLoad()

	assert.Equal(t, "https://catalog.example.com/api", cfg.Api.BaseUrl)
	assert.Equal(t, 25, cfg.BooksPerPage)
}
