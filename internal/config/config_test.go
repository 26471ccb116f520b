package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	viper.Set("password", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Expected port 5432, got %d", cfg.Port)
	}
	if cfg.Service != "petstore" {
		t.Errorf("Expected service 'petstore', got '%s'", cfg.Service)
	}
	if cfg.User != "master" {
		t.Errorf("Expected user 'master', got '%s'", cfg.User)
	}
}

func TestLoadRequiresPassword(t *testing.T) {
	resetViper(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error when password is missing")
	}
	if !strings.Contains(err.Error(), "DB_PASSWORD") {
		t.Errorf("Error should mention DB_PASSWORD, got: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_SERVICE", "petshop")
	BindEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Host != "db.example.com" {
		t.Errorf("Expected host from DB_HOST, got '%s'", cfg.Host)
	}
	if cfg.Port != 6432 {
		t.Errorf("Expected port from DB_PORT, got %d", cfg.Port)
	}
	if cfg.Service != "petshop" {
		t.Errorf("Expected service from DB_SERVICE, got '%s'", cfg.Service)
	}
}

func TestServiceFallsBackToOracleEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("ORACLE_SERVICE_NAME", "legacy_service")
	BindEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service != "legacy_service" {
		t.Errorf("Expected ORACLE_SERVICE_NAME fallback, got '%s'", cfg.Service)
	}
}

func TestValidatePort(t *testing.T) {
	cfg := &Connection{Port: 99999, Password: "x"}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for an out-of-range port")
	}
}

func TestURL(t *testing.T) {
	cfg := &Connection{
		Host:     "localhost",
		Port:     5432,
		Service:  "petstore",
		User:     "master",
		Password: "p@ss/word",
	}

	url := cfg.URL()
	if !strings.HasPrefix(url, "postgres://") {
		t.Errorf("Expected postgres scheme, got %s", url)
	}
	if strings.Contains(url, "p@ss/word") {
		t.Errorf("Password must be escaped in URL: %s", url)
	}
	if !strings.HasSuffix(url, "/petstore") {
		t.Errorf("Expected database path suffix, got %s", url)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Connection{Host: "db", Port: 5432, Service: "petstore"}
	if cfg.Addr() != "db:5432/petstore" {
		t.Errorf("Unexpected Addr: %s", cfg.Addr())
	}
}
