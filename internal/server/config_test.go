package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadServerConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.GetServerAddress() != "localhost:8080" {
		t.Errorf("expected localhost:8080, got %s", config.GetServerAddress())
	}
	if config.SessionIdleTimeout() != 30*time.Minute {
		t.Errorf("expected 30m idle timeout, got %s", config.SessionIdleTimeout())
	}
	if len(config.Banks) != 4 {
		t.Errorf("expected 4 default banks, got %d", len(config.Banks))
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadServerConfigFromFile(t *testing.T) {
	content := `
server {
  address              = "0.0.0.0"
  port                 = 9000
  log_level            = "debug"
  session_idle_minutes = 5
}

bank "SP" {
  path = "banks/sp.txt"
}

bank "EN" {
  path = "banks/en.txt"
}
`
	path := filepath.Join(t.TempDir(), "server.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.GetServerAddress() != "0.0.0.0:9000" {
		t.Errorf("expected 0.0.0.0:9000, got %s", config.GetServerAddress())
	}
	if config.Server.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", config.Server.LogLevel)
	}
	if config.SessionIdleTimeout() != 5*time.Minute {
		t.Errorf("expected 5m idle timeout, got %s", config.SessionIdleTimeout())
	}

	paths := config.BankPaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 banks, got %d", len(paths))
	}
	if paths["SP"] != "banks/sp.txt" {
		t.Errorf("unexpected SP path: %s", paths["SP"])
	}

	if err := config.Validate(); err != nil {
		t.Errorf("config should validate: %v", err)
	}
}

func TestLoadServerConfigPartialFileGetsDefaults(t *testing.T) {
	content := `
server {
  port = 9999
}

bank "PT" {
  path = "banks/pt.txt"
}
`
	path := filepath.Join(t.TempDir(), "server.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Address != "localhost" {
		t.Errorf("expected default address, got %s", config.Server.Address)
	}
	if config.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", config.Server.Port)
	}
	if config.Server.LogLevel != "info" {
		t.Errorf("expected default log level, got %s", config.Server.LogLevel)
	}
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*ServerConfig) {},
			wantErr: "",
		},
		{
			name:    "port too low",
			mutate:  func(c *ServerConfig) { c.Server.Port = 0 },
			wantErr: "invalid port",
		},
		{
			name:    "port too high",
			mutate:  func(c *ServerConfig) { c.Server.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "no banks",
			mutate:  func(c *ServerConfig) { c.Banks = nil },
			wantErr: "at least one word bank",
		},
		{
			name:    "unknown language",
			mutate:  func(c *ServerConfig) { c.Banks[0].Language = "XX" },
			wantErr: "unknown language",
		},
		{
			name:    "duplicate language",
			mutate:  func(c *ServerConfig) { c.Banks[1].Language = c.Banks[0].Language },
			wantErr: "configured twice",
		},
		{
			name:    "missing path",
			mutate:  func(c *ServerConfig) { c.Banks[0].Path = "" },
			wantErr: "path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultServerConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
