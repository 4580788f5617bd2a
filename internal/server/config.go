package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Jorgelet/bingo-analisis/internal/game"
)

// ServerConfig represents the complete server configuration.
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Banks  []BankConfig   `hcl:"bank,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address         string `hcl:"address,optional"`
	Port            int    `hcl:"port,optional"`
	LogLevel        string `hcl:"log_level,optional"`
	SessionIdleMins int    `hcl:"session_idle_minutes,optional"`
}

// BankConfig points a language at its word bank file.
type BankConfig struct {
	Language string `hcl:"language,label"`
	Path     string `hcl:"path"`
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Address:         "localhost",
			Port:            8080,
			LogLevel:        "info",
			SessionIdleMins: 30,
		},
		Banks: []BankConfig{
			{Language: "SP", Path: "word_banks/banco_SP.txt"},
			{Language: "EN", Path: "word_banks/banco_EN.txt"},
			{Language: "PT", Path: "word_banks/banco_PT.txt"},
			{Language: "DT", Path: "word_banks/banco_DT.txt"},
		},
	}
}

// LoadServerConfig loads server configuration from an HCL file. A missing
// file yields the defaults.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.SessionIdleMins == 0 {
		config.Server.SessionIdleMins = 30
	}

	return &config, nil
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if len(c.Banks) == 0 {
		return fmt.Errorf("at least one word bank must be configured")
	}

	seen := map[string]bool{}
	for _, bank := range c.Banks {
		if _, ok := game.ParseLanguage(bank.Language); !ok {
			return fmt.Errorf("bank %s: unknown language code", bank.Language)
		}
		if seen[bank.Language] {
			return fmt.Errorf("bank %s: configured twice", bank.Language)
		}
		seen[bank.Language] = true
		if bank.Path == "" {
			return fmt.Errorf("bank %s: path is required", bank.Language)
		}
	}

	return nil
}

// GetServerAddress returns the full listen address.
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// BankPaths returns the language → file path mapping for the loader.
func (c *ServerConfig) BankPaths() map[string]string {
	paths := make(map[string]string, len(c.Banks))
	for _, bank := range c.Banks {
		paths[bank.Language] = bank.Path
	}
	return paths
}

// SessionIdleTimeout returns how long a session may sit untouched before
// the reaper removes it.
func (c *ServerConfig) SessionIdleTimeout() time.Duration {
	return time.Duration(c.Server.SessionIdleMins) * time.Minute
}
