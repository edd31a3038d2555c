// Package config holds the persisted UI preferences and the environment
// driven settings of the wallet.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the preferences file kept in the user's home directory
const FileName = ".jpyc-wallet-config.json"

// Config represents the persisted preferences
type Config struct {
	Providers []Provider `json:"providers"`
	Logger    bool       `json:"logger"`
}

// Provider is a wallet JSON-RPC endpoint
type Provider struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Path returns the preferences location, falling back to the working
// directory when the home directory is unknown.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the config from the specified path. A missing or corrupt file
// yields an empty config.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ActiveProvider returns the URL of the active endpoint, if any
func (c Config) ActiveProvider() string {
	for _, p := range c.Providers {
		if p.Active {
			return p.URL
		}
	}
	return ""
}

// Activate marks url as the active endpoint, adding it when unknown
func (c *Config) Activate(name, url string) {
	url = strings.TrimSpace(url)
	found := false
	for i := range c.Providers {
		c.Providers[i].Active = c.Providers[i].URL == url
		if c.Providers[i].Active {
			found = true
		}
	}
	if !found && url != "" {
		if name == "" {
			name = "Wallet"
		}
		c.Providers = append(c.Providers, Provider{Name: name, URL: url, Active: true})
	}
}

// Remove drops the endpoint at idx
func (c *Config) Remove(idx int) {
	if idx < 0 || idx >= len(c.Providers) {
		return
	}
	c.Providers = append(c.Providers[:idx], c.Providers[idx+1:]...)
}
