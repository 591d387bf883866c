package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eringen/themekit"
)

// fileConfig is the YAML shape of a site config file. Secrets may be left
// out of the file and supplied via ADMIN_PASSWORD / SESSION_SECRET instead.
type fileConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`

	Addr         string `yaml:"addr"`
	DatabasePath string `yaml:"database_path"`

	Extension  string              `yaml:"extension"`
	FrontPage  string              `yaml:"front_page"`
	PostTypes  []themekit.PostType `yaml:"post_types"`
	Taxonomies []string            `yaml:"taxonomies"`

	AdminPassword string `yaml:"admin_password"`
	SessionSecret string `yaml:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure"`

	ContentCacheTTL string `yaml:"content_cache_ttl"`
}

// loadConfig reads a YAML site config. A missing file is not an error when
// path is the default; the engine's own defaults apply.
func loadConfig(path string) (themekit.SiteConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == defaultConfigPath {
			return fromEnv(themekit.SiteConfig{}), nil
		}
		return themekit.SiteConfig{}, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return themekit.SiteConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := themekit.SiteConfig{
		Name:          fc.Name,
		URL:           fc.URL,
		Description:   fc.Description,
		Author:        fc.Author,
		Addr:          fc.Addr,
		DatabasePath:  fc.DatabasePath,
		Extension:     fc.Extension,
		FrontPage:     fc.FrontPage,
		PostTypes:     fc.PostTypes,
		Taxonomies:    fc.Taxonomies,
		AdminPassword: fc.AdminPassword,
		SessionSecret: fc.SessionSecret,
		CookieSecure:  fc.CookieSecure,
	}
	if fc.ContentCacheTTL != "" {
		ttl, err := time.ParseDuration(fc.ContentCacheTTL)
		if err != nil {
			return themekit.SiteConfig{}, fmt.Errorf("parse content_cache_ttl: %w", err)
		}
		cfg.ContentCacheTTL = ttl
	}
	return fromEnv(cfg), nil
}

// fromEnv fills secrets from the environment when the file leaves them empty.
func fromEnv(cfg themekit.SiteConfig) themekit.SiteConfig {
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	return cfg
}

const defaultConfigPath = "config.yaml"
