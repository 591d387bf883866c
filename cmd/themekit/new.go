package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `# themekit site configuration
name: My Site
url: http://localhost:3000
description: ""
author: ""

addr: ":3000"
database_path: data/content.db

# Template suffix applied to every candidate name.
extension: twig

# Name of the page served at "/". Leave empty for a blog-style home.
front_page: ""

post_types:
  - name: post
  - name: page
  - name: attachment
  # - name: product
  #   has_archive: true

taxonomies: []
#  - genre

# Secrets may live here or in ADMIN_PASSWORD / SESSION_SECRET env vars.
admin_password: ""
session_secret: ""
cookie_secure: false

content_cache_ttl: 5m
`

// runNew writes a starter config.yaml into dir.
func runNew(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, defaultConfigPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
