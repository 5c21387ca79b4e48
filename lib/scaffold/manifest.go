// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const baseEnvTemplate = `# Static, non-secret defaults for the local stack.
# Generated values live in the top-level .env file.
POSTGRES_PORT=5432
REDIS_PORT=6379
KAFKA_PORT=9092
RABBITMQ_PORT=5672
GATEWAY_PORT=8080
GRAFANA_PORT=3000
PROMETHEUS_PORT=9090
MINIO_PORT=9000
MAILHOG_HTTP_PORT=8025
`

const prometheusTemplate = `global:
  scrape_interval: 15s

scrape_configs:
  - job_name: gateway
    static_configs:
      - targets: ["localhost:8080"]
  - job_name: prometheus
    static_configs:
      - targets: ["localhost:9090"]
`

const grafanaDatasourceTemplate = `apiVersion: 1

datasources:
  - name: Prometheus
    type: prometheus
    access: proxy
    url: http://localhost:9090
    isDefault: true
`

// DefaultManifest is the built-in desired state: the directory
// skeleton, static service configs, generated credentials, and the
// files derived from them. Ordering matters — derived entries consume
// values published by the secret entries before them.
func DefaultManifest() []Entry {
	return []Entry{
		Dir("config"),
		Dir("config/env"),
		Dir("config/grafana"),
		Dir("data"),
		Dir("data/postgres"),
		Dir("secrets"),

		Template("config/env/base.env", baseEnvTemplate),
		Template("config/prometheus.yml", prometheusTemplate),
		Template("config/grafana/datasource.yml", grafanaDatasourceTemplate),

		Secret("secrets/postgres_password", "postgres_password",
			func() (string, error) { return Password(32) }),
		Secret("secrets/redis_password", "redis_password",
			func() (string, error) { return Password(32) }),
		Secret("secrets/grafana_admin_password", "grafana_admin_password",
			func() (string, error) { return Password(24) }),
		Secret("secrets/jwt_signing_key", "jwt_signing_key", KeyMaterial),

		Derived(".env", deriveDotEnv),
		Derived("secrets/admin.htpasswd", deriveHtpasswd),
	}
}

// deriveDotEnv assembles the top-level .env consumed by compose and
// local tooling, embedding the secrets from this run's value table.
func deriveDotEnv(values map[string]string) ([]byte, error) {
	pairs := map[string]string{
		"COMPOSE_PROJECT_NAME": "groundwork",
		"POSTGRES_USER":        "groundwork",
		"POSTGRES_DB":          "groundwork",
		"GRAFANA_ADMIN_USER":   "admin",
	}
	for key, envName := range map[string]string{
		"postgres_password":      "POSTGRES_PASSWORD",
		"redis_password":         "REDIS_PASSWORD",
		"grafana_admin_password": "GRAFANA_ADMIN_PASSWORD",
		"jwt_signing_key":        "JWT_SIGNING_KEY",
	} {
		value, ok := values[key]
		if !ok {
			return nil, fmt.Errorf("missing secret value %q for .env", key)
		}
		pairs[envName] = value
	}

	content, err := godotenv.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("marshal .env: %w", err)
	}
	return []byte(content + "\n"), nil
}

// deriveHtpasswd produces a bcrypt htpasswd line for the Grafana admin
// user, for fronting the dashboard with basic auth.
func deriveHtpasswd(values map[string]string) ([]byte, error) {
	password, ok := values["grafana_admin_password"]
	if !ok {
		return nil, fmt.Errorf("missing secret value %q for admin.htpasswd", "grafana_admin_password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return []byte("admin:" + string(hash) + "\n"), nil
}

// manifestFile is the YAML shape of a user-supplied manifest. Its
// entries extend the built-in manifest; they cannot remove from it.
type manifestFile struct {
	Directories []string `yaml:"directories"`
	Templates   []struct {
		Path    string `yaml:"path"`
		Content string `yaml:"content"`
	} `yaml:"templates"`
	Secrets []struct {
		Path string `yaml:"path"`

		// Length selects a generated password of that many characters.
		// KeyMaterial selects full-strength hex key material instead.
		Length      int    `yaml:"length"`
		KeyMaterial bool   `yaml:"key_material"`
		ValueKey    string `yaml:"value_key"`
	} `yaml:"secrets"`
}

// LoadManifest parses a user manifest and returns its entries in
// declaration order, grouped directories first, then templates, then
// secrets. Callers append these after the default manifest.
func LoadManifest(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var parsed manifestFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	var entries []Entry
	for _, dir := range parsed.Directories {
		entries = append(entries, Dir(dir))
	}
	for _, tmpl := range parsed.Templates {
		if tmpl.Path == "" {
			return nil, fmt.Errorf("manifest %s: template entry missing path", path)
		}
		entries = append(entries, Template(tmpl.Path, tmpl.Content))
	}
	for _, secret := range parsed.Secrets {
		if secret.Path == "" {
			return nil, fmt.Errorf("manifest %s: secret entry missing path", path)
		}
		if secret.KeyMaterial {
			entries = append(entries, Secret(secret.Path, secret.ValueKey, KeyMaterial))
			continue
		}
		length := secret.Length
		if length <= 0 {
			length = 32
		}
		entries = append(entries, Secret(secret.Path, secret.ValueKey,
			func() (string, error) { return Password(length) }))
	}
	return entries, nil
}
