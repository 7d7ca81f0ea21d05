// Package config resolves the connection defaults for the probe. Values may
// come from an optional YAML file and from NETSCALER_* environment variables;
// command-line flags override both.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Settings holds the connection parameters shared by every check.
type Settings struct {
	Host       string        `yaml:"hostname" envconfig:"HOSTNAME"`
	Port       int           `yaml:"port" envconfig:"PORT"`
	Username   string        `yaml:"username" envconfig:"USERNAME"`
	Password   string        `yaml:"password" envconfig:"PASSWORD"`
	SSL        bool          `yaml:"ssl" envconfig:"SSL"`
	Insecure   bool          `yaml:"insecure" envconfig:"INSECURE"`
	APIVersion string        `yaml:"api_version" envconfig:"API_VERSION"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Username:   "nsroot",
		Password:   "nsroot",
		SSL:        true,
		APIVersion: "v1",
		Timeout:    15 * time.Second,
	}
}

// Load reads the optional config file at path and applies environment
// overrides on top. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := envconfig.Process("netscaler", &s); err != nil {
		return Settings{}, fmt.Errorf("read environment: %w", err)
	}
	return s, nil
}
