package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "~/.config/opsgrid/opsgrid.yaml"

type Config struct {
	Port         int    `yaml:"port"`
	HostKeyDir   string `yaml:"host_key_dir"`
	StatePath    string `yaml:"state_path"`
	TickSeconds  int    `yaml:"tick_seconds"`
	ToastSeconds int    `yaml:"toast_seconds"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Port:         2223,
		HostKeyDir:   filepath.Join(home, ".ssh"),
		StatePath:    filepath.Join(home, ".config", "opsgrid", "state.json"),
		TickSeconds:  1,
		ToastSeconds: 4,
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

func Load(path string) (Config, error) {
	cfg := Default()

	resolved := expandPath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", resolved, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", resolved, err)
	}

	cfg.HostKeyDir = expandPath(cfg.HostKeyDir)
	cfg.StatePath = expandPath(cfg.StatePath)

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", cfg.Port)
	}
	if cfg.TickSeconds < 1 {
		return fmt.Errorf("tick_seconds must be >= 1")
	}
	if cfg.ToastSeconds < 1 {
		return fmt.Errorf("toast_seconds must be >= 1")
	}
	return nil
}
