package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load applies KEY=value pairs from the given .env files (default ".env") to
// the process environment without overriding variables already set. A missing
// file is reported but is not fatal to callers: every setting has a default.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// GetEnv returns the setting named by key (PORT, LOG_LEVEL, STORE_DRIVER, ...)
// or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the numeric setting named by key (e.g. MAX_FRAME_COUNT).
// Unset, empty or non-integer values yield fallback.
func GetEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// AnimationEntry is one animation to register at startup.
type AnimationEntry struct {
	ID         string `yaml:"id"`
	FramePath  string `yaml:"frame_path"`
	FrameCount int    `yaml:"frame_count"`
}

// AnimationsFile is the layout of the YAML file named by ANIMATIONS_FILE.
type AnimationsFile struct {
	Animations []AnimationEntry `yaml:"animations"`
}

// LoadAnimations reads and parses the animations file at path.
// Frame paths are validated later, at registration.
func LoadAnimations(path string) ([]AnimationEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read animations file %s: %w", path, err)
	}
	var f AnimationsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse animations file %s: %w", path, err)
	}
	for i, a := range f.Animations {
		if a.ID == "" {
			return nil, fmt.Errorf("animations file %s: entry %d: id is required", path, i)
		}
	}
	return f.Animations, nil
}
