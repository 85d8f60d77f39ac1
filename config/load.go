package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GOTA_"

type fileSettings struct {
	Compat   string         `yaml:"compat"`
	Unstable map[string]int `yaml:"unstable"`
}

// Parse decodes a YAML settings document. Missing keys keep their defaults;
// "all" is applied before individual entries.
func Parse(data []byte) (Settings, error) {
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s := DefaultSettings()
	if fs.Compat != "" {
		c, err := ParseCompat(fs.Compat)
		if err != nil {
			return Settings{}, err
		}
		s.Compat = c
	}
	if p, ok := fs.Unstable[UnstAll.String()]; ok {
		s = s.WithUnstable(UnstAll, p)
	}
	for name, p := range fs.Unstable {
		id, err := ParseUnstableID(name)
		if err != nil {
			return Settings{}, err
		}
		if id == UnstAll {
			continue
		}
		s = s.WithUnstable(id, p)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile reads and parses a YAML settings file.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// LoadEnv loads the optional .env files and overlays GOTA_COMPAT and
// GOTA_UNSTABLE_<ID> (e.g. GOTA_UNSTABLE_RSI=10) onto base.
func LoadEnv(base Settings, files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			// A missing file is not an error.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return overlay(base, os.Getenv)
}

func overlay(base Settings, getenv func(string) string) (Settings, error) {
	s := base
	if v := getenv(EnvPrefix + "COMPAT"); v != "" {
		c, err := ParseCompat(v)
		if err != nil {
			return Settings{}, err
		}
		s.Compat = c
	}
	apply := func(id UnstableID) error {
		key := EnvPrefix + "UNSTABLE_" + strings.ToUpper(id.String())
		v := getenv(key)
		if v == "" {
			return nil
		}
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		s = s.WithUnstable(id, p)
		return nil
	}
	if err := apply(UnstAll); err != nil {
		return Settings{}, err
	}
	for id := UnstADX; id < UnstAll; id++ {
		if err := apply(id); err != nil {
			return Settings{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
