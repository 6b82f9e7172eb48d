package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseProfile      = "base"
)

// ErrInvalidProfile is returned by Load for empty profiles and profiles that
// would escape the config directory.
var ErrInvalidProfile = errors.New("invalid config profile")

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// Load builds the configuration for profile. Later layers win:
//
//	defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	APP_* environment variables
//
// Environment names are matched against the keys already loaded, so
// APP_CLIENT_RETRY_MAX_ATTEMPTS sets client.retry.max_attempts rather than
// client.retry.max.attempts.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("default %s: %w", key, err)
		}
	}

	for _, name := range []string{baseProfile, profile} {
		path := filepath.Join(o.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}
	return &cfg, nil
}

func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: empty", ErrInvalidProfile)
	case profile == baseProfile:
		return fmt.Errorf("%w: %q is always loaded", ErrInvalidProfile, profile)
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("%w: %q leaves the config directory", ErrInvalidProfile, profile)
	}
	return nil
}

// envProvider maps APP_* variables onto the known dotted keys. Unknown
// variables fall back to treating every underscore as a separator.
func envProvider(known []string) koanf.Provider {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := byEnvName[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}
