// Package config loads layered runtime settings.
//
// Settings come from a TOML file with one table per environment. The
// `default` table is always applied, then the table named by the
// `<prefix>ENV` variable, then any `<prefix>*` environment variables.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	koanffs "github.com/knadh/koanf/providers/fs"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

const (
	defaultEnv          = "default"
	defaultEnvPrefix    = "CFG_"
	defaultSettingsPath = "data/settings.toml"

	// path delimiter inside koanf, and between words of an env var name
	delim    = "."
	envDelim = "_"

	envVarName = "ENV"
)

type options struct {
	envPrefix string
	filepath  string
}

// Option is an option func for NewConfiguration.
type Option func(options *options)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(options *options) {
		options.envPrefix = prefix
	}
}

// WithFilePath sets the path of the TOML file within the file system.
func WithFilePath(path string) Option {
	return func(options *options) {
		options.filepath = path
	}
}

// Configuration is a read-only view of the merged settings.
type Configuration struct {
	k   *koanf.Koanf
	env string
}

// NewConfigurationFromMap builds a Configuration from a flat map with dotted keys.
func NewConfigurationFromMap(cfg map[string]any) (*Configuration, error) {
	k := koanf.New(delim)
	if err := k.Load(confmap.Provider(cfg, delim), nil); err != nil {
		return nil, persistent(err)
	}
	return &Configuration{k: k, env: defaultEnv}, nil
}

// NewConfiguration reads settings from f and the environment.
// A nil f means environment variables only.
func NewConfiguration(f fs.FS, opts ...Option) (*Configuration, error) {
	options := options{
		envPrefix: defaultEnvPrefix,
		filepath:  defaultSettingsPath,
	}
	for _, opt := range opts {
		opt(&options)
	}

	environment := os.Getenv(options.envPrefix + envVarName)
	if environment == "" {
		environment = defaultEnv
	}

	merged := koanf.New(delim)
	if f != nil {
		top := koanf.New(delim)
		if err := top.Load(koanffs.Provider(f, options.filepath), toml.Parser()); err != nil {
			return nil, persistent(err)
		}

		tables := []string{defaultEnv}
		if environment != defaultEnv {
			tables = append(tables, environment)
		}
		for _, table := range tables {
			settings, ok := top.Get(table).(map[string]any)
			if !ok {
				return nil, persistent(fmt.Errorf("environment settings for '%s' not found", table))
			}
			if err := merged.Load(confmap.Provider(settings, delim), nil); err != nil {
				return nil, persistent(err)
			}
		}
	}

	if err := merged.Load(env.Provider(options.envPrefix, delim, envToKey(options.envPrefix)), nil); err != nil {
		return nil, persistent(err)
	}

	return &Configuration{k: merged, env: environment}, nil
}

// Unmarshal fills a from the settings rooted at path. Fields without a
// setting keep their current value.
func (c Configuration) Unmarshal(path string, a any) error {
	if err := c.k.Unmarshal(path, a); err != nil {
		return persistent(err)
	}
	return nil
}

// Environment returns the name of the environment in effect.
func (c Configuration) Environment() string {
	return c.env
}

// envToKey maps e.g. `CFG_DISPATCH_A` to `dispatch.a`.
func envToKey(prefix string) func(string) string {
	return func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), envDelim, delim)
	}
}

func persistent(err error) error {
	return errclass.WrapAs(stacktrace.Wrap(err), errclass.Persistent)
}
