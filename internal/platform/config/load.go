package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	kfs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option adjusts where Load reads its YAML layers from.
type Option func(*sources)

// sources locates base.yaml and the profile files, either in a directory
// on disk or inside an fs.FS.
type sources struct {
	dir  string
	fsys fs.FS
}

func (s sources) provider(name string) (koanf.Provider, string) {
	if s.fsys != nil {
		p := path.Join(s.dir, name)
		return kfs.Provider(s.fsys, p), p
	}
	p := filepath.Join(s.dir, name)
	return file.Provider(p), p
}

// WithConfigDir reads YAML from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(s *sources) { s.dir = dir }
}

// WithConfigFS reads YAML from fsys, e.g. an embed.FS, still under the
// configs directory unless WithConfigDir names another.
func WithConfigFS(fsys fs.FS) Option {
	return func(s *sources) { s.fsys = fsys }
}

// Load layers, lowest precedence first: compiled defaults, base.yaml,
// <profile>.yaml, then APP_ environment variables. Env names map onto
// existing keys first, so APP_SERVER_READ_TIMEOUT sets server.read_timeout
// rather than server.read.timeout.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}
	src := sources{dir: "configs"}
	for _, opt := range opts {
		opt(&src)
	}

	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base.yaml", profile + ".yaml"} {
		p, where := src.provider(name)
		if err := k.Load(p, yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", where, err)
		}
	}

	known := envKeys(k.Keys())
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// checkProfile keeps the profile name from escaping the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}

// envKeys indexes dotted keys by their underscore form.
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}
