package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/provider"
)

// Config is the parsed synthesis manifest.
type Config struct {
	// Version is the manifest format version, currently "1.0".
	Version     string             `yaml:"version" json:"version"`
	Vocabulary  VocabularyConfig   `yaml:"vocabulary" json:"vocabulary"`
	Datasources []DatasourceConfig `yaml:"datasources" json:"datasources"`

	// dir is the manifest's directory; relative file paths resolve against it.
	dir string
}

// VocabularyConfig locates the canonical variable vocabulary.
type VocabularyConfig struct {
	// VariablesFile is the CSV of canonical observed property variables.
	VariablesFile string `yaml:"variables_file" json:"variables_file"`
}

// DatasourceConfig declares one data source and its mapping table.
type DatasourceConfig struct {
	ID string `yaml:"id" json:"id"`
	// IDPrefix defaults to ID.
	IDPrefix string `yaml:"id_prefix,omitempty" json:"id_prefix,omitempty"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	// MappingFile is the CSV mapping table for this datasource.
	MappingFile string `yaml:"mapping_file" json:"mapping_file"`
	// Credentials is an opaque bag handed to the provider implementation.
	// Values support ${VAR} environment expansion.
	Credentials map[string]string `yaml:"credentials,omitempty" json:"credentials,omitempty"`
}

// DataSource converts the declaration to a provider.DataSource.
func (d DatasourceConfig) DataSource() provider.DataSource {
	return provider.DataSource{
		ID:          d.ID,
		IDPrefix:    d.IDPrefix,
		Name:        d.Name,
		Location:    d.Location,
		Credentials: d.Credentials,
	}
}

// Validate checks the manifest semantically: version, required fields, and
// datasource id uniqueness. The schema check in Loader.LoadFile runs first
// and catches structural problems; Validate catches the rest.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return errors.WrapFatal(
			fmt.Errorf("%w: unsupported manifest version %q", errors.ErrInvalidConfig, c.Version),
			"Config", "Validate", "version check")
	}
	if c.Vocabulary.VariablesFile == "" {
		return errors.WrapFatal(
			fmt.Errorf("%w: vocabulary.variables_file", errors.ErrMissingConfig),
			"Config", "Validate", "vocabulary check")
	}
	if len(c.Datasources) == 0 {
		return errors.WrapFatal(
			fmt.Errorf("%w: at least one datasource is required", errors.ErrMissingConfig),
			"Config", "Validate", "datasource check")
	}
	seen := make(map[string]bool)
	for i, ds := range c.Datasources {
		if ds.ID == "" {
			return errors.WrapFatal(
				fmt.Errorf("%w: datasources[%d].id", errors.ErrMissingConfig, i),
				"Config", "Validate", "datasource check")
		}
		if seen[ds.ID] {
			return errors.WrapFatal(
				fmt.Errorf("%w: duplicate datasource id %q", errors.ErrInvalidConfig, ds.ID),
				"Config", "Validate", "datasource check")
		}
		seen[ds.ID] = true
		if ds.MappingFile == "" {
			return errors.WrapFatal(
				fmt.Errorf("%w: datasources[%d].mapping_file", errors.ErrMissingConfig, i),
				"Config", "Validate", "datasource check")
		}
	}
	return nil
}

// resolve turns a manifest-relative path into an absolute one.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Loader reads manifests from disk.
type Loader struct {
	lookupEnv func(string) (string, bool)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvLookup replaces the environment used for ${VAR} expansion, for
// tests.
func WithEnvLookup(lookup func(string) (string, bool)) LoaderOption {
	return func(l *Loader) { l.lookupEnv = lookup }
}

// NewLoader creates a manifest loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads, expands, schema-checks, parses, and validates a manifest.
// An unset ${VAR} reference is a fatal configuration error rather than an
// empty string, so missing credentials fail fast.
func (l *Loader) LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "Loader", "LoadFile", "read manifest")
	}
	cfg, err := l.Load(raw)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Load parses a manifest from bytes. Relative file paths resolve against the
// current directory; prefer LoadFile for on-disk manifests.
func (l *Loader) Load(raw []byte) (*Config, error) {
	expanded, err := l.expand(string(raw))
	if err != nil {
		return nil, err
	}
	if err := validateSchema([]byte(expanded)); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapFatal(err, "Loader", "Load", "parse manifest YAML")
	}
	for i := range cfg.Datasources {
		if cfg.Datasources[i].IDPrefix == "" {
			cfg.Datasources[i].IDPrefix = cfg.Datasources[i].ID
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expand substitutes ${VAR} and $VAR references from the environment.
func (l *Loader) expand(s string) (string, error) {
	var missing []string
	expanded := os.Expand(s, func(name string) string {
		if v, ok := l.lookupEnv(name); ok {
			return v
		}
		missing = append(missing, name)
		return ""
	})
	if len(missing) > 0 {
		return "", errors.WrapFatal(
			fmt.Errorf("%w: environment variables not set: %v", errors.ErrMissingConfig, missing),
			"Loader", "Load", "environment expansion")
	}
	return expanded, nil
}

// SafeConfig provides thread-safe access to a Config for hosts that reload
// the manifest at runtime.
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig wraps a validated Config.
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = &Config{}
	}
	return &SafeConfig{config: cfg}
}

// Get returns the current configuration.
func (sc *SafeConfig) Get() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update atomically replaces the configuration after validating it.
func (sc *SafeConfig) Update(cfg *Config) error {
	if cfg == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "SafeConfig", "Update", "nil config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
	return nil
}
