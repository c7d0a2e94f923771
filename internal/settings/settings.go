// Package settings loads run settings from a settings file, WRAPGEN_*
// environment variables and command line flags, in increasing precedence.
// Environment variables may also come from .env.local and .env files in the
// working directory; variables already set are kept.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WRAPGEN_SOURCE_ROOT.
const EnvPrefix = "WRAPGEN"

// Setting keys.
const (
	KeySourceRoot       = "source_root"
	KeyWrapperRoot      = "wrapper_root"
	KeyPackageInfo      = "package_info"
	KeyDeclarations     = "declarations"
	KeyHeaderCollection = "header_collection"
	KeyParallelism      = "parallelism"
	KeyVerbose          = "verbose"
)

// ErrNoPackageInfo is returned when no package document is configured.
var ErrNoPackageInfo = errors.New("package info path is not set")

// Settings holds the inputs and outputs of one run.
type Settings struct {
	// SourceRoot is the root of the C++ sources; configured paths are
	// relative to it.
	SourceRoot string `mapstructure:"source_root"`
	// WrapperRoot receives generated files. Defaults to SourceRoot.
	WrapperRoot string `mapstructure:"wrapper_root"`
	// PackageInfo is the package document.
	PackageInfo string `mapstructure:"package_info"`
	// Declarations is the declaration dump. Relative file paths in the dump
	// are taken relative to SourceRoot.
	Declarations string `mapstructure:"declarations"`
	// HeaderCollection is the header collection file name under WrapperRoot.
	HeaderCollection string `mapstructure:"header_collection"`
	Parallelism      int    `mapstructure:"parallelism"`
	Verbose          bool   `mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		SourceRoot:       ".",
		HeaderCollection: "wrapper_header_collection.hpp",
		Parallelism:      runtime.GOMAXPROCS(0),
	}
}

// Load reads settings. path names an optional YAML settings file; flags, when
// non-nil, are bound by key so that flags set on the command line win over the
// file and the environment.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	if err := loadEnvFiles("."); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault(KeySourceRoot, def.SourceRoot)
	v.SetDefault(KeyWrapperRoot, def.WrapperRoot)
	v.SetDefault(KeyPackageInfo, def.PackageInfo)
	v.SetDefault(KeyDeclarations, def.Declarations)
	v.SetDefault(KeyHeaderCollection, def.HeaderCollection)
	v.SetDefault(KeyParallelism, def.Parallelism)
	v.SetDefault(KeyVerbose, def.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{
			KeySourceRoot, KeyWrapperRoot, KeyPackageInfo, KeyDeclarations,
			KeyHeaderCollection, KeyParallelism, KeyVerbose,
		} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	s.normalize()

	return s, nil
}

// loadEnvFiles loads .env.local then .env from dir when present.
func loadEnvFiles(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return nil
}

func (s *Settings) normalize() {
	if s.SourceRoot == "" {
		s.SourceRoot = "."
	}

	if abs, err := filepath.Abs(s.SourceRoot); err == nil {
		s.SourceRoot = abs
	}

	if s.WrapperRoot == "" {
		s.WrapperRoot = s.SourceRoot
	}

	if s.Parallelism < 1 {
		s.Parallelism = 1
	}
}

// Validate reports settings that make a run impossible.
func (s *Settings) Validate() error {
	if s.PackageInfo == "" {
		return ErrNoPackageInfo
	}

	return nil
}
