package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hailam/randfile/internal/adapters/txt"
)

const (
	DefaultOutput = "500MB_random.txt"
	DefaultSize   = "1000"

	EnvPrefix = "RANDFILE"
)

// Config holds everything a run needs. Flags override environment
// variables, which override the config file.
type Config struct {
	Output    string
	Size      string
	ChunkSize int
	Seed      uint64
	Quiet     bool
	Verbose   bool
}

// New returns a viper instance with defaults and RANDFILE_* environment
// lookups in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("size", DefaultSize)
	v.SetDefault("chunk-size", txt.DefaultChunkSize)
	v.SetDefault("seed", 0)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags adds config-related flags to cmd and binds them to v.
func AddFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	flags.StringP("output", "o", DefaultOutput, "Path to the output file")
	flags.StringP("size", "s", DefaultSize, "Target size in megabytes (e.g., 500, 500MB, 2G)")
	flags.Int("chunk-size", txt.DefaultChunkSize, "Bytes generated and written per iteration (at most 1048576)")
	flags.Uint64("seed", 0, "Seed for reproducible content (0 picks a random seed)")
	flags.BoolP("quiet", "q", false, "Do not print progress")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("config", "", "Path to config file (YAML, JSON or TOML)")

	for _, name := range []string{"output", "size", "chunk-size", "seed", "quiet", "verbose", "config"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file and returns the merged configuration.
func Load(v *viper.Viper) (Config, error) {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(filepath.Clean(cfgFile))
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Output:    v.GetString("output"),
		Size:      v.GetString("size"),
		ChunkSize: v.GetInt("chunk-size"),
		Seed:      v.GetUint64("seed"),
		Quiet:     v.GetBool("quiet"),
		Verbose:   v.GetBool("verbose"),
	}
	if cfg.Output == "" {
		return Config{}, fmt.Errorf("output path must not be empty")
	}
	if err := txt.ValidateChunkSize(cfg.ChunkSize); err != nil {
		return Config{}, fmt.Errorf("invalid chunk-size: %w", err)
	}
	return cfg, nil
}
