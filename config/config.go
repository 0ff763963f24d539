package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blockme/schemread/decompress"
	"github.com/blockme/schemread/nbt"
	"github.com/blockme/schemread/schematic"
)

type Config struct {
	MaxVolume            int   `yaml:"max_volume"`
	MaxDepth             int   `yaml:"max_depth"`
	LegacyFallthrough    bool  `yaml:"legacy_fallthrough"`
	MaxDecompressedBytes int64 `yaml:"max_decompressed_bytes"`
	CacheSize            int   `yaml:"cache_size"`
	Workers              int   `yaml:"workers"`
}

func Default() Config {
	return Config{
		MaxVolume:            schematic.DefaultMaxVolume,
		MaxDepth:             nbt.DefaultMaxDepth,
		MaxDecompressedBytes: decompress.DefaultMaxBytes,
		CacheSize:            64,
		Workers:              4,
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.MaxVolume < 0:
		return fmt.Errorf("max_volume must not be negative")
	case c.MaxDepth < 0:
		return fmt.Errorf("max_depth must not be negative")
	case c.MaxDecompressedBytes < 0:
		return fmt.Errorf("max_decompressed_bytes must not be negative")
	case c.CacheSize < 1:
		return fmt.Errorf("cache_size must be at least 1")
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1")
	}
	return nil
}

func (c Config) Options(logger *log.Logger) schematic.Options {
	return schematic.Options{
		MaxVolume:         c.MaxVolume,
		MaxDepth:          c.MaxDepth,
		LegacyFallthrough: c.LegacyFallthrough,
		Logger:            logger,
	}
}

func (c Config) Decompressor() decompress.Decompressor {
	return decompress.Auto{MaxBytes: c.MaxDecompressedBytes}
}
