package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "LUCKY_DRAW_"

// Config is the draw configuration
// Sources apply in order: defaults, YAML file, environment (a .env file seeds the environment)
type Config struct {
	MaxReelItems int           `yaml:"max_reel_items" env:"MAX_REEL_ITEMS"`
	RemoveWinner bool          `yaml:"remove_winner" env:"REMOVE_WINNER"`
	ItemDuration time.Duration `yaml:"item_duration" env:"ITEM_DURATION"`
	// MaxRetries bounds automatic re-spins after an excluded winner per request
	MaxRetries int `yaml:"max_retries" env:"MAX_RETRIES"`

	Names []string `yaml:"names" env:"NAMES" envSeparator:";"`
	// NamesFile holds one name per line; relative paths resolve against the config file
	NamesFile string   `yaml:"names_file" env:"NAMES_FILE"`
	Exclude   []string `yaml:"exclude" env:"EXCLUDE" envSeparator:";"`

	Sound  bool   `yaml:"sound" env:"SOUND"`
	LogDir string `yaml:"log_dir" env:"LOG_DIR"`
}

// Default returns the configuration used when no source sets a field
func Default() Config {
	return Config{
		MaxReelItems: 30,
		RemoveWinner: true,
		ItemDuration: 100 * time.Millisecond,
		MaxRetries:   100,
		Sound:        true,
		LogDir:       "logs",
	}
}

// Load builds a Config from defaults, the dotenv file, the YAML file and the environment
// Missing dotenv or YAML files are not errors; names from NamesFile are appended to Names
func Load(path, dotenv string) (*Config, error) {
	cfg := Default()

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	baseDir := "."
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			baseDir = filepath.Dir(path)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.NamesFile != "" {
		namesPath := cfg.NamesFile
		if !filepath.IsAbs(namesPath) {
			namesPath = filepath.Join(baseDir, namesPath)
		}
		names, err := ReadNames(namesPath)
		if err != nil {
			return nil, err
		}
		cfg.Names = append(cfg.Names, names...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the draw cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.MaxReelItems < 1 {
		errs = append(errs, fmt.Errorf("max_reel_items must be at least 1, got %d", c.MaxReelItems))
	}
	if c.ItemDuration <= 0 {
		errs = append(errs, fmt.Errorf("item_duration must be positive, got %s", c.ItemDuration))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max_retries must not be negative, got %d", c.MaxRetries))
	}
	return errors.Join(errs...)
}

// ReadNames reads one name per line, skipping blank lines and lines starting with '#'
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names file %s: %w", path, err)
	}
	return names, nil
}
