package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/dotcommander/bizlens/internal/scoring"
)

// Config represents the bizlens configuration.
type Config struct {
	Root        string        `mapstructure:"root"`
	Format      string        `mapstructure:"format"`
	Output      string        `mapstructure:"output"`
	Quiet       bool          `mapstructure:"quiet"`
	Verbose     bool          `mapstructure:"verbose"`
	FailUnder   int           `mapstructure:"failUnder"`
	RecencyDays int           `mapstructure:"recencyDays"`
	Weights     WeightsConfig `mapstructure:"weights"`
}

// WeightsConfig mirrors the scoring weight table for file/env override.
// The eight weights must sum to exactly 100; changing that sum is a
// breaking change and is rejected at load time.
type WeightsConfig struct {
	ProfileInfo int `mapstructure:"profileInfo"`
	Reviews     int `mapstructure:"reviews"`
	Photos      int `mapstructure:"photos"`
	Posts       int `mapstructure:"posts"`
	Products    int `mapstructure:"products"`
	Services    int `mapstructure:"services"`
	QAndA       int `mapstructure:"qAndA"`
	Attributes  int `mapstructure:"attributes"`
}

// LoadConfig loads configuration from defaults, config file, environment
// and bound flags.
func LoadConfig(rootPath string) (*Config, error) {
	defaults := scoring.DefaultWeights()
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("failUnder", 0)
	viper.SetDefault("recencyDays", 30)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("weights.profileInfo", defaults.ProfileInfo)
	viper.SetDefault("weights.reviews", defaults.Reviews)
	viper.SetDefault("weights.photos", defaults.Photos)
	viper.SetDefault("weights.posts", defaults.Posts)
	viper.SetDefault("weights.products", defaults.Products)
	viper.SetDefault("weights.services", defaults.Services)
	viper.SetDefault("weights.qAndA", defaults.QAndA)
	viper.SetDefault("weights.attributes", defaults.Attributes)

	configPaths := []string{".bizlensrc.json", ".bizlensrc.yaml", ".bizlensrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	viper.SetEnvPrefix("BIZLENS")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailUnder < 0 || config.FailUnder > 100 {
		return fmt.Errorf("failUnder must be between 0 and 100, got %d", config.FailUnder)
	}

	if config.RecencyDays < 1 {
		return fmt.Errorf("recencyDays must be at least 1, got %d", config.RecencyDays)
	}

	if sum := config.Weights.scoringWeights().Sum(); sum != 100 {
		return fmt.Errorf("category weights must sum to 100, got %d", sum)
	}

	if config.Format != "console" && config.Output == "" {
		return fmt.Errorf("output file is required when format is not 'console'")
	}

	return nil
}

// ScoringConfig converts the loaded configuration into the engine's
// construction-time config. The clock is left as the system clock;
// tests construct scoring.Config directly with a fixed clock.
func (c *Config) ScoringConfig() scoring.Config {
	cfg := scoring.DefaultConfig()
	cfg.Weights = c.Weights.scoringWeights()
	cfg.RecencyWindow = time.Duration(c.RecencyDays) * 24 * time.Hour
	return cfg
}

func (w WeightsConfig) scoringWeights() scoring.Weights {
	return scoring.Weights{
		ProfileInfo: w.ProfileInfo,
		Reviews:     w.Reviews,
		Photos:      w.Photos,
		Posts:       w.Posts,
		Products:    w.Products,
		Services:    w.Services,
		QAndA:       w.QAndA,
		Attributes:  w.Attributes,
	}
}
