package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"contestlens/analyzer/internal/analysis"
	"contestlens/analyzer/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Codeforces CodeforcesConfig `mapstructure:"codeforces"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	StaticDir  string `mapstructure:"static_dir"`
	SamplePath string `mapstructure:"sample_path"`
}

// Addr returns the listen address, e.g. "localhost:5000".
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CodeforcesConfig holds Codeforces API configuration
type CodeforcesConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// DatabaseConfig holds the SQLite database location
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AnalysisConfig holds the analysis output path plus the rating bands
// and tag table. Both tables are data, not code: a config file can
// replace them wholesale, otherwise the built-in defaults apply.
type AnalysisConfig struct {
	OutputPath    string                `mapstructure:"output_path"`
	Bands         []domain.RatingBand   `mapstructure:"bands"`
	TagCategories []analysis.TagMapping `mapstructure:"tag_categories"`
}

// Load loads configuration from config.yaml with environment variable
// overrides. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if len(config.Analysis.Bands) == 0 {
		config.Analysis.Bands = analysis.DefaultRatingBands()
	}
	if len(config.Analysis.TagCategories) == 0 {
		config.Analysis.TagCategories = analysis.DefaultTagMappings()
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.static_dir", "web/static")
	viper.SetDefault("server.sample_path", "web/sample_output.json")

	viper.SetDefault("codeforces.base_url", "https://codeforces.com/api")
	viper.SetDefault("codeforces.timeout", 30)
	viper.SetDefault("codeforces.max_retries", 3)
	viper.SetDefault("codeforces.max_requests_per_second", 1)

	viper.SetDefault("database.path", "data/codeforces.db")

	viper.SetDefault("analysis.output_path", "data/analysis.json")
}
