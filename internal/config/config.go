package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interface is the contract for accessing application configuration,
// allowing injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Generator() GeneratorConfig
	Browser() BrowserConfig

	// Generator setters, driven by CLI flags.
	SetGeneratorPreserveLayout(bool)
	SetGeneratorStrategy(string)

	// Browser setters.
	SetBrowserHeadless(bool)
	SetBrowserTimeout(time.Duration)
}

// Config holds the whole application configuration.
type Config struct {
	Logging LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Gen     GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Browse  BrowserConfig   `mapstructure:"browser" yaml:"browser"`
}

func (c *Config) Logger() LoggerConfig       { return c.Logging }
func (c *Config) Generator() GeneratorConfig { return c.Gen }
func (c *Config) Browser() BrowserConfig     { return c.Browse }

func (c *Config) SetGeneratorPreserveLayout(b bool) { c.Gen.PreserveLayout = b }
func (c *Config) SetGeneratorStrategy(s string)     { c.Gen.Strategy = s }
func (c *Config) SetBrowserHeadless(b bool)         { c.Browse.Headless = b }
func (c *Config) SetBrowserTimeout(d time.Duration) { c.Browse.Timeout = d }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the terminal colors for each log level.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// GeneratorConfig holds settings for the skeleton generation pipeline.
type GeneratorConfig struct {
	// PreserveLayout requests footprint-exact placeholder dimensions.
	PreserveLayout bool `mapstructure:"preserve_layout" yaml:"preserve_layout"`
	// Strategy overrides container analysis: auto, preserve, flexible or
	// minimal.
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// RuleCacheSize bounds the merged-rule memo cache.
	RuleCacheSize int `mapstructure:"rule_cache_size" yaml:"rule_cache_size"`
	// IncludeConstraints copies min/max constraints into placeholder styles.
	IncludeConstraints bool `mapstructure:"include_constraints" yaml:"include_constraints"`
	// PreserveAspectRatio emits aspect-ratio styles when both axes are
	// numeric.
	PreserveAspectRatio bool `mapstructure:"preserve_aspect_ratio" yaml:"preserve_aspect_ratio"`
}

// BrowserConfig holds settings for the live-capture element source.
type BrowserConfig struct {
	Headless bool          `mapstructure:"headless" yaml:"headless"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Selector picks the scan root inside a captured page.
	Selector string `mapstructure:"selector" yaml:"selector"`
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with the defaults above.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "skelgen-cli")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Generator --
	v.SetDefault("generator.preserve_layout", true)
	v.SetDefault("generator.strategy", "auto")
	v.SetDefault("generator.rule_cache_size", 32)
	v.SetDefault("generator.include_constraints", true)
	v.SetDefault("generator.preserve_aspect_ratio", false)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.timeout", "30s")
	v.SetDefault("browser.selector", "body")
}
