// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// FormatPNG is the only supported output format.
const FormatPNG = "png"

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Viewport() ViewportConfig
	Render() RenderConfig

	// Render Setters
	SetRenderHTMLPath(string)
	SetRenderCSSPath(string)
	SetRenderOutput(string)
	SetRenderFormat(string)

	// Viewport Setters
	SetViewportSize(width, height int)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	ViewportCfg ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	RenderCfg   RenderConfig   `mapstructure:"render" yaml:"render"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Viewport() ViewportConfig { return c.ViewportCfg }
func (c *Config) Render() RenderConfig     { return c.RenderCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetRenderHTMLPath(p string) { c.RenderCfg.HTMLPath = p }
func (c *Config) SetRenderCSSPath(p string)  { c.RenderCfg.CSSPath = p }
func (c *Config) SetRenderOutput(p string)   { c.RenderCfg.Output = p }
func (c *Config) SetRenderFormat(f string)   { c.RenderCfg.Format = f }

func (c *Config) SetViewportSize(width, height int) {
	c.ViewportCfg.Width = width
	c.ViewportCfg.Height = height
}

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

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// ViewportConfig is the size of the initial containing block, in pixels.
type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// RenderConfig names the input documents and the output image.
type RenderConfig struct {
	HTMLPath string `mapstructure:"html" yaml:"html"`
	CSSPath  string `mapstructure:"css" yaml:"css"`
	Output   string `mapstructure:"output" yaml:"output"`
	Format   string `mapstructure:"format" yaml:"format"`
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "gozilla")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "red")

	// -- Viewport --
	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)

	// -- Render --
	v.SetDefault("render.html", "examples/test.html")
	v.SetDefault("render.css", "examples/test.css")
	v.SetDefault("render.output", "output.png")
	v.SetDefault("render.format", FormatPNG)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.BindEnv("render.output", "GOZILLA_OUTPUT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values. Every
// problem is reported, not just the first.
func (c *Config) Validate() error {
	var errs error

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LoggerCfg.Level)); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("logger.level %q is not a valid level", c.LoggerCfg.Level))
	}
	if c.LoggerCfg.Format != "console" && c.LoggerCfg.Format != "json" {
		errs = multierr.Append(errs, fmt.Errorf("logger.format must be \"console\" or \"json\""))
	}
	if c.ViewportCfg.Width <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("viewport.width must be a positive integer"))
	}
	if c.ViewportCfg.Height <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("viewport.height must be a positive integer"))
	}
	if err := c.RenderCfg.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("render configuration invalid: %w", err))
	}
	return errs
}

// Validate checks the render configuration.
func (r *RenderConfig) Validate() error {
	var errs error
	if r.HTMLPath == "" {
		errs = multierr.Append(errs, fmt.Errorf("render.html is required"))
	}
	if r.CSSPath == "" {
		errs = multierr.Append(errs, fmt.Errorf("render.css is required"))
	}
	if r.Output == "" {
		errs = multierr.Append(errs, fmt.Errorf("render.output is required"))
	}
	if r.Format != FormatPNG {
		errs = multierr.Append(errs, fmt.Errorf("unknown output format: %q", r.Format))
	}
	return errs
}
