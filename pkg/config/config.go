package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
	"github.com/stocklens/stocklens/pkg/util"
)

const DefaultBind = ":8080"

const DefaultSymbol = "AAPL"

// Config drives one stocklens process. Fields left out of the file
// keep the defaults from Default.
type Config struct {
	Source   SourceConfig   `json:"source" yaml:"source"`
	Analyzer AnalyzerConfig `json:"analyzer" yaml:"analyzer"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

type SourceConfig struct {
	Name      string         `json:"name" yaml:"name"`
	Proxy     string         `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	Timeout   types.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RateLimit string         `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`

	// Path points the csv source at its bar file or directory. The
	// network sources ignore it.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Options converts the section into datasource constructor options.
func (c SourceConfig) Options() datasource.Options {
	return datasource.Options{
		Proxy:     c.Proxy,
		Timeout:   c.Timeout.Duration(),
		RateLimit: c.RateLimit,
		Path:      c.Path,
	}
}

type AnalyzerConfig struct {
	Symbol   string           `json:"symbol" yaml:"symbol"`
	Period   types.Period     `json:"period" yaml:"period"`
	Interval types.Interval   `json:"interval" yaml:"interval"`
	Windows  analyzer.Windows `json:"windows" yaml:"windows"`
}

type ServerConfig struct {
	Bind string `json:"bind" yaml:"bind"`
}

func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Name:    datasource.DefaultSource,
			Timeout: types.Duration(30 * time.Second),
		},
		Analyzer: AnalyzerConfig{
			Symbol:   DefaultSymbol,
			Period:   types.Period1mo,
			Interval: types.Interval1d,
			Windows:  analyzer.DefaultWindows(),
		},
		Server: ServerConfig{
			Bind: DefaultBind,
		},
	}
}

// Load reads the config file over the defaults. An empty path skips
// the file and the defaults serve alone. Environment variables win
// over both.
func Load(configFile string) (*Config, error) {
	config := Default()

	if configFile != "" {
		content, err := os.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// deploy time overrides
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("STOCKLENS_SOURCE"); ok {
		c.Source.Name = v
	}

	if v, ok := os.LookupEnv("STOCKLENS_SOURCE_PATH"); ok {
		c.Source.Path = v
	}

	if v, ok := os.LookupEnv("STOCKLENS_PROXY"); ok {
		c.Source.Proxy = v
	}

	if v, ok := os.LookupEnv("STOCKLENS_BIND"); ok {
		c.Server.Bind = v
	}
}

func (c *Config) Validate() error {
	if _, ok := types.SupportedPeriods[c.Analyzer.Period]; !ok {
		return errors.Errorf("unsupported period %q", c.Analyzer.Period)
	}

	if _, ok := types.SupportedIntervals[c.Analyzer.Interval]; !ok {
		return errors.Errorf("unsupported interval %q", c.Analyzer.Interval)
	}

	if err := c.Analyzer.Windows.Validate(); err != nil {
		return err
	}

	if c.Source.RateLimit != "" {
		if _, err := util.ParseRateLimitSyntax(c.Source.RateLimit); err != nil {
			return errors.Wrapf(err, "invalid rate limit %q", c.Source.RateLimit)
		}
	}

	if c.Server.Bind == "" {
		return errors.New("server bind address can not be empty")
	}

	return nil
}
