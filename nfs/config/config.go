package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/newestfile/nfs"
	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem"
	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem/filter"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Search SearchConfig `mapstructure:"search"`
}

// SearchConfig describes a default newest-file search.
type SearchConfig struct {
	Root       string `mapstructure:"root"`
	Pattern    string `mapstructure:"pattern"`
	IgnoreFile string `mapstructure:"ignoreFile"`
	LogLevel   string `mapstructure:"logLevel"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(filepath.Dir(internal.DefaultConfigFile))
		v.SetConfigName(strings.TrimSuffix(filepath.Base(internal.DefaultConfigFile), filepath.Ext(internal.DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	v.SetDefault("search.root", internal.DefaultSearchRoot)
	v.SetDefault("search.pattern", "")
	v.SetDefault("search.ignoreFile", "")
	v.SetDefault("search.logLevel", internal.DefaultLogLevel)

	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // search.pattern becomes SEARCH_PATTERN

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	AppConfig = cfg
	return &cfg, nil
}

// BuildFilter builds the name filter described by the configuration. It
// returns a nil filter when neither a pattern nor an ignore file is set.
func (c *SearchConfig) BuildFilter(fs afero.Fs) (filter.NameFilter, error) {
	var filters []filter.NameFilter

	if c.Pattern != "" {
		pattern, err := filter.CompilePatternNameFilter(c.Pattern)
		if err != nil {
			return nil, err
		}
		filters = append(filters, pattern)
	}

	if c.IgnoreFile != "" {
		ignored, err := filter.LoadIgnoreNameFilter(fs, c.IgnoreFile)
		if err != nil {
			return nil, err
		}
		filters = append(filters, ignored)
	}

	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return filters[0], nil
	default:
		return filter.All(filters...), nil
	}
}

// Logger returns the application logger at the configured level
func (c *SearchConfig) Logger() (zerolog.Logger, error) {
	logger := internal.GetLogger()
	if c.LogLevel == "" {
		return logger.Level(zerolog.InfoLevel), nil
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return logger, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return logger.Level(level), nil
}

// FindNewest runs the configured search over fs. Options are applied after
// the configured filesystem and logger, so callers may override either.
func (c *SearchConfig) FindNewest(fs afero.Fs, opts ...filesystem.Option) (*filesystem.Entry, error) {
	nameFilter, err := c.BuildFilter(fs)
	if err != nil {
		return nil, err
	}

	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	searcher := filesystem.NewFileSearcher(append([]filesystem.Option{
		filesystem.WithFs(fs),
		filesystem.WithLogger(logger),
	}, opts...)...)

	root := c.Root
	if root == "" {
		root = internal.DefaultSearchRoot
	}
	return searcher.FindNewest(root, nameFilter), nil
}
