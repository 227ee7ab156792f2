package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/meguca/geolocdb/internal/geodb"
	iviper "github.com/meguca/geolocdb/internal/viper"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Fetch holds the settings of the fetch command.
type Fetch struct {
	URL         string        `mapstructure:"url"`
	Output      string        `mapstructure:"output"`
	MaxAttempts int           `mapstructure:"max-attempts"`
	RetryWait   time.Duration `mapstructure:"retry-wait"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Start       string        `mapstructure:"start"`
	NoProgress  bool          `mapstructure:"no-progress"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Fetch {
	return Fetch{
		URL:     geodb.DefaultURL,
		Output:  geodb.DefaultOutput,
		Timeout: 10 * time.Minute,
	}
}

// Load resolves the fetch settings. Explicitly set flags take precedence over
// GEOLOCDB_* environment variables, which take precedence over the config
// file, which takes precedence over the flag defaults.
// The config file is either given by configFile or looked up as .geolocdb.*
// in the working directory and the user's home.
func Load(flags *pflag.FlagSet, configFile string) (Fetch, error) {
	v := iviper.New()
	if err := iviper.BindPFlags(v, flags); err != nil {
		return Fetch{}, err
	}

	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	if err := iviper.ReadInConfig(v, configFile, paths...); err != nil {
		return Fetch{}, fmt.Errorf("failed to read config: %w", err)
	}

	var c Fetch
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := iviper.Unmarshal(v, &c, hook); err != nil {
		return Fetch{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return c, c.Validate()
}

// Validate checks c for values the fetcher cannot work with.
func (c Fetch) Validate() error {
	if c.URL == "" {
		return errors.New("no URL specified")
	}
	if c.Output == "" {
		return errors.New("no output file specified")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max-attempts must not be negative, got %d", c.MaxAttempts)
	}
	if c.RetryWait < 0 {
		return fmt.Errorf("retry-wait must not be negative, got %s", c.RetryWait)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Start != "" {
		if _, err := geodb.ParsePeriod(c.Start); err != nil {
			return err
		}
	}

	return nil
}

// Options converts c into fetcher options. showProgress is whether the
// output is attached to a terminal.
func (c Fetch) Options(showProgress bool) (geodb.Options, error) {
	var start geodb.Period
	if c.Start != "" {
		p, err := geodb.ParsePeriod(c.Start)
		if err != nil {
			return geodb.Options{}, err
		}
		start = p
	}

	return geodb.Options{
		URL:         c.URL,
		Output:      c.Output,
		Start:       start,
		MaxAttempts: c.MaxAttempts,
		RetryWait:   c.RetryWait,
		Timeout:     c.Timeout,
		Progress:    showProgress && !c.NoProgress,
	}, nil
}

// AddFlags registers the fetch settings as flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("url", d.URL, "URL of the database. {year} and {month} are replaced with the release being requested.")
	fs.StringP("output", "o", d.Output, "Write the database to this file.")
	fs.Int("max-attempts", d.MaxAttempts, "Give up after this many 'not found' responses. 0 retries forever.")
	fs.Duration("retry-wait", d.RetryWait, "Pause between two attempts.")
	fs.Duration("timeout", d.Timeout, "Timeout of a single request, including the download.")
	fs.String("start", d.Start, "Release (YYYY-MM) to request first. Defaults to the current month.")
	fs.Bool("no-progress", d.NoProgress, "Disable the progress bar.")
}
