// Package viper provides convenience functions over the official spf13/viper library.
// In particular, it satisfies the need of providing custom pre-configured viper instances.
package viper

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable geolocdb reads.
const EnvPrefix = "GEOLOCDB"

// ConfigName is the name of the config file, without extension.
const ConfigName = ".geolocdb"

// New returns a viper instance that reads GEOLOCDB_* environment variables.
// Dashes in keys map to underscores, e.g. max-attempts is read from
// GEOLOCDB_MAX_ATTEMPTS.
func New() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindPFlags binds every flag in the set to the key of the same name.
// Example (where fetchCmd is a Cobra instance):
//
//	fetchCmd.Flags().Int("max-attempts", 0, "...")
//	BindPFlags(v, fetchCmd.Flags())
func BindPFlags(v *viper.Viper, flags *pflag.FlagSet) error { return v.BindPFlags(flags) }

// ReadInConfig reads file if set. Otherwise it searches the given paths for
// ConfigName with any supported extension. A missing config file is not an
// error.
func ReadInConfig(v *viper.Viper, file string, paths ...string) error {
	if file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}

	v.SetConfigName(ConfigName)
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Unmarshal unmarshals the config into a Struct. Make sure that the tags
// on the fields of the structure are properly set.
func Unmarshal(v *viper.Viper, rawVal interface{}, opts ...viper.DecoderConfigOption) error {
	return v.Unmarshal(rawVal, opts...)
}
