// Package viper loads archmap configuration files through spf13/viper and
// exposes them to kong as a flag resolver.
package viper

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/archmap"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables mirroring each flag.
const EnvPrefix = "ARCHMAP"

// Keys maps flag names to their configuration file keys.
var Keys = map[string]string{
	"url":       "files.url",
	"file":      "files.file",
	"text":      "files.text",
	"geojson":   "files.geojson",
	"kml":       "files.kml",
	"csv":       "files.csv",
	"pretty":    "extras.pretty",
	"verbosity": "extras.verbosity",
	"raw":       "extras.raw",
	"timeout":   "extras.timeout",
}

// Ensure Resolver implements kong.Resolver at compile time.
var _ kong.Resolver = (*Resolver)(nil)

// Resolver supplies flag values from a configuration file, with
// ARCHMAP_<NAME> environment variables taking priority over the file.
type Resolver struct {
	v *viper.Viper
}

// Loader reads a YAML configuration from r. It has the signature of
// kong.ConfigurationLoader.
func Loader(r io.Reader) (kong.Resolver, error) {
	resolver, err := NewResolver(r)
	if err != nil {
		return nil, err
	}
	return resolver, nil
}

// NewResolver reads a YAML configuration from r.
func NewResolver(r io.Reader) (*Resolver, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, archmap.Errorf(archmap.EINVALID, "cannot read configuration: %v", err)
	}
	for flag, key := range Keys {
		if err := v.BindEnv(key, envName(flag)); err != nil {
			return nil, err
		}
	}
	return &Resolver{v: v}, nil
}

// Validate accepts any configuration; unknown keys are ignored.
func (r *Resolver) Validate(app *kong.Application) error {
	return nil
}

// Resolve returns the configured value for flag, or nil when unset.
func (r *Resolver) Resolve(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
	key, ok := Keys[flag.Name]
	if !ok || !r.v.IsSet(key) {
		return nil, nil
	}
	return r.v.GetString(key), nil
}

func envName(flag string) string {
	return EnvPrefix + "_" + strings.ToUpper(flag)
}
