package config

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"wlinflate/pkg/transform"
)

// EnvPrefix prefixes the environment variables read by GetConfig
const EnvPrefix = "WLINFLATE"

// Flags holds the command line values. Empty values leave the configuration untouched.
type Flags struct {
	ConfigFile   string
	Wordlist     string
	Prepend      string
	Append       string
	Swap         string
	Extensions   string
	Output       string
	StatsvizAddr string
	Verbose      bool
}

// Configuration represents a configuration element
type Configuration struct {
	Wordlist     string
	Prepend      string
	Append       string
	Swap         string
	Extensions   string
	Output       string
	StatsvizAddr string
	Verbose      bool
	Log          *log.Logger
}

// GetConfig provides a Configuration from defaults, the config file, the environment and flags
func GetConfig(flags *Flags) (*Configuration, error) {
	if flags == nil {
		flags = &Flags{}
	}
	c := &Configuration{
		Log: log.New(),
	}
	c.Log.SetOutput(os.Stderr)

	v := viper.New()
	v.SetDefault("Wordlist", "")
	v.SetDefault("Prepend", "")
	v.SetDefault("Append", "")
	v.SetDefault("Swap", "")
	v.SetDefault("Extensions", "")
	v.SetDefault("Output", "")
	v.SetDefault("StatsvizAddr", "")
	v.SetDefault("Verbose", false)

	if flags.ConfigFile != "" {
		d, f := path.Split(flags.ConfigFile)
		if d == "" {
			d = "."
		}
		v.SetConfigName(f[0 : len(f)-len(filepath.Ext(f))])
		v.AddConfigPath(d)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error when reading config file %s", flags.ConfigFile)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	overrides := map[string]string{
		"Wordlist":     flags.Wordlist,
		"Prepend":      flags.Prepend,
		"Append":       flags.Append,
		"Swap":         flags.Swap,
		"Extensions":   flags.Extensions,
		"Output":       flags.Output,
		"StatsvizAddr": flags.StatsvizAddr,
	}
	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}
	if flags.Verbose {
		v.Set("Verbose", true)
	}

	c.Wordlist = v.GetString("Wordlist")
	c.Output = v.GetString("Output")
	c.StatsvizAddr = v.GetString("StatsvizAddr")
	c.Verbose = v.GetBool("Verbose")
	c.Prepend = rawList(v.Get("Prepend"))
	c.Append = rawList(v.Get("Append"))
	c.Swap = rawList(v.Get("Swap"))
	c.Extensions = rawList(v.Get("Extensions"))

	if c.Wordlist == "" {
		return nil, errors.New("wordlist can't be empty")
	}
	if c.Verbose {
		c.Log.SetLevel(log.DebugLevel)
	}

	return c, nil
}

// Transformations returns the transformation set described by the configuration
func (c *Configuration) Transformations() *transform.Set {
	return transform.Parse(c.Prepend, c.Append, c.Swap, c.Extensions)
}

// rawList accepts either a comma-separated string or a list from a config file
func rawList(value interface{}) string {
	switch value.(type) {
	case []interface{}, []string:
		return strings.Join(cast.ToStringSlice(value), ",")
	default:
		return cast.ToString(value)
	}
}
