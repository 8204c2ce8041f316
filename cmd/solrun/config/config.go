package config

import (
	"github.com/koding/multiconfig"
)

// Config defines solution runner CLI configuration. Options come before
// the positional arguments; values may also be set through SOLRUN_*
// environment variables.
type Config struct {
	Event    string `flagUsage:"contest event (Main or Warming)" default:"Main"`
	Dir      string `flagUsage:"archive root directory" default:"."`
	LangConf string `flagUsage:"specifies language registry file" default:"languages.yaml"`

	// logger config
	Release bool `flagUsage:"release level of logs"`
	Silent  bool `flagUsage:"do not print logs"`

	// show version and exit
	Version bool `flagUsage:"show version and exit"`
}

// Load loads config from the given flag arguments & environment variables.
func (c *Config) Load(args []string) error {
	cl := multiconfig.MultiLoader(
		&multiconfig.TagLoader{},
		&multiconfig.EnvironmentLoader{
			Prefix:    "SOLRUN",
			CamelCase: true,
		},
		&multiconfig.FlagLoader{
			CamelCase: true,
			EnvPrefix: "SOLRUN",
			Args:      args,
		},
	)
	return cl.Load(c)
}
