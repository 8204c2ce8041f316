package config

import (
	"github.com/koding/multiconfig"
)

// Config defines judge server configuration
type Config struct {
	// server config
	HTTPAddr      string `flagUsage:"specifies the http binding address" default:":5050"`
	EnableMetrics bool   `flagUsage:"enable prometheus metrics endpoint"`

	// archive config
	Dir      string `flagUsage:"archive root directory" default:"."`
	LangConf string `flagUsage:"specifies language registry file" default:"languages.yaml"`

	// logger config
	Release bool `flagUsage:"release level of logs"`
	Silent  bool `flagUsage:"do not print logs"`

	// show version and exit
	Version bool `flagUsage:"show version and exit"`
}

// Load loads config from flag & environment variables
func (c *Config) Load() error {
	cl := multiconfig.MultiLoader(
		&multiconfig.TagLoader{},
		&multiconfig.EnvironmentLoader{
			Prefix:    "SOLRUN",
			CamelCase: true,
		},
		&multiconfig.FlagLoader{
			CamelCase: true,
			EnvPrefix: "SOLRUN",
		},
	)
	return cl.Load(c)
}
