// Package config loads the client's runtime configuration via viper,
// following the same file-discovery and defaulting conventions the teacher
// controller config uses, validated with go-playground/validator.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the top-level client configuration: the base URL every Query
// and resource is routed against, the naming convention used on the wire,
// and the transport's timeout.
type Config struct {
	// BaseURL is the server root every Router is built against.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// NamingConvention names a KeyFormatter for field names on the wire:
	// "kebab" (the JSON:API convention), "snake", "camel" or "lower_camel"
	// (namer.Parse resolves these names). client.New takes its formatter as
	// an argument and does not read this field.
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=kebab snake camel lower_camel"`

	// RequestTimeout is a timeout for the caller's own transport. No
	// operation in this module applies it.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`

	// StrictMode rejects a response document carrying any top-level member
	// besides data, errors, meta, included, links and jsonapi, instead of
	// silently ignoring it (see jsonapi.Deserializer.StrictMode).
	StrictMode bool `mapstructure:"strict_mode"`

	// ClientGeneratedIDs allows SaveOperation to POST a resource that
	// already carries a client-assigned id, honoring RFC's
	// client-generated-id extension instead of always treating an id as
	// "this is an update".
	ClientGeneratedIDs bool `mapstructure:"client_generated_ids"`
}

var validate = validator.New()

// Default returns the zero-value-safe Config client.New starts from:
// kebab-case naming, no timeout bound, strict mode and client-generated ids
// both off. ReadConfig and ReadNamedConfig do not fall back to it: a
// missing file is an error.
func Default() *Config {
	return &Config{
		NamingConvention: "kebab",
	}
}

// ReadConfig reads "config.{yaml,json,...}" from "." and "./configs",
// applying Default's values as fallbacks for anything the file omits.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("config")
}

// ReadNamedConfig reads name from "." and "./configs" the same way
// ReadConfig does, for callers that keep multiple config files (e.g. one
// per environment).
func ReadNamedConfig(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks c against its struct tags, reporting the first violation
// (a missing/malformed BaseURL, an unrecognized NamingConvention, ...).
func (c *Config) Validate() error {
	return validate.Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("naming_convention", "kebab")
	v.SetDefault("request_timeout", 0)
	v.SetDefault("strict_mode", false)
	v.SetDefault("client_generated_ids", false)
}
