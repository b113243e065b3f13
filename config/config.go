package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyEventTitle       = "event.title"
	KeyEventLocation    = "event.location"
	KeyEventDays        = "event.days"
	KeyEventCountryCode = "event.country_code"
	KeyAccommodations   = "event.accommodations"
	KeyAuthRequired     = "auth.required"
)

type Config struct {
	Event EventConfig `mapstructure:"event" validate:"required"`
	Auth  AuthConfig  `mapstructure:"auth"`
}

type EventConfig struct {
	Title          string   `mapstructure:"title" validate:"required"`
	Location       string   `mapstructure:"location"`
	Days           string   `mapstructure:"days"`
	CountryCode    string   `mapstructure:"country_code" validate:"required,numeric"`
	Accommodations []string `mapstructure:"accommodations"`
}

type AuthConfig struct {
	// Required gates imports behind an active session.
	Required bool `mapstructure:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# guestlist configuration
event:
  title: "Isola 70"
  location: "Ilhabela, SP"
  days: "Sexta e Sábado"
  country_code: "55"
  accommodations:
    - "Sandi"
    - "Aconchego"
    - "Vila Bom jardim"
    - "Bartholomeu"
    - "Barco próprio"
    - "Pousada Literária"

auth:
  required: false
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyEventTitle, "Isola 70")
	v.SetDefault(KeyEventLocation, "Ilhabela, SP")
	v.SetDefault(KeyEventDays, "Sexta e Sábado")
	v.SetDefault(KeyEventCountryCode, "55")
	v.SetDefault(KeyAccommodations, []string{
		"Sandi",
		"Aconchego",
		"Vila Bom jardim",
		"Bartholomeu",
		"Barco próprio",
		"Pousada Literária",
	})
	v.SetDefault(KeyAuthRequired, false)
}
