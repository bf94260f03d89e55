package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/dropdown/internal/locale"
)

// Config is the demo's settings. Env overrides use prefix DROPDOWN_.
type Config struct {
	Title       string `mapstructure:"title" validate:"required"`
	Placeholder string `mapstructure:"placeholder"`
	Language    string `mapstructure:"language" validate:"omitempty,langtag"`
	LabelField  string `mapstructure:"label_field"`
	Default     string `mapstructure:"default"`
	Options     []any  `mapstructure:"options" validate:"required,min=1"`
	Width       int    `mapstructure:"width" validate:"gte=0,lte=4000"`
	Verbose     bool   `mapstructure:"verbose"`
	LogFile     string `mapstructure:"log_file"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("title", "dropdown example")
	v.SetDefault("language", "en")
	v.SetDefault("options", []any{"Red", "Green", "Blue"})
	v.SetDefault("width", 0)

	v.SetEnvPrefix("DROPDOWN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// LoadConfig reads path (when set) and the environment into a Config and
// validates it.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateConfig(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func validateConfig(c Config) error {
	v := validator.New()
	if err := v.RegisterValidation("langtag", validLanguage); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// validLanguage accepts tags that match one of the bundled translations.
func validLanguage(fl validator.FieldLevel) bool {
	tag, err := language.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	_, _, conf := language.NewMatcher(locale.Languages()).Match(tag)
	return conf != language.No
}

// Tag returns the configured language, English when unset.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}
