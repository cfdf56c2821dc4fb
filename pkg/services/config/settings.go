package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "MARKET_ATLAS"

type Settings struct {
	Source  SourceSettings `mapstructure:"source"`
	Log     LogSettings    `mapstructure:"log"`
	Server  ServerSettings `mapstructure:"server"`
	Report  ReportSettings `mapstructure:"report"`
	Presets string         `mapstructure:"presets"`
}

type SourceSettings struct {
	// Kind is one of csv, duckdb or postgres
	Kind  string `mapstructure:"kind" validate:"oneof=csv duckdb postgres"`
	Dir   string `mapstructure:"dir" validate:"required_if=Kind csv"`
	DSN   string `mapstructure:"dsn" validate:"required_unless=Kind csv"`
	Table string `mapstructure:"table"`
}

type LogSettings struct {
	Level       string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	SessionFile string `mapstructure:"session_file"`
}

type ServerSettings struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required"`
}

type ReportSettings struct {
	Weighting string `mapstructure:"weighting" validate:"required"`
	Averaging string `mapstructure:"averaging" validate:"oneof=span observed"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.kind", "csv")
	v.SetDefault("source.dir", "data")
	v.SetDefault("source.dsn", "")
	v.SetDefault("source.table", "statistics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.session_file", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("report.weighting", "identity")
	v.SetDefault("report.averaging", "span")
	v.SetDefault("presets", "")
}

// NewViper returns a viper instance with defaults and MARKET_ATLAS_* environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional settings file at path into Settings.
// Values not found in the file fall back to the environment and then to defaults.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := validate.Struct(settings); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fe := fieldErrs[0]
			return nil, fmt.Errorf("invalid setting %s: failed on '%s'", fe.Namespace(), fe.Tag())
		}
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &settings, nil
}

func (s *Settings) ServerAddr() string {
	return fmt.Sprintf("%s:%s", s.Server.Host, s.Server.Port)
}
