// Package config loads crudgen settings from crudgen.yaml, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/example/crudgen/internal/models"
)

// FileName is the config file looked up in the working directory.
const FileName = "crudgen"

// EnvPrefix prefixes every environment override, e.g. CRUDGEN_ADMIN_NAMESPACE.
const EnvPrefix = "CRUDGEN"

// Config aggregates crudgen settings.
type Config struct {
	Database    DatabaseConfig            `mapstructure:"database"`
	Connections map[string]DatabaseConfig `mapstructure:"connections" validate:"dive"`
	App         AppConfig                 `mapstructure:"app"`
	Admin       AdminConfig               `mapstructure:"admin"`
	Log         LogConfig                 `mapstructure:"log"`
	Models      []ModelConfig             `mapstructure:"models" validate:"dive"`
	OutputRoot  string                    `mapstructure:"output_root"`
}

// DatabaseConfig describes one data store connection.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"required"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	Prefix   string `mapstructure:"prefix"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AppConfig maps the application's root namespace onto a directory.
type AppConfig struct {
	RootNamespace string `mapstructure:"root_namespace" validate:"required"`
	Path          string `mapstructure:"path" validate:"required"`
}

// AdminConfig locates the admin controllers, language files and client project.
type AdminConfig struct {
	Namespace   string `mapstructure:"namespace" validate:"required"`
	RoutePrefix string `mapstructure:"route_prefix"`
	LangPath    string `mapstructure:"lang_path" validate:"required"`
	ClientPath  string `mapstructure:"client_path" validate:"required"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"` // Empty disables file logging
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
}

// ModelConfig registers a data model that can be scaffolded.
type ModelConfig struct {
	Identifier string `mapstructure:"identifier" validate:"required"`
	Table      string `mapstructure:"table"`       // Defaults to the plural snake short name
	PrimaryKey string `mapstructure:"primary_key"` // Defaults to "id"
	Timestamps *bool  `mapstructure:"timestamps"`  // Defaults to true
	CreatedAt  string `mapstructure:"created_at"`
	UpdatedAt  string `mapstructure:"updated_at"`
	SoftDelete string `mapstructure:"soft_delete"` // Defaults to "deleted_at"
	Connection string `mapstructure:"connection"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	Dir        string // Directory searched for crudgen.yaml and .env; defaults to cwd
	ConfigFile string // Explicit config file; must exist when set
	EnvFile    string // Explicit .env file; must exist when set
}

// Load reads configuration from the config file, the .env file and the environment.
// Environment variables win over the file, which wins over defaults.
func Load(opts LoadOptions) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	if err := loadEnvFile(dir, opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFile loads an explicit env file, or dir/.env when present.
// Variables already set in the environment are left untouched.
func loadEnvFile(dir, explicit string) error {
	path := explicit
	if path == "" {
		path = filepath.Join(dir, ".env")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.name", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.prefix", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("app.root_namespace", "App")
	v.SetDefault("app.path", "app")
	v.SetDefault("admin.namespace", `App\Admin\Controllers`)
	v.SetDefault("admin.route_prefix", "admin")
	v.SetDefault("admin.lang_path", "lang")
	v.SetDefault("admin.client_path", "client")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("output_root", "")
}

// bindEnv lets a Laravel style .env configure the default connection.
// CRUDGEN_* variables take precedence over the DB_* ones.
func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"database.driver":   "DB_CONNECTION",
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.name":     "DB_DATABASE",
		"database.user":     "DB_USERNAME",
		"database.password": "DB_PASSWORD",
		"database.prefix":   "DB_PREFIX",
	}

	for key, env := range mappings {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

var validate = validator.New()

// Validate checks field constraints and that every model's connection is defined.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, m := range c.Models {
		if m.Connection == "" {
			continue
		}
		if _, ok := c.Connections[strings.ToLower(m.Connection)]; !ok {
			return fmt.Errorf("invalid config: model %s uses undefined connection %q", m.Identifier, m.Connection)
		}
	}
	return nil
}

// Params converts the connection settings into introspection parameters.
func (d DatabaseConfig) Params() models.ConnectionParams {
	return models.ConnectionParams{
		Driver:   strings.ToLower(d.Driver),
		Host:     d.Host,
		Port:     d.Port,
		User:     d.User,
		Password: d.Password,
		Database: d.Name,
		Prefix:   d.Prefix,
		SSLMode:  d.SSLMode,
	}
}

// ConnectionParams returns every named connection keyed by lowercased name.
func (c *Config) ConnectionParams() map[string]models.ConnectionParams {
	params := make(map[string]models.ConnectionParams, len(c.Connections))
	for name, conn := range c.Connections {
		params[strings.ToLower(name)] = conn.Params()
	}
	return params
}

// ResolvePath anchors a relative path at the output root.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.OutputRoot, p)
}
