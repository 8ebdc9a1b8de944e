package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"shopcatalog/vertical"
)

const (
	EnvPrefix = "SHOPCATALOG"

	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyHTTPTimeout       = "http.timeout"
	KeyHTTPUserAgent     = "http.user_agent"
	KeyServerPort        = "server.port"
	KeyCatalogLanguage   = "catalog.language"
	KeyCatalogStaticDirs = "catalog.static_dirs"
	KeyVerticals         = "verticals"
)

type Config struct {
	Log       LogConfig        `mapstructure:"log"`
	HTTP      HTTPConfig       `mapstructure:"http"`
	Server    ServerConfig     `mapstructure:"server"`
	Catalog   CatalogConfig    `mapstructure:"catalog"`
	Verticals []VerticalSource `mapstructure:"verticals" validate:"dive"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type CatalogConfig struct {
	Language   string   `mapstructure:"language" validate:"oneof=de en"`
	StaticDirs []string `mapstructure:"static_dirs"`
}

// VerticalSource overrides the endpoints of one built-in vertical.
type VerticalSource struct {
	ID          string   `mapstructure:"id" validate:"required"`
	PrimaryURL  string   `mapstructure:"primary_url" validate:"omitempty,url"`
	FallbackURL string   `mapstructure:"fallback_url" validate:"omitempty,url"`
	StaticJSON  []string `mapstructure:"static_json"`
}

// Source returns the override for the vertical id, if one is configured.
func (c *Config) Source(id string) (VerticalSource, bool) {
	for _, source := range c.Verticals {
		if strings.EqualFold(strings.TrimSpace(source.ID), id) {
			return source, true
		}
	}
	return VerticalSource{}, false
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadEnvFile loads variables from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !isNotExist(err) {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

// BindEnv makes every key resolvable from SHOPCATALOG_* variables, for
// example SHOPCATALOG_HTTP_TIMEOUT.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
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
	return `# shopcatalog configuration
log:
  level: "info"
  format: "json"

http:
  timeout: "15s"
  user_agent: "shopcatalog/1.0"

server:
  port: 8080

catalog:
  language: "de"
  static_dirs:
    - "./data"

# Override the sheet endpoints or static files of a vertical.
verticals: []
#  - id: "workwear"
#    primary_url: "https://docs.google.com/spreadsheets/d/e/<published-id>/pub?gid=0&single=true&output=csv"
#    fallback_url: "https://docs.google.com/spreadsheets/d/<sheet-id>/export?format=csv&gid=0"
#    static_json:
#      - "./data/workwear-products.json"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Catalog.Language = strings.ToLower(strings.TrimSpace(cfg.Catalog.Language))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateVerticals(cfg.Verticals); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyHTTPTimeout, 15*time.Second)
	v.SetDefault(KeyHTTPUserAgent, "shopcatalog/1.0")
	v.SetDefault(KeyServerPort, 8080)
	v.SetDefault(KeyCatalogLanguage, "de")
	v.SetDefault(KeyCatalogStaticDirs, []string{"./data"})
	v.SetDefault(KeyVerticals, []map[string]any{})
}

func validateVerticals(sources []VerticalSource) error {
	seen := make(map[string]struct{}, len(sources))
	for i, source := range sources {
		id := strings.ToLower(strings.TrimSpace(source.ID))
		if _, err := vertical.Lookup(id); err != nil {
			return fmt.Errorf("validation failed: verticals[%d]: %w", i, err)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("validation failed: duplicate vertical %q", source.ID)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
