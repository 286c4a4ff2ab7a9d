package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile          = ".env"
	defaultPort             = "8080"
	defaultReadTimeout      = 15 * time.Second
	defaultWriteTimeout     = 30 * time.Second
	defaultIdleTimeout      = 120 * time.Second
	defaultStorePath        = "data/catalog.db"
	defaultImageFolderRoot  = "/images/products"
	defaultRelatedLimit     = 3
	defaultMaxImageRefBytes = 256 << 10 // covers pasted data URLs without letting the blob grow unbounded
	defaultLanguage         = "en"
	defaultInquiryDelay     = 1500 * time.Millisecond
	defaultMailPort         = 587
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Catalog CatalogConfig
	I18N    I18NConfig
	Inquiry InquiryConfig
	Mail    MailConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig locates the local catalog database file.
type StoreConfig struct {
	Path string
}

// CatalogConfig tunes catalog behaviour.
type CatalogConfig struct {
	// ImageFolderRoot is the prefix used when synthesising local image
	// paths for editor sessions (<root>/<category-slug>/<n>.jpg).
	ImageFolderRoot string
	// RelatedLimit caps the related-products query.
	RelatedLimit int
	// MaxImageRefBytes rejects oversized image references (embedded data
	// URLs) before they reach the persisted blob.
	MaxImageRefBytes int
}

// I18NConfig controls translation defaults.
type I18NConfig struct {
	DefaultLanguage string
}

// InquiryConfig tunes the rental inquiry flow.
type InquiryConfig struct {
	// ProcessingDelay simulates backend processing before the notification
	// is dispatched; once started it always runs to completion.
	ProcessingDelay time.Duration
	Recipient       string
}

// MailConfig configures the SMTP notifier. The notifier stays disabled when
// Host is empty.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough settings are present to send mail.
func (m MailConfig) Enabled() bool {
	return strings.TrimSpace(m.Host) != "" && strings.TrimSpace(m.From) != ""
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the application configuration by combining defaults, .env
// overrides, and environment variables.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}

	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "API_SERVER_PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "API_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "API_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "API_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Store: StoreConfig{
			Path: stringWithDefault(lookup, "API_STORE_PATH", defaultStorePath),
		},
		Catalog: CatalogConfig{
			ImageFolderRoot:  stringWithDefault(lookup, "API_CATALOG_IMAGE_FOLDER_ROOT", defaultImageFolderRoot),
			RelatedLimit:     intWithDefault(lookup, "API_CATALOG_RELATED_LIMIT", defaultRelatedLimit),
			MaxImageRefBytes: intWithDefault(lookup, "API_CATALOG_MAX_IMAGE_REF_BYTES", defaultMaxImageRefBytes),
		},
		I18N: I18NConfig{
			DefaultLanguage: strings.ToLower(stringWithDefault(lookup, "API_I18N_DEFAULT_LANGUAGE", defaultLanguage)),
		},
		Inquiry: InquiryConfig{
			ProcessingDelay: durationWithDefault(lookup, "API_INQUIRY_PROCESSING_DELAY", defaultInquiryDelay),
			Recipient:       stringWithDefault(lookup, "API_INQUIRY_RECIPIENT", ""),
		},
		Mail: MailConfig{
			Host:     stringWithDefault(lookup, "API_MAIL_HOST", ""),
			Port:     intWithDefault(lookup, "API_MAIL_PORT", defaultMailPort),
			Username: stringWithDefault(lookup, "API_MAIL_USERNAME", ""),
			Password: stringWithDefault(lookup, "API_MAIL_PASSWORD", ""),
			From:     stringWithDefault(lookup, "API_MAIL_FROM", ""),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		missing = append(missing, "Store.Path")
	}
	if cfg.Catalog.RelatedLimit <= 0 {
		missing = append(missing, "Catalog.RelatedLimit")
	}
	if cfg.Catalog.MaxImageRefBytes <= 0 {
		missing = append(missing, "Catalog.MaxImageRefBytes")
	}
	switch cfg.I18N.DefaultLanguage {
	case "en", "pt":
	default:
		missing = append(missing, "I18N.DefaultLanguage")
	}
	if cfg.Inquiry.ProcessingDelay < 0 {
		missing = append(missing, "Inquiry.ProcessingDelay")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		value = strings.Trim(value, "\"'")
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
