package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to modules.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetContentfulSpaceID() string
	GetContentfulAccessToken() string
	GetContentfulEnvironment() string
	GetContentfulGraphQLURL() string
	GetContentfulPreview() bool
	GetContentFallbackPath() string
	GetContentCacheTTL() time.Duration
	GetContentWatch() bool
	GetMenuLiveViewport() bool
}

// Config holds all configuration for the application.
type Config struct {
	Addr       string `validate:"required"`
	AppBaseURL string `validate:"omitempty,url"`

	ContentfulSpaceID     string
	ContentfulAccessToken string `validate:"required_with=ContentfulSpaceID"`
	ContentfulEnvironment string `validate:"required"`
	ContentfulGraphQLURL  string `validate:"required,url"`
	ContentfulPreview     bool

	ContentFallbackPath string        `validate:"required"`
	ContentCacheTTL     time.Duration `validate:"gt=0"`
	ContentWatch        bool

	MenuLiveViewport bool
}

const (
	defaultAddr              = ":8080"
	defaultContentfulEnv     = "master"
	defaultContentfulGraphQL = "https://graphql.contentful.com/content/v1"
	defaultFallbackPath      = "content/site.yaml"
	defaultCacheTTL          = 5 * time.Minute
)

// New loads configuration from a .env file (when present) and the environment,
// then validates it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = defaultAddr
		}
	}

	ttl := defaultCacheTTL
	if v := strings.TrimSpace(os.Getenv("CONTENT_CACHE_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: CONTENT_CACHE_TTL: %w", err)
		}
		ttl = d
	}

	cfg := &Config{
		Addr:                  addr,
		AppBaseURL:            os.Getenv("APP_BASE_URL"),
		ContentfulSpaceID:     os.Getenv("CONTENTFUL_SPACE_ID"),
		ContentfulAccessToken: os.Getenv("CONTENTFUL_ACCESS_TOKEN"),
		ContentfulEnvironment: envOr("CONTENTFUL_ENVIRONMENT", defaultContentfulEnv),
		ContentfulGraphQLURL:  envOr("CONTENTFUL_GRAPHQL_URL", defaultContentfulGraphQL),
		ContentfulPreview:     envBool("CONTENTFUL_PREVIEW"),
		ContentFallbackPath:   envOr("CONTENT_FALLBACK_PATH", defaultFallbackPath),
		ContentCacheTTL:       ttl,
		ContentWatch:          envBool("CONTENT_WATCH"),
		MenuLiveViewport:      envBool("MENU_LIVE_VIEWPORT"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && b
}

func (c *Config) GetAddr() string                   { return c.Addr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetContentfulSpaceID() string      { return c.ContentfulSpaceID }
func (c *Config) GetContentfulAccessToken() string  { return c.ContentfulAccessToken }
func (c *Config) GetContentfulEnvironment() string  { return c.ContentfulEnvironment }
func (c *Config) GetContentfulGraphQLURL() string   { return c.ContentfulGraphQLURL }
func (c *Config) GetContentfulPreview() bool        { return c.ContentfulPreview }
func (c *Config) GetContentFallbackPath() string    { return c.ContentFallbackPath }
func (c *Config) GetContentCacheTTL() time.Duration { return c.ContentCacheTTL }
func (c *Config) GetContentWatch() bool             { return c.ContentWatch }
func (c *Config) GetMenuLiveViewport() bool         { return c.MenuLiveViewport }
