package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"vehicle-maintenance-backend/internal/config"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string                    `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration             `mapstructure:"jwt_expiry"`
	Issuer    string                    `mapstructure:"issuer"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
}

// ProviderConfig holds the OAuth2 settings of one SSO provider
type ProviderConfig struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	RedirectURL  string   `mapstructure:"redirect_url"`
	AuthURL      string   `mapstructure:"auth_url"`
	TokenURL     string   `mapstructure:"token_url"`
	UserInfoURL  string   `mapstructure:"userinfo_url"`
	Scopes       []string `mapstructure:"scopes"`
}

type knownProvider struct {
	endpoint    oauth2.Endpoint
	userInfoURL string
	scopes      []string
}

var knownProviders = map[string]knownProvider{
	"google": {
		endpoint:    google.Endpoint,
		userInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		scopes:      []string{"openid", "email", "profile"},
	},
	"facebook": {
		endpoint:    facebook.Endpoint,
		userInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		scopes:      []string{"email", "public_profile"},
	},
}

// LoadAuthConfig loads the SSO providers from auth.yaml; JWT settings default to the server config
func LoadAuthConfig(configPath string, base *config.Config) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("issuer", "vehicle-maintenance-backend")
	if base != nil {
		v.SetDefault("jwt_secret", base.JWTSecret)
		v.SetDefault("jwt_expiry", base.JWTExpiry)
	}

	if err := v.ReadInConfig(); err != nil {
		// auth.yaml is optional unless a path was given explicitly
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var cfg AuthConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		cfg.JWTSecret = jwtSecret
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]ProviderConfig{}
	}
	for name, provider := range cfg.Providers {
		resolved := resolveProvider(name, provider)
		if resolved.ClientID == "" && resolved.ClientSecret == "" {
			// listed but without credentials: SSO stays disabled for it
			delete(cfg.Providers, name)
			continue
		}
		cfg.Providers[name] = resolved
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &cfg, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT expiry must be positive")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
		if provider.RedirectURL == "" {
			return fmt.Errorf("redirect_url is required for provider '%s'", providerName)
		}
		if provider.AuthURL == "" || provider.TokenURL == "" || provider.UserInfoURL == "" {
			return fmt.Errorf("auth_url, token_url and userinfo_url are required for provider '%s'", providerName)
		}
	}

	return nil
}

// resolveProvider applies env overrides (GOOGLE_CLIENT_ID, ...), expands ${VAR}
// placeholders and fills endpoints of well-known providers
func resolveProvider(name string, p ProviderConfig) ProviderConfig {
	prefix := strings.ToUpper(name) + "_"
	if v := os.Getenv(prefix + "CLIENT_ID"); v != "" {
		p.ClientID = v
	}
	if v := os.Getenv(prefix + "CLIENT_SECRET"); v != "" {
		p.ClientSecret = v
	}
	if v := os.Getenv(prefix + "REDIRECT_URI"); v != "" {
		p.RedirectURL = v
	}

	p.ClientID = expandPlaceholder(p.ClientID)
	p.ClientSecret = expandPlaceholder(p.ClientSecret)
	p.RedirectURL = expandPlaceholder(p.RedirectURL)

	if known, ok := knownProviders[name]; ok {
		if p.AuthURL == "" {
			p.AuthURL = known.endpoint.AuthURL
		}
		if p.TokenURL == "" {
			p.TokenURL = known.endpoint.TokenURL
		}
		if p.UserInfoURL == "" {
			p.UserInfoURL = known.userInfoURL
		}
		if len(p.Scopes) == 0 {
			p.Scopes = known.scopes
		}
	}

	return p
}

func expandPlaceholder(value string) string {
	if len(value) > 3 && strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
