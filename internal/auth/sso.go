package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// SSOClient performs the OAuth2 authorization-code flow against one provider
type SSOClient struct {
	name   string
	config *ProviderConfig
}

// UserProfile is the identity returned by a provider's userinfo endpoint
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// NewSSOClient creates a new SSO client
func NewSSOClient(name string, config *ProviderConfig) *SSOClient {
	return &SSOClient{name: name, config: config}
}

// Name returns the provider name
func (c *SSOClient) Name() string {
	return c.name
}

// GetOAuth2Config returns the OAuth2 configuration for this provider
func (c *SSOClient) GetOAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  c.config.RedirectURL,
		Scopes:       c.config.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.config.AuthURL,
			TokenURL: c.config.TokenURL,
		},
	}
}

// AuthCodeURL returns the provider consent page URL for the given state
func (c *SSOClient) AuthCodeURL(state string) string {
	return c.GetOAuth2Config().AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the user profile
func (c *SSOClient) Exchange(ctx context.Context, code string) (*UserProfile, error) {
	oauth2Config := c.GetOAuth2Config()

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	return c.GetUserProfile(ctx, oauth2Config.Client(ctx, token))
}

// GetUserProfile reads the userinfo endpoint with an authenticated client
func (c *SSOClient) GetUserProfile(ctx context.Context, client *http.Client) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	profile := &UserProfile{
		ID:        firstString(raw, "sub", "id"),
		Email:     firstString(raw, "email"),
		Name:      firstString(raw, "name", "login"),
		AvatarURL: firstString(raw, "picture", "avatar_url"),
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("user profile from %s has no id", c.name)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("user profile from %s has no email", c.name)
	}
	if profile.Name == "" {
		profile.Name = profile.Email
	}

	return profile, nil
}

// firstString returns the first non-empty value among keys; numeric ids are formatted
func firstString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
