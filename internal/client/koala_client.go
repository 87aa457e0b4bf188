package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SpookyBoy99/chroma/internal/configs"
)

// KoalaClient talks to the external identity provider. The only call the
// pipeline needs is the OAuth code exchange performed during login.
type KoalaClient struct {
	httpclient *http.Client
	config     configs.KoalaConfig
}

type OAuthTokens struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
	CreatedAt    int64      `json:"created_at"`
	Member       MemberInfo `json:"member"`
}

type MemberInfo struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}

func NewKoalaClient(config configs.KoalaConfig) *KoalaClient {
	log.Println("[DEBUG] [Gallery-Service] Successful create Koala-Client")
	return &KoalaClient{
		httpclient: &http.Client{Timeout: 10 * time.Second},
		config:     config,
	}
}

func (c *KoalaClient) ExchangeCode(ctx context.Context, code string) (*OAuthTokens, int, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}
	var tokens OAuthTokens
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, resp.StatusCode, err
	}
	return &tokens, resp.StatusCode, nil
}
