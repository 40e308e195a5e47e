package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/denmor86/ya-wallet/internal/config"
)

const (
	AuthEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	TokenEndpoint    = "https://oauth2.googleapis.com/token"
	UserInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var ErrServiceUnavailable = errors.New("google oauth service unavailable")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GoogleClient - клиент обмена кода авторизации Google на почту пользователя
type GoogleClient struct {
	config     config.GoogleConfig
	httpClient HTTPClient
}

func NewGoogleClient(config config.GoogleConfig, client HTTPClient) *GoogleClient {
	return &GoogleClient{
		config:     config,
		httpClient: client,
	}
}

// AuthURL - адрес страницы согласия Google для перенаправления пользователя
func (c *GoogleClient) AuthURL() string {
	params := url.Values{
		"client_id":     {c.config.ClientID},
		"redirect_uri":  {c.config.RedirectURL},
		"response_type": {"code"},
		"scope":         {"https://www.googleapis.com/auth/userinfo.email"},
	}
	return AuthEndpoint + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode - обмен кода авторизации на токен доступа Google
func (c *GoogleClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
		"redirect_uri":  {c.config.RedirectURL},
		"grant_type":    {"authorization_code"},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("exchange code: %w (status %d)", ErrServiceUnavailable, resp.StatusCode)
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.AccessToken, nil
}

type userInfoResponse struct {
	Email string `json:"email"`
}

// GetUserEmail - получение почты пользователя по токену доступа Google
func (c *GoogleClient) GetUserEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, UserInfoEndpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get user info: %w (status %d)", ErrServiceUnavailable, resp.StatusCode)
	}

	var result userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Email, nil
}
