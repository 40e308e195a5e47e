package services

import (
	"context"
	"net/http"
	"time"

	"github.com/denmor86/ya-wallet/internal/client"
	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "google-oauth",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

type OAuthService interface {
	AuthURL() string
	Authenticate(ctx context.Context, code string) (string, error)
}

// GoogleOAuth - авторизация через Google c защитой внешних вызовов
// автоматом-прерывателем
type GoogleOAuth struct {
	Client  *client.GoogleClient
	Breaker *gobreaker.CircuitBreaker
}

// Создание сервиса
func NewGoogleOAuth(cfg config.GoogleConfig) OAuthService {
	return &GoogleOAuth{
		Client:  client.NewGoogleClient(cfg, &http.Client{}),
		Breaker: InitCircuitBreaker(),
	}
}

// AuthURL - адрес страницы согласия Google
func (s *GoogleOAuth) AuthURL() string {
	return s.Client.AuthURL()
}

// Authenticate - обмен кода авторизации на почту пользователя Google
func (s *GoogleOAuth) Authenticate(ctx context.Context, code string) (string, error) {
	email, err := s.Breaker.Execute(func() (interface{}, error) {
		accessToken, err := s.Client.ExchangeCode(ctx, code)
		if err != nil {
			return "", err
		}
		return s.Client.GetUserEmail(ctx, accessToken)
	})
	if err != nil {
		logger.Error("Google authentication failed", err)
		return "", err
	}
	return email.(string), nil
}
