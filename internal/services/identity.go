package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrSessionNotFound    = errors.New("session not found")
)

const (
	TokenSecterAlgo        = "HS256"
	AccessTokenExpiration  = 2 * time.Hour
	RefreshTokenExpiration = 24 * time.Hour
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	FindOrRegisterUser(ctx context.Context, email string) (*models.UserData, error)
	NewSession(ctx context.Context, userID string) (*models.TokensData, error)
	RefreshSession(ctx context.Context, userID string, sessionID string) (*models.TokensData, error)
	Logout(ctx context.Context, sessionID string) error
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth  *jwtauth.JWTAuth
	Users    storage.UsersStorage
	Sessions storage.SessionsStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage, sessions storage.SessionsStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users, Sessions: sessions}
}

// Регистрация нового пользователя.
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Register user:", user.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	created, err := i.Users.AddUser(ctx, user.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Email)
			return nil, ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Email, err)
		return nil, err
	}
	return created, nil
}

// Аутентификация пользователя по почте и паролю
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", user.Email)

	stored, err := i.Users.GetUser(ctx, user.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", user.Email)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(user.Password)); err != nil {
		logger.Warn("Invalid password", user.Email)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", user.Email)
	return stored, nil
}

// FindOrRegisterUser - поиск пользователя по почте внешнего провайдера,
// при первом входе пользователь создаётся со случайным паролем
func (i *Identity) FindOrRegisterUser(ctx context.Context, email string) (*models.UserData, error) {
	stored, err := i.Users.GetUser(ctx, email)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		logger.Error("Error getting user", err)
		return nil, err
	}
	return i.RegisterUser(ctx, models.UserRequest{Email: email, Password: uuid.New().String()})
}

// NewSession - создание сессии пользователя и пары JWT токенов
func (i *Identity) NewSession(ctx context.Context, userID string) (*models.TokensData, error) {
	session, err := i.Sessions.AddSession(ctx, userID, time.Now().Add(RefreshTokenExpiration))
	if err != nil {
		logger.Error("Error adding session", err)
		return nil, err
	}

	accessToken, err := i.GenerateJWT(userID, session.SessionID, AccessTokenExpiration)
	if err != nil {
		logger.Error("Failed to generate access token", err)
		return nil, err
	}
	refreshToken, err := i.GenerateJWT(userID, session.SessionID, RefreshTokenExpiration)
	if err != nil {
		logger.Error("Failed to generate refresh token", err)
		return nil, err
	}

	return &models.TokensData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.SessionID,
	}, nil
}

// RefreshSession - замена сессии пользователя на новую с новой парой токенов.
// Чужая или несуществующая сессия отклоняется.
func (i *Identity) RefreshSession(ctx context.Context, userID string, sessionID string) (*models.TokensData, error) {
	session, err := i.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		logger.Error("Error getting session", err)
		return nil, err
	}
	if session.UserID != userID {
		logger.Warn("Session does not belong to user", sessionID)
		return nil, ErrSessionNotFound
	}

	if err := i.Sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		logger.Error("Error deleting session", err)
		return nil, err
	}

	return i.NewSession(ctx, userID)
}

// Logout - завершение сессии пользователя
func (i *Identity) Logout(ctx context.Context, sessionID string) error {
	if err := i.Sessions.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		logger.Error("Error deleting session", err)
		return err
	}
	return nil
}

// Создание строки JWT токена с идентификаторами пользователя и сессии
func (i *Identity) GenerateJWT(userID string, sessionID string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"uid": userID,
		"sid": sessionID,
		"exp": expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
