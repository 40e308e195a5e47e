package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Email        string
	PasswordHash string
	Balance      decimal.Decimal
}

// UserResponse - модель пользователя для выдачи
type UserResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Balance      float64               `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// NewUserResponse - преобразование модели хранилища в модель выдачи
func NewUserResponse(user UserData, transactions []TransactionData) UserResponse {
	balance, _ := user.Balance.Float64()
	return UserResponse{
		ID:           user.UserID,
		Email:        user.Email,
		Balance:      balance,
		Transactions: NewTransactionResponses(transactions),
	}
}

// BalanceRequest - модель запроса установки баланса пользователем
type BalanceRequest struct {
	NewBalance decimal.Decimal `json:"newBalance"`
}

// SessionData - модель сессии пользователя из хранилища
type SessionData struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// RefreshRequest - модель запроса обновления пары токенов
type RefreshRequest struct {
	SessionID string `json:"sid"`
}

// TokensData - пара токенов и сессия, выданные пользователю
type TokensData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// LoginResponse - модель ответа на вход пользователя
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	SessionID    string       `json:"sid"`
	User         UserResponse `json:"userData"`
}

// RefreshResponse - модель ответа на обновление пары токенов
type RefreshResponse struct {
	AccessToken  string `json:"newAccessToken"`
	RefreshToken string `json:"newRefreshToken"`
	SessionID    string `json:"newSid"`
}

// RegisterResponse - модель ответа на регистрацию пользователя
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
