package services

import (
	"context"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UsersService interface {
	GetUserInfo(ctx context.Context, userID string) (*models.UserResponse, error)
	SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*models.NewBalanceResponse, error)
}

type Users struct {
	Users        storage.UsersStorage
	Transactions storage.TransactionsStorage
}

// Создание сервиса
func NewUsers(users storage.UsersStorage, transactions storage.TransactionsStorage) UsersService {
	return &Users{Users: users, Transactions: transactions}
}

// GetUserInfo - данные пользователя с текущим балансом и списком транзакций
func (s *Users) GetUserInfo(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user:", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Transactions.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}

	response := models.NewUserResponse(*user, transactions)
	return &response, nil
}

// SetBalance - прямая установка баланса пользователем
func (s *Users) SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*models.NewBalanceResponse, error) {
	updated, err := s.Users.SetUserBalance(ctx, userID, balance)
	if err != nil {
		logger.Error("Failed to set user balance:", zap.Error(err))
		return nil, err
	}

	newBalance, _ := updated.Float64()
	return &models.NewBalanceResponse{NewBalance: newBalance}, nil
}
