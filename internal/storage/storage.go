package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/shopspring/decimal"
)

type UsersStorage interface {
	AddUser(ctx context.Context, email string, passwordHash string) (*models.UserData, error)
	GetUser(ctx context.Context, email string) (*models.UserData, error)
	GetUserByID(ctx context.Context, userID string) (*models.UserData, error)
	SetUserBalance(ctx context.Context, userID string, balance decimal.Decimal) (decimal.Decimal, error)
}

type TransactionsStorage interface {
	AddTransaction(ctx context.Context, transaction models.TransactionData) (decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) (*models.TransactionData, decimal.Decimal, error)
	GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error)
}

type SessionsStorage interface {
	AddSession(ctx context.Context, userID string, expiresAt time.Time) (*models.SessionData, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Storage struct {
	Users        UsersStorage
	Transactions TransactionsStorage
	Sessions     SessionsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:        NewUsersStorage(db),
		Transactions: NewTransactionsStorage(db),
		Sessions:     NewSessionsStorage(db),
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrSessionNotFound     = errors.New("session not found")

	ErrAlreadyExists = errors.New("already exists")
)
