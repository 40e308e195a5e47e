package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	InsertUser = `INSERT INTO USERS (id, email, password, balance)
						VALUES ($1, $2, $3, 0)
						ON CONFLICT (email) DO NOTHING
						RETURNING id;`
	GetUser        = `SELECT id, email, password, balance FROM USERS WHERE email=$1;`
	GetUserByID    = `SELECT id, email, password, balance FROM USERS WHERE id=$1;`
	SetUserBalance = `UPDATE USERS
						SET balance = $1
						WHERE id = $2
						RETURNING balance;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

// AddUser - добавление пользователя с нулевым балансом
func (s *UserDatabase) AddUser(ctx context.Context, email string, passwordHash string) (*models.UserData, error) {
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, email, passwordHash).Scan(&userID)

	// Успешное добавление
	if err == nil {
		return &models.UserData{
			UserID:       userID,
			Email:        email,
			PasswordHash: passwordHash,
			Balance:      decimal.Zero,
		}, nil
	}

	// RETURNING без строки - сработал ON CONFLICT DO NOTHING
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrAlreadyExists
	}

	// Все остальные ошибки
	return nil, fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUser(ctx context.Context, email string) (*models.UserData, error) {
	return s.getUser(ctx, GetUser, email)
}

func (s *UserDatabase) GetUserByID(ctx context.Context, userID string) (*models.UserData, error) {
	return s.getUser(ctx, GetUserByID, userID)
}

func (s *UserDatabase) getUser(ctx context.Context, query string, arg string) (*models.UserData, error) {
	var (
		userID   string
		email    string
		password string
		balance  decimal.Decimal
	)
	err := s.DB.Pool.QueryRow(ctx, query, arg).Scan(&userID, &email, &password, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &models.UserData{
		UserID:       userID,
		Email:        email,
		PasswordHash: password,
		Balance:      balance,
	}, nil
}

// SetUserBalance - прямая установка баланса пользователем
func (s *UserDatabase) SetUserBalance(ctx context.Context, userID string, balance decimal.Decimal) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := s.DB.Pool.QueryRow(ctx, SetUserBalance, balance, userID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to set user balance: %w", err)
	}
	return newBalance, nil
}
