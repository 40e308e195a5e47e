package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertTransaction = `INSERT INTO TRANSACTIONS (id, user_id, description, category, amount, date)
							VALUES ($1, $2, $3, $4, $5, $6);`
	DeleteTransaction = `DELETE FROM TRANSACTIONS
							WHERE id = $1 AND user_id = $2
							RETURNING id, user_id, description, category, amount, date;`
	GetTransactions = `SELECT id, user_id, description, category, amount, date
							FROM TRANSACTIONS
							WHERE user_id = $1
							ORDER BY seq;`
	ApplyBalanceDelta = `UPDATE USERS
							SET balance = balance + $1
							WHERE id = $2
							RETURNING balance;`
)

type TransactionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewTransactionsStorage(db *Database) TransactionsStorage {
	return &TransactionDatabase{DB: db}
}

// AddTransaction - добавление транзакции и применение её знаковой суммы
// к балансу пользователя в одной транзакции БД. Возвращает новый баланс.
func (s *TransactionDatabase) AddTransaction(ctx context.Context, transaction models.TransactionData) (decimal.Decimal, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddTransaction. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.Exec(ctx, InsertTransaction,
		transaction.ID,
		transaction.UserID,
		transaction.Description,
		transaction.Category,
		transaction.Amount,
		transaction.Date,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert transaction: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, ApplyBalanceDelta, transaction.BalanceDelta(), transaction.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrUserNotFound
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("failed to update user balance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("AddTransaction. Commit failed: %w", err)
	}

	return balance, nil
}

// DeleteTransaction - удаление транзакции пользователя с обратным применением
// её знаковой суммы к балансу в одной транзакции БД.
// Возвращает удалённую транзакцию и новый баланс.
func (s *TransactionDatabase) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*models.TransactionData, decimal.Decimal, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DeleteTransaction. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	deleted, err := scanTransaction(tx.QueryRow(ctx, DeleteTransaction, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrTransactionNotFound
			return nil, decimal.Zero, err
		}
		return nil, decimal.Zero, fmt.Errorf("failed to delete transaction: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, ApplyBalanceDelta, deleted.BalanceDelta().Neg(), userID).Scan(&balance)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to update user balance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, decimal.Zero, fmt.Errorf("DeleteTransaction. Commit failed: %w", err)
	}

	return deleted, balance, nil
}

// GetTransactions - получение транзакций пользователя в порядке создания
func (s *TransactionDatabase) GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*models.TransactionData, error) {
	var (
		id          string
		userID      string
		description string
		category    string
		amount      decimal.Decimal
		date        time.Time
	)
	err := row.Scan(
		&id,
		&userID,
		&description,
		&category,
		&amount,
		&date,
	)
	if err != nil {
		return nil, err
	}
	return &models.TransactionData{
		ID:          id,
		UserID:      userID,
		Description: description,
		Category:    models.Category(category),
		Amount:      amount,
		Date:        date,
	}, nil
}
