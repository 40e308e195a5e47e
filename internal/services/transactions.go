package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotIncomeCategory  = errors.New("category is not an income category")
	ErrNotExpenseCategory = errors.New("category is not an expense category")
)

type TransactionsService interface {
	AddIncome(ctx context.Context, userID string, request models.TransactionRequest) (*models.CreatedTransactionResponse, error)
	AddExpense(ctx context.Context, userID string, request models.TransactionRequest) (*models.CreatedTransactionResponse, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) (*models.NewBalanceResponse, error)
}

type Transactions struct {
	Storage storage.TransactionsStorage
}

// Создание сервиса
func NewTransactions(storage storage.TransactionsStorage) TransactionsService {
	return &Transactions{Storage: storage}
}

// AddIncome - добавление доходной транзакции. Категория обязана быть
// доходной, баланс увеличивается на сумму транзакции.
func (s *Transactions) AddIncome(ctx context.Context, userID string, request models.TransactionRequest) (*models.CreatedTransactionResponse, error) {
	if !request.Category.IsIncome() {
		return nil, ErrNotIncomeCategory
	}
	return s.addTransaction(ctx, userID, request)
}

// AddExpense - добавление расходной транзакции. Категория обязана быть
// расходной, баланс уменьшается на сумму транзакции.
func (s *Transactions) AddExpense(ctx context.Context, userID string, request models.TransactionRequest) (*models.CreatedTransactionResponse, error) {
	if request.Category.IsIncome() {
		return nil, ErrNotExpenseCategory
	}
	return s.addTransaction(ctx, userID, request)
}

func (s *Transactions) addTransaction(ctx context.Context, userID string, request models.TransactionRequest) (*models.CreatedTransactionResponse, error) {
	date, err := time.Parse(models.DateLayout, request.Date)
	if err != nil {
		return nil, err
	}

	transaction := models.TransactionData{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: request.Description,
		Category:    request.Category,
		Amount:      request.Amount,
		Date:        date,
	}

	// знак изменения баланса хранилище берёт из категории транзакции
	balance, err := s.Storage.AddTransaction(ctx, transaction)
	if err != nil {
		logger.Error("Failed to add transaction:", zap.Error(err))
		return nil, err
	}

	newBalance, _ := balance.Float64()
	return &models.CreatedTransactionResponse{
		NewBalance:  newBalance,
		Transaction: models.NewTransactionResponse(transaction),
	}, nil
}

// DeleteTransaction - удаление транзакции пользователя с обратным
// изменением баланса. Удаление несуществующей транзакции баланс не меняет.
func (s *Transactions) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*models.NewBalanceResponse, error) {
	_, balance, err := s.Storage.DeleteTransaction(ctx, userID, transactionID)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			logger.Warn("Transaction not found", transactionID)
			return nil, err
		}
		logger.Error("Failed to delete transaction:", zap.Error(err))
		return nil, err
	}

	newBalance, _ := balance.Float64()
	return &models.NewBalanceResponse{NewBalance: newBalance}, nil
}
