package services

import (
	"context"
	"time"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReportsService interface {
	GetIncomeStats(ctx context.Context, userID string) (*models.IncomeStatsResponse, error)
	GetExpenseStats(ctx context.Context, userID string) (*models.ExpenseStatsResponse, error)
	GetPeriodReport(ctx context.Context, userID string, period string) (*models.PeriodResponse, error)
}

type Reports struct {
	Storage storage.TransactionsStorage
	// Now - источник текущего времени, подменяется в тестах
	Now func() time.Time
}

// Создание сервиса
func NewReports(storage storage.TransactionsStorage) ReportsService {
	return &Reports{Storage: storage, Now: time.Now}
}

// GetIncomeStats - список доходных транзакций пользователя и их суммы
// по месяцам текущего года
func (s *Reports) GetIncomeStats(ctx context.Context, userID string) (*models.IncomeStatsResponse, error) {
	transactions, err := s.Storage.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}

	incomes := FilterByPartition(transactions, true)
	return &models.IncomeStatsResponse{
		Incomes:     models.NewTransactionResponses(incomes),
		MonthsStats: MonthlyStats(incomes, s.Now().Year()),
	}, nil
}

// GetExpenseStats - список расходных транзакций пользователя и их суммы
// по месяцам текущего года
func (s *Reports) GetExpenseStats(ctx context.Context, userID string) (*models.ExpenseStatsResponse, error) {
	transactions, err := s.Storage.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}

	expenses := FilterByPartition(transactions, false)
	return &models.ExpenseStatsResponse{
		Expenses:    models.NewTransactionResponses(expenses),
		MonthsStats: MonthlyStats(expenses, s.Now().Year()),
	}, nil
}

// GetPeriodReport - отчёт по категориям и описаниям за период (год-месяц)
func (s *Reports) GetPeriodReport(ctx context.Context, userID string, period string) (*models.PeriodResponse, error) {
	transactions, err := s.Storage.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}

	response := PeriodReport(transactions, period)
	return &response, nil
}

// FilterByPartition - отбор транзакций одной части таксономии:
// доходных (income=true) или расходных (income=false)
func FilterByPartition(transactions []models.TransactionData, income bool) []models.TransactionData {
	var result []models.TransactionData
	for _, transaction := range transactions {
		if transaction.Category.IsIncome() == income {
			result = append(result, transaction)
		}
	}
	return result
}

// MonthlyStats - суммы транзакций по 12 календарным месяцам заданного года.
// Транзакции других лет не учитываются, месяц без транзакций остаётся "N/A".
// Год передаётся параметром, внутри системное время не читается.
func MonthlyStats(transactions []models.TransactionData, year int) models.MonthsStats {
	var stats models.MonthsStats
	for _, transaction := range transactions {
		if transaction.Date.Year() != year {
			continue
		}
		stats.Add(transaction.Date.Month(), transaction.Amount)
	}
	return stats
}

// PeriodReport - разбивка транзакций за период (YYYY-MM) на доходы и расходы
// с группировкой категория -> описание и накоплением итогов.
// Пустой набор транзакций даёт нулевые итоги и пустые группировки.
func PeriodReport(transactions []models.TransactionData, period string) models.PeriodResponse {
	var (
		response     models.PeriodResponse
		incomeTotal  decimal.Decimal
		expenseTotal decimal.Decimal
	)
	for _, transaction := range transactions {
		if transaction.Date.Format(models.PeriodLayout) != period {
			continue
		}
		if transaction.Category.IsIncome() {
			incomeTotal = incomeTotal.Add(transaction.Amount)
			response.Incomes.Data.Add(transaction.Category, transaction.Description, transaction.Amount)
			continue
		}
		expenseTotal = expenseTotal.Add(transaction.Amount)
		response.Expenses.Data.Add(transaction.Category, transaction.Description, transaction.Amount)
	}
	response.Incomes.Total, _ = incomeTotal.Float64()
	response.Expenses.Total, _ = expenseTotal.Float64()
	return response
}
