package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/denmor86/ya-wallet/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestTransactionsService_AddIncome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	transactions := NewTransactions(mockTransactions)

	testCases := []struct {
		Name            string
		Request         models.TransactionRequest
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance float64
	}{
		{
			Name: "Error. Expense category on income endpoint #1",
			Request: models.TransactionRequest{
				Description: "Хлеб",
				Amount:      decimal.NewFromInt(1),
				Date:        "2021-12-31",
				Category:    models.CategoryProducts,
			},
			SetupMocks:    func() {},
			ExpectedError: ErrNotIncomeCategory,
		},
		{
			Name: "Error. Failed add transaction #2",
			Request: models.TransactionRequest{
				Description: "Зарплата",
				Amount:      decimal.NewFromInt(1),
				Date:        "2021-12-31",
				Category:    models.CategorySalary,
			},
			SetupMocks: func() {
				mockTransactions.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(decimal.Zero, errors.New("failed to add transaction"))
			},
			ExpectedError: errors.New("failed to add transaction"),
		},
		{
			Name: "Success. Balance increased by amount #3",
			Request: models.TransactionRequest{
				Description: "Зарплата",
				Amount:      decimal.NewFromInt(1),
				Date:        "2021-12-31",
				Category:    models.CategorySalary,
			},
			SetupMocks: func() {
				mockTransactions.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction models.TransactionData) (decimal.Decimal, error) {
						// хранилище применяет знаковую сумму к нулевому балансу
						return transaction.BalanceDelta(), nil
					})
			},
			ExpectedBalance: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := transactions.AddIncome(ctx, "1", tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError != nil {
				return
			}

			if response.NewBalance != tc.ExpectedBalance {
				t.Errorf("Expected balance '%v', got: '%v'", tc.ExpectedBalance, response.NewBalance)
			}
			expected := models.TransactionResponse{
				ID:          response.Transaction.ID,
				Description: tc.Request.Description,
				Category:    tc.Request.Category,
				Amount:      1,
				Date:        tc.Request.Date,
			}
			diff := cmp.Diff(expected, response.Transaction)
			if len(diff) != 0 {
				t.Errorf("expected transaction mismatch:\n %s", diff)
			}
			if response.Transaction.ID == "" {
				t.Errorf("Expected generated transaction id")
			}
		})
	}
}

func TestTransactionsService_AddExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	transactions := NewTransactions(mockTransactions)

	testCases := []struct {
		Name            string
		Request         models.TransactionRequest
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance float64
	}{
		{
			Name: "Error. Income category on expense endpoint #1",
			Request: models.TransactionRequest{
				Description: "Зарплата",
				Amount:      decimal.NewFromInt(1),
				Date:        "2021-12-31",
				Category:    models.CategorySalary,
			},
			SetupMocks:    func() {},
			ExpectedError: ErrNotExpenseCategory,
		},
		{
			Name: "Success. Balance decreased by amount #2",
			Request: models.TransactionRequest{
				Description: "Свет",
				Amount:      decimal.NewFromInt(1),
				Date:        "2021-12-31",
				Category:    models.CategoryUtilities,
			},
			SetupMocks: func() {
				mockTransactions.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction models.TransactionData) (decimal.Decimal, error) {
						// хранилище применяет знаковую сумму к балансу 1
						return decimal.NewFromInt(1).Add(transaction.BalanceDelta()), nil
					})
			},
			ExpectedBalance: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := transactions.AddExpense(ctx, "1", tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError != nil {
				return
			}

			if response.NewBalance != tc.ExpectedBalance {
				t.Errorf("Expected balance '%v', got: '%v'", tc.ExpectedBalance, response.NewBalance)
			}
		})
	}
}

func TestTransactionsService_DeleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	transactions := NewTransactions(mockTransactions)

	testCases := []struct {
		Name            string
		TransactionID   string
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance float64
	}{
		{
			Name:          "Error. Transaction not found #1",
			TransactionID: "missing",
			SetupMocks: func() {
				mockTransactions.EXPECT().DeleteTransaction(gomock.Any(), "1", "missing").Return(nil, decimal.Zero, storage.ErrTransactionNotFound)
			},
			ExpectedError: storage.ErrTransactionNotFound,
		},
		{
			Name:          "Success. Income delete decreases balance #2",
			TransactionID: "tx-1",
			SetupMocks: func() {
				deleted := makeTransaction(models.CategorySalary, "Зарплата", 1, "2021-12-31")
				mockTransactions.EXPECT().DeleteTransaction(gomock.Any(), "1", "tx-1").Return(&deleted, decimal.Zero, nil)
			},
			ExpectedBalance: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := transactions.DeleteTransaction(ctx, "1", tc.TransactionID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError != nil {
				return
			}

			if response.NewBalance != tc.ExpectedBalance {
				t.Errorf("Expected balance '%v', got: '%v'", tc.ExpectedBalance, response.NewBalance)
			}
		})
	}
}
