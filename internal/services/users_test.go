package services

import (
	"context"
	"encoding/json"
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

func TestUsersService_GetUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	users := NewUsers(mockUsers, mockTransactions)

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
		ExpectedJSON  string
	}{
		{
			Name: "Error. User not found #1",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), "1").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			Name: "Success. User with transactions #2",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), "1").Return(
					&models.UserData{UserID: "1", Email: "user@mail.com", Balance: decimal.NewFromInt(1)}, nil)
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return([]models.TransactionData{
					makeTransaction(models.CategorySalary, "Зарплата", 1, "2021-12-31"),
				}, nil)
			},
			ExpectedJSON: `{"id":"1","email":"user@mail.com","balance":1,"transactions":[{"id":"id-Зарплата","description":"Зарплата","category":"З/П","amount":1,"date":"2021-12-31"}]}`,
		},
		{
			Name: "Success. User without transactions #3",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), "1").Return(
					&models.UserData{UserID: "1", Email: "user@mail.com", Balance: decimal.Zero}, nil)
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return(nil, nil)
			},
			ExpectedJSON: `{"id":"1","email":"user@mail.com","balance":0,"transactions":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			info, err := users.GetUserInfo(ctx, "1")

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

			data, err := json.Marshal(info)
			if err != nil {
				t.Fatalf("Failed to marshal user info: '%v'", err)
			}
			diff := cmp.Diff(tc.ExpectedJSON, string(data))
			if len(diff) != 0 {
				t.Errorf("expected user info mismatch:\n %s", diff)
			}
		})
	}
}

func TestUsersService_SetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	users := NewUsers(mockUsers, mockTransactions)

	t.Run("Success. Balance replaced", func(t *testing.T) {
		mockUsers.EXPECT().SetUserBalance(gomock.Any(), "1", decimal.NewFromInt(100)).Return(decimal.NewFromInt(100), nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		response, err := users.SetBalance(ctx, "1", decimal.NewFromInt(100))
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if response.NewBalance != 100 {
			t.Errorf("Expected balance '100', got: '%v'", response.NewBalance)
		}
	})

	t.Run("Error. Storage failure", func(t *testing.T) {
		mockUsers.EXPECT().SetUserBalance(gomock.Any(), "1", gomock.Any()).Return(decimal.Zero, errors.New("failed to set balance"))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if _, err := users.SetBalance(ctx, "1", decimal.NewFromInt(1)); err == nil {
			t.Errorf("Expected error, got none")
		}
	})
}
