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
	"github.com/denmor86/ya-wallet/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func makeTransaction(category models.Category, description string, amount int64, date string) models.TransactionData {
	parsed, _ := time.Parse(models.DateLayout, date)
	return models.TransactionData{
		ID:          "id-" + description,
		UserID:      "1",
		Description: description,
		Category:    category,
		Amount:      decimal.NewFromInt(amount),
		Date:        parsed,
	}
}

func TestMonthlyStats(t *testing.T) {
	testCases := []struct {
		Name         string
		Transactions []models.TransactionData
		Year         int
		ExpectedJSON string
	}{
		{
			Name:         "Empty transactions, all months N/A #1",
			Transactions: nil,
			Year:         2021,
			ExpectedJSON: `{"Январь":"N/A","Февраль":"N/A","Март":"N/A","Апрель":"N/A","Май":"N/A","Июнь":"N/A","Июль":"N/A","Август":"N/A","Сентябрь":"N/A","Октябрь":"N/A","Ноябрь":"N/A","Декабрь":"N/A"}`,
		},
		{
			Name: "December salary, other months N/A #2",
			Transactions: []models.TransactionData{
				makeTransaction(models.CategorySalary, "Зарплата", 1, "2021-12-31"),
			},
			Year:         2021,
			ExpectedJSON: `{"Январь":"N/A","Февраль":"N/A","Март":"N/A","Апрель":"N/A","Май":"N/A","Июнь":"N/A","Июль":"N/A","Август":"N/A","Сентябрь":"N/A","Октябрь":"N/A","Ноябрь":"N/A","Декабрь":1}`,
		},
		{
			Name: "Strict year filter, prior and future years ignored #3",
			Transactions: []models.TransactionData{
				makeTransaction(models.CategorySalary, "Зарплата", 100, "2020-12-31"),
				makeTransaction(models.CategorySalary, "Аванс", 42, "2022-12-01"),
				makeTransaction(models.CategorySalary, "Премия", 7, "2021-03-15"),
			},
			Year:         2021,
			ExpectedJSON: `{"Январь":"N/A","Февраль":"N/A","Март":7,"Апрель":"N/A","Май":"N/A","Июнь":"N/A","Июль":"N/A","Август":"N/A","Сентябрь":"N/A","Октябрь":"N/A","Ноябрь":"N/A","Декабрь":"N/A"}`,
		},
		{
			Name: "Amounts are summed per month #4",
			Transactions: []models.TransactionData{
				makeTransaction(models.CategorySalary, "Зарплата", 10, "2021-05-01"),
				makeTransaction(models.CategoryAdditionalIncome, "Подработка", 5, "2021-05-20"),
			},
			Year:         2021,
			ExpectedJSON: `{"Январь":"N/A","Февраль":"N/A","Март":"N/A","Апрель":"N/A","Май":15,"Июнь":"N/A","Июль":"N/A","Август":"N/A","Сентябрь":"N/A","Октябрь":"N/A","Ноябрь":"N/A","Декабрь":"N/A"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			stats := MonthlyStats(tc.Transactions, tc.Year)
			data, err := json.Marshal(stats)
			if err != nil {
				t.Fatalf("Failed to marshal stats: '%v'", err)
			}
			diff := cmp.Diff(tc.ExpectedJSON, string(data))
			if len(diff) != 0 {
				t.Errorf("expected stats mismatch:\n %s", diff)
			}
		})
	}
}

func TestMonthlyStats_SumProperty(t *testing.T) {
	// сумма числовых корзин равна сумме транзакций текущего года
	transactions := []models.TransactionData{
		makeTransaction(models.CategorySalary, "Зарплата", 10, "2021-01-01"),
		makeTransaction(models.CategorySalary, "Зарплата", 20, "2021-06-15"),
		makeTransaction(models.CategoryAdditionalIncome, "Подработка", 30, "2021-06-20"),
		makeTransaction(models.CategorySalary, "Зарплата", 999, "2020-06-20"),
	}

	stats := MonthlyStats(transactions, 2021)

	total := decimal.Zero
	for month := time.January; month <= time.December; month++ {
		if sum, ok := stats.Total(month); ok {
			total = total.Add(sum)
		}
	}
	if !total.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Expected months total 60, got: '%s'", total)
	}
}

func TestPeriodReport(t *testing.T) {
	transactions := []models.TransactionData{
		makeTransaction(models.CategorySalary, "Зарплата", 1, "2021-12-31"),
		makeTransaction(models.CategoryUtilities, "Свет", 1, "2021-12-31"),
	}

	testCases := []struct {
		Name         string
		Transactions []models.TransactionData
		Period       string
		ExpectedJSON string
	}{
		{
			Name:         "Income and expense split for matching period #1",
			Transactions: transactions,
			Period:       "2021-12",
			ExpectedJSON: `{"incomes":{"incomeTotal":1,"incomesData":{"З/П":{"total":1,"Зарплата":1}}},"expenses":{"expenseTotal":1,"expensesData":{"Коммуналка и связь":{"total":1,"Свет":1}}}}`,
		},
		{
			Name:         "No matching transactions, zero totals and empty data #2",
			Transactions: transactions,
			Period:       "2016-12",
			ExpectedJSON: `{"incomes":{"incomeTotal":0,"incomesData":{}},"expenses":{"expenseTotal":0,"expensesData":{}}}`,
		},
		{
			Name:         "Empty transaction set #3",
			Transactions: nil,
			Period:       "2021-12",
			ExpectedJSON: `{"incomes":{"incomeTotal":0,"incomesData":{}},"expenses":{"expenseTotal":0,"expensesData":{}}}`,
		},
		{
			Name: "Categories and descriptions keep first-seen order #4",
			Transactions: []models.TransactionData{
				makeTransaction(models.CategoryProducts, "Хлеб", 2, "2021-12-01"),
				makeTransaction(models.CategoryAlcohol, "Вино", 5, "2021-12-02"),
				makeTransaction(models.CategoryProducts, "Молоко", 3, "2021-12-03"),
				makeTransaction(models.CategoryProducts, "Хлеб", 2, "2021-12-04"),
			},
			Period:       "2021-12",
			ExpectedJSON: `{"incomes":{"incomeTotal":0,"incomesData":{}},"expenses":{"expenseTotal":12,"expensesData":{"Продукты":{"total":7,"Хлеб":4,"Молоко":3},"Алкоголь":{"total":5,"Вино":5}}}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			report := PeriodReport(tc.Transactions, tc.Period)
			data, err := json.Marshal(report)
			if err != nil {
				t.Fatalf("Failed to marshal report: '%v'", err)
			}
			diff := cmp.Diff(tc.ExpectedJSON, string(data))
			if len(diff) != 0 {
				t.Errorf("expected report mismatch:\n %s", diff)
			}
		})
	}
}

func TestPeriodReport_TotalsProperty(t *testing.T) {
	// итог раздела равен сумме итогов категорий
	transactions := []models.TransactionData{
		makeTransaction(models.CategoryProducts, "Хлеб", 2, "2021-12-01"),
		makeTransaction(models.CategoryAlcohol, "Вино", 5, "2021-12-02"),
		makeTransaction(models.CategoryProducts, "Молоко", 3, "2021-12-03"),
		makeTransaction(models.CategorySalary, "Зарплата", 50, "2021-12-05"),
	}

	report := PeriodReport(transactions, "2021-12")

	expenseTotal := decimal.Zero
	for _, category := range report.Expenses.Data.Categories() {
		expenseTotal = expenseTotal.Add(report.Expenses.Data.CategoryTotal(category))
	}
	value, _ := expenseTotal.Float64()
	if value != report.Expenses.Total {
		t.Errorf("Expected expense total '%v', got: '%v'", report.Expenses.Total, value)
	}

	incomeTotal := decimal.Zero
	for _, category := range report.Incomes.Data.Categories() {
		incomeTotal = incomeTotal.Add(report.Incomes.Data.CategoryTotal(category))
	}
	value, _ = incomeTotal.Float64()
	if value != report.Incomes.Total {
		t.Errorf("Expected income total '%v', got: '%v'", report.Incomes.Total, value)
	}
}

func TestReportsService_GetIncomeStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	reports := &Reports{
		Storage: mockTransactions,
		Now: func() time.Time {
			return time.Date(2021, time.December, 31, 12, 0, 0, 0, time.UTC)
		},
	}

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
		ExpectedJSON  string
	}{
		{
			Name: "Error. Failed get transactions #1",
			SetupMocks: func() {
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return(nil, errors.New("failed to get transactions"))
			},
			ExpectedError: errors.New("failed to get transactions"),
		},
		{
			Name: "Success. Expenses are filtered out #2",
			SetupMocks: func() {
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return([]models.TransactionData{
					makeTransaction(models.CategorySalary, "Зарплата", 1, "2021-12-31"),
					makeTransaction(models.CategoryProducts, "Хлеб", 2, "2021-12-31"),
				}, nil)
			},
			ExpectedJSON: `{"incomes":[{"id":"id-Зарплата","description":"Зарплата","category":"З/П","amount":1,"date":"2021-12-31"}],"monthsStats":{"Январь":"N/A","Февраль":"N/A","Март":"N/A","Апрель":"N/A","Май":"N/A","Июнь":"N/A","Июль":"N/A","Август":"N/A","Сентябрь":"N/A","Октябрь":"N/A","Ноябрь":"N/A","Декабрь":1}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			stats, err := reports.GetIncomeStats(ctx, "1")

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

			data, err := json.Marshal(stats)
			if err != nil {
				t.Fatalf("Failed to marshal stats: '%v'", err)
			}
			diff := cmp.Diff(tc.ExpectedJSON, string(data))
			if len(diff) != 0 {
				t.Errorf("expected stats mismatch:\n %s", diff)
			}
		})
	}
}
