package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout - формат даты транзакции в запросах и ответах
const DateLayout = "2006-01-02"

// PeriodLayout - формат периода (год-месяц) в запросе отчёта
const PeriodLayout = "2006-01"

// TransactionRequest - модель создания транзакции, приходит извне
type TransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    Category        `json:"category"`
}

// TransactionData - модель транзакции из хранилища
type TransactionData struct {
	ID          string
	UserID      string
	Description string
	Category    Category
	Amount      decimal.Decimal
	Date        time.Time
}

// BalanceDelta - знаковое изменение баланса от транзакции:
// доходная категория увеличивает баланс, расходная - уменьшает
func (t TransactionData) BalanceDelta() decimal.Decimal {
	if t.Category.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionResponse - модель транзакции для выдачи
type TransactionResponse struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Amount      float64  `json:"amount"`
	Date        string   `json:"date"`
}

// NewTransactionResponse - преобразование модели хранилища в модель выдачи
func NewTransactionResponse(t TransactionData) TransactionResponse {
	amount, _ := t.Amount.Float64()
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Category:    t.Category,
		Amount:      amount,
		Date:        t.Date.Format(DateLayout),
	}
}

// NewTransactionResponses - преобразование списка транзакций для выдачи.
// Пустой список выдаётся как [], а не null.
func NewTransactionResponses(transactions []TransactionData) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, NewTransactionResponse(t))
	}
	return result
}

// NewBalanceResponse - модель ответа на изменение баланса
type NewBalanceResponse struct {
	NewBalance float64 `json:"newBalance"`
}

// CreatedTransactionResponse - модель ответа на создание транзакции
type CreatedTransactionResponse struct {
	NewBalance  float64             `json:"newBalance"`
	Transaction TransactionResponse `json:"transaction"`
}
