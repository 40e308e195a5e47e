package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/ya-wallet/internal/helpers"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/services"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/denmor86/ya-wallet/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// decodeTransactionRequest - разбор и проверка запроса создания транзакции
func decodeTransactionRequest(w http.ResponseWriter, r *http.Request) (*models.TransactionRequest, bool) {
	var request models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("Invalid request format:", zap.Error(err))
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	if request.Description == "" {
		helpers.WriteMessage(w, http.StatusBadRequest, "'description' is required")
		return nil, false
	}
	if !validators.CheckAmount(request.Amount) {
		helpers.WriteMessage(w, http.StatusBadRequest, "'amount' must be greater than 0")
		return nil, false
	}
	if !validators.CheckDate(request.Date) {
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid 'date'. Please, use YYYY-MM-DD string format")
		return nil, false
	}
	if !validators.CheckCategory(request.Category) {
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid 'category'")
		return nil, false
	}
	return &request, true
}

// AddIncomeHandler — добавление доходной транзакции пользователем
func AddIncomeHandler(t services.TransactionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		request, ok := decodeTransactionRequest(w, r)
		if !ok {
			return
		}

		response, err := t.AddIncome(r.Context(), userID, *request)
		if err != nil {
			if errors.Is(err, services.ErrNotIncomeCategory) {
				helpers.WriteMessage(w, http.StatusBadRequest, "'category' must be an income category")
				return
			}
			logger.Error("Failed to add income:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusCreated, response)
	})
}

// AddExpenseHandler — добавление расходной транзакции пользователем
func AddExpenseHandler(t services.TransactionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		request, ok := decodeTransactionRequest(w, r)
		if !ok {
			return
		}

		response, err := t.AddExpense(r.Context(), userID, *request)
		if err != nil {
			if errors.Is(err, services.ErrNotExpenseCategory) {
				helpers.WriteMessage(w, http.StatusBadRequest, "'category' must be an expense category")
				return
			}
			logger.Error("Failed to add expense:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusCreated, response)
	})
}

// DeleteTransactionHandler — удаление транзакции пользователя
// с обратным изменением баланса
func DeleteTransactionHandler(t services.TransactionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		transactionID := chi.URLParam(r, "transactionId")
		if transactionID == "" {
			helpers.WriteMessage(w, http.StatusBadRequest, "'transactionId' is required")
			return
		}

		response, err := t.DeleteTransaction(r.Context(), userID, transactionID)
		if err != nil {
			if errors.Is(err, storage.ErrTransactionNotFound) {
				helpers.WriteMessage(w, http.StatusNotFound, "Transaction not found")
				return
			}
			logger.Error("Failed to delete transaction:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, response)
	})
}

// GetIncomeStatsHandler — доходные транзакции пользователя и их суммы
// по месяцам текущего года
func GetIncomeStatsHandler(s services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		response, err := s.GetIncomeStats(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get income stats:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, response)
	})
}

// GetExpenseStatsHandler — расходные транзакции пользователя и их суммы
// по месяцам текущего года
func GetExpenseStatsHandler(s services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		response, err := s.GetExpenseStats(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get expense stats:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, response)
	})
}

// GetIncomeCategoriesHandler — список категорий доходов
func GetIncomeCategoriesHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, models.IncomeCategories())
	})
}

// GetExpenseCategoriesHandler — список категорий расходов
func GetExpenseCategoriesHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, models.ExpenseCategories())
	})
}

// GetPeriodDataHandler — отчёт по категориям и описаниям за период
func GetPeriodDataHandler(s services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		period := r.URL.Query().Get("date")
		if !validators.CheckPeriod(period) {
			helpers.WriteMessage(w, http.StatusBadRequest, "Invalid 'date'. Please, use YYYY-MM string format")
			return
		}

		response, err := s.GetPeriodReport(r.Context(), userID, period)
		if err != nil {
			logger.Error("Failed to get period report:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, response)
	})
}
