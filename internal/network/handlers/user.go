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
	"go.uber.org/zap"
)

// GetUserHandler — данные пользователя с балансом и списком транзакций
func GetUserHandler(u services.UsersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		info, err := u.GetUserInfo(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				helpers.WriteMessage(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Error("Failed to get user info:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, info)
	})
}

// SetBalanceHandler — прямая установка баланса пользователем
func SetBalanceHandler(u services.UsersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		var request models.BalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if !validators.CheckAmount(request.NewBalance) {
			helpers.WriteMessage(w, http.StatusBadRequest, "'newBalance' must be greater than 0")
			return
		}

		response, err := u.SetBalance(r.Context(), userID, request.NewBalance)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				helpers.WriteMessage(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Error("Failed to set balance:", zap.Error(err))
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, response)
	})
}
