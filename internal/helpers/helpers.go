package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	uid, ok := claims["uid"].(string)
	if !ok {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return uid, nil
}

// WriteMessage - выдача сообщения об ошибке в формате {"message": ...}
func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		logger.Error("Failed to encode JSON message:", err)
	}
}

// WriteJSON - выдача успешного ответа в формате JSON
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}

// GetSessionID - извлекает идентификатор сессии из контекста JWT токена
func GetSessionID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	sid, ok := claims["sid"].(string)
	if !ok {
		logger.Warn("Undefined session id from token")
		return "", fmt.Errorf("undefined session id")
	}
	return sid, nil
}
