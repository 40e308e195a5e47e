package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/helpers"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/denmor86/ya-wallet/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if user.Email == "" || user.Password == "" {
			helpers.WriteMessage(w, http.StatusBadRequest, "'email' and 'password' are required")
			return
		}

		// регистрация в Identity
		created, err := i.RegisterUser(r.Context(), user)
		if err != nil {
			// пользователь уже существует
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", user.Email)
				helpers.WriteMessage(w, http.StatusConflict, "User with this email already exists")
			} else {
				// ошибка регистрации
				logger.Error("Error register user", err)
				helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		logger.Info("User registered", created.Email)
		helpers.WriteJSON(w, http.StatusCreated, models.RegisterResponse{
			ID:    created.UserID,
			Email: created.Email,
		})
	})
}

// AuthenticateUserHandler — аутентификация пользователя с выдачей
// пары токенов и сессии
func AuthenticateUserHandler(i services.IdentityService, u services.UsersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		// аутентификация в Identity
		authenticated, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Warn("Authentication failed", user.Email)
				helpers.WriteMessage(w, http.StatusForbidden, "Email doesn't exist / Password is wrong")
				return
			}
			logger.Error("Error authenticate user", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}
		// создание сессии и пары токенов
		tokens, err := i.NewSession(r.Context(), authenticated.UserID)
		if err != nil {
			logger.Error("Failed to create session", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		info, err := u.GetUserInfo(r.Context(), authenticated.UserID)
		if err != nil {
			logger.Error("Failed to get user info", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		logger.Info("User authenticated", user.Email)
		helpers.WriteJSON(w, http.StatusOK, models.LoginResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			SessionID:    tokens.SessionID,
			User:         *info,
		})
	})
}

// RefreshTokensHandler — замена сессии с выдачей новой пары токенов.
// Запрос приходит с refresh-токеном и идентификатором заменяемой сессии.
func RefreshTokensHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		var request models.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if request.SessionID == "" {
			helpers.WriteMessage(w, http.StatusBadRequest, "'sid' is required")
			return
		}

		tokens, err := i.RefreshSession(r.Context(), userID, request.SessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				helpers.WriteMessage(w, http.StatusNotFound, "Invalid session")
				return
			}
			logger.Error("Failed to refresh session", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, models.RefreshResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			SessionID:    tokens.SessionID,
		})
	})
}

// LogoutHandler — завершение текущей сессии пользователя
func LogoutHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := helpers.GetSessionID(r.Context())
		if err != nil {
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if err := i.Logout(r.Context(), sessionID); err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				helpers.WriteMessage(w, http.StatusNotFound, "Invalid session")
				return
			}
			logger.Error("Failed to logout", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GoogleAuthHandler — перенаправление пользователя на страницу согласия Google
func GoogleAuthHandler(o services.OAuthService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, o.AuthURL(), http.StatusTemporaryRedirect)
	})
}

// GoogleRedirectHandler — приём кода авторизации Google: пользователь
// находится или создаётся по почте, выданные токены передаются фронту
// параметрами перенаправления
func GoogleRedirectHandler(o services.OAuthService, i services.IdentityService, cfg config.GoogleConfig) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			helpers.WriteMessage(w, http.StatusBadRequest, "'code' query parameter is required")
			return
		}

		email, err := o.Authenticate(r.Context(), code)
		if err != nil {
			logger.Error("Failed to authenticate with Google", err)
			helpers.WriteMessage(w, http.StatusBadGateway, "Google authentication failed")
			return
		}

		user, err := i.FindOrRegisterUser(r.Context(), email)
		if err != nil {
			logger.Error("Failed to find or register user", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		tokens, err := i.NewSession(r.Context(), user.UserID)
		if err != nil {
			logger.Error("Failed to create session", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		params := url.Values{
			"accessToken":  {tokens.AccessToken},
			"refreshToken": {tokens.RefreshToken},
			"sid":          {tokens.SessionID},
		}
		http.Redirect(w, r, cfg.FrontendURL+"?"+params.Encode(), http.StatusTemporaryRedirect)
	})
}
