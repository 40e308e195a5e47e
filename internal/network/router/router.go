package router

import (
	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/network/handlers"
	"github.com/denmor86/ya-wallet/internal/network/middleware"
	"github.com/denmor86/ya-wallet/internal/services"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config       config.Config
	Identity     services.IdentityService
	OAuth        services.OAuthService
	Users        services.UsersService
	Transactions services.TransactionsService
	Reports      services.ReportsService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	return &Router{
		Config:       config,
		Identity:     services.NewIdentity(config, storage.Users, storage.Sessions),
		OAuth:        services.NewGoogleOAuth(config.Google),
		Users:        services.NewUsers(storage.Users, storage.Transactions),
		Transactions: services.NewTransactions(storage.Transactions),
		Reports:      services.NewReports(storage.Transactions),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	limiter := middleware.NewRateLimiter()
	r := chi.NewRouter()
	r.Use(middleware.LogHandle)
	r.Route("/auth", func(r chi.Router) {
		r.Use(limiter.RateLimitHandle)
		r.Post("/register", handlers.RegisterUserHandler(router.Identity))
		r.Post("/login", handlers.AuthenticateUserHandler(router.Identity, router.Users))
		r.Get("/google", handlers.GoogleAuthHandler(router.OAuth))
		r.Get("/google-redirect", handlers.GoogleRedirectHandler(router.OAuth, router.Identity, router.Config.Google))
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(middleware.TokenHandle)
			r.Post("/refresh", handlers.RefreshTokensHandler(router.Identity))
			r.Post("/logout", handlers.LogoutHandler(router.Identity))
		})
	})
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(middleware.TokenHandle)
		r.Route("/transaction", func(r chi.Router) {
			r.Post("/income", handlers.AddIncomeHandler(router.Transactions))
			r.Post("/expense", handlers.AddExpenseHandler(router.Transactions))
			r.Delete("/{transactionId}", handlers.DeleteTransactionHandler(router.Transactions))
			r.Get("/income", handlers.GetIncomeStatsHandler(router.Reports))
			r.Get("/expense", handlers.GetExpenseStatsHandler(router.Reports))
			r.Get("/income-categories", handlers.GetIncomeCategoriesHandler())
			r.Get("/expense-categories", handlers.GetExpenseCategoriesHandler())
			r.Get("/period-data", handlers.GetPeriodDataHandler(router.Reports))
		})
		r.Route("/user", func(r chi.Router) {
			r.Get("/", handlers.GetUserHandler(router.Users))
			r.Patch("/balance", handlers.SetBalanceHandler(router.Users))
		})
	})
	return r
}
