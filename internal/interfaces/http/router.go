// Package http wires the gin engine: middleware chain, session gate, page
// and API routes, and the handler dependency graph.
package http

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	gameusecases "adaptivegame/internal/application/game/usecases"
	userusecases "adaptivegame/internal/application/user/usecases"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/infrastructure/auth"
	"adaptivegame/internal/infrastructure/config"
	"adaptivegame/internal/infrastructure/database"
	"adaptivegame/internal/infrastructure/email"
	"adaptivegame/internal/infrastructure/repository"
	"adaptivegame/internal/interfaces/http/handlers"
	"adaptivegame/internal/interfaces/http/middleware"
	"adaptivegame/internal/shared/authorization"
	"adaptivegame/internal/shared/constants"
	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/services/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// Router holds the configured gin engine and its handlers.
type Router struct {
	engine           *gin.Engine
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	gameHandler      *handlers.GameHandler
	sessionGate      *middleware.SessionGate
	rateLimiter      *middleware.RateLimiter
	logger           logger.Interface
}

// NewRouter builds the full dependency graph from configuration and an open
// database handle.
func NewRouter(db *database.Database, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
	registerValidations()

	gormDB := db.Gorm()
	userRepo := repository.NewUserRepository(gormDB, log)
	resetRepo := repository.NewCredentialResetRepository(gormDB, log)
	gameRepo := repository.NewGameRepository(gormDB, log)
	refRepo := repository.NewReferenceRepository(gormDB, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	resetTokens := auth.NewResetTokenService(cfg.Auth.ResetToken.Secret, cfg.Auth.ResetToken.ExpMinutes)

	var emailSender email.Sender
	if cfg.Database.MockMode() || cfg.Email.SMTPHost == "" {
		emailSender = email.NewNoopEmailService()
	} else {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}

	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	requestResetUC := userusecases.NewRequestPasswordResetUseCase(userRepo, resetRepo, resetTokens, emailSender, log)
	resetPasswordUC := userusecases.NewResetPasswordUseCase(userRepo, resetRepo, resetTokens, hasher, emailSender, log)

	listGamesUC := gameusecases.NewListGamesUseCase(gameRepo, log)
	createGameUC := gameusecases.NewCreateGameUseCase(gameRepo, log)
	newFormUC := gameusecases.NewGetNewGameFormUseCase(refRepo, log)
	renderUC := gameusecases.NewRenderEventMessageUseCase(markdown.NewMarkdownService(), log)

	authHandler := handlers.NewAuthHandler(
		loginUC, requestResetUC, resetPasswordUC,
		cfg.Auth.Session, cfg.Auth.Cookie, log,
	)
	dashboardHandler := handlers.NewDashboardHandler(listGamesUC, db.Ping, log)
	gameHandler := handlers.NewGameHandler(newFormUC, createGameUC, renderUC, log)

	loadUser := func(c *gin.Context, userID uint) bool {
		u, err := getUserUC.Execute(c.Request.Context(), userID)
		if err != nil {
			return false
		}
		c.Set(constants.ContextKeyUserID, u.ID)
		c.Set(constants.ContextKeyUserRole, u.Role.String())
		c.Set(constants.ContextKeyUserName, u.DisplayName())
		return true
	}
	sessionGate := middleware.NewSessionGate(loadUser, cfg.Auth.Cookie, log)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	rateLimiter := middleware.NewRateLimiter(redisClient, 20, 1*time.Minute)

	return &Router{
		engine:           engine,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		gameHandler:      gameHandler,
		sessionGate:      sessionGate,
		rateLimiter:      rateLimiter,
		logger:           log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(r.sessionGate.Handle())

	r.engine.GET("/health", r.dashboardHandler.Health)

	// The root route never renders; the gate redirects it. The handler is
	// registered so the path exists for non-browser clients too.
	r.engine.GET(constants.RouteRoot, func(c *gin.Context) {})

	r.engine.GET(constants.RouteLogin, r.authHandler.ShowLogin)
	r.engine.POST(constants.RouteLogin, r.rateLimiter.Limit(), r.authHandler.Login)
	r.engine.POST("/logout", r.authHandler.Logout)

	r.engine.POST("/password-reset/request", r.rateLimiter.Limit(), r.authHandler.RequestPasswordReset)
	r.engine.POST("/password-reset/confirm", r.authHandler.ResetPassword)

	dashboard := r.engine.Group(constants.RouteDashboard)
	{
		dashboard.GET("", r.dashboardHandler.Dashboard)
		dashboard.GET("/games/new", r.gameHandler.NewGameForm)

		admin := dashboard.Group("", authorization.RequireAdmin())
		{
			admin.POST("/games", r.gameHandler.CreateGame)
			admin.POST("/games/derive", r.gameHandler.Derive)
			admin.POST("/games/messages/preview", r.gameHandler.PreviewMessage)
		}
	}
}

// registerValidations adds the domain value checks to gin's binding
// validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("periodunit", func(fl validator.FieldLevel) bool {
		return game.PeriodUnit(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("nodetype", func(fl validator.FieldLevel) bool {
		return game.NodeType(fl.Field().String()).IsValid()
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
