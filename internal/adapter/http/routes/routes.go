package routes

import (
	"context"
	"log"
	"net/http"

	_ "tuition_billing/docs"
	"tuition_billing/internal/adapter/http/handlers"
	"tuition_billing/internal/adapter/http/middleware"
	"tuition_billing/internal/adapter/persistence/repository"
	"tuition_billing/internal/infrastructure/config"
	"tuition_billing/internal/infrastructure/database"
	"tuition_billing/internal/infrastructure/events"
	"tuition_billing/internal/infrastructure/sidechannel"
	"tuition_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router serves.
type Dependencies struct {
	PaymentClaims  *handlers.PaymentClaimHandler
	Verdicts       *handlers.VerdictHandler
	Auth           middleware.AuthOptions
	CallbackSecret string
}

// NewRouter builds the HTTP surface. It holds no state beyond deps.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentClaimRoutes(v1, middleware.Authenticate(deps.Auth), deps.PaymentClaims)
	addVerdictRoutes(v1, deps.CallbackSecret, deps.Verdicts)

	return router
}

// Build wires the saga from configuration. The returned cleanup releases the
// broker connection.
func Build(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	claimRepo := repository.NewPaymentClaimDynamoRepository(ddb, cfg.PaymentClaimsTable)
	profileRepo := repository.NewFeeStatusDynamoRepository(ddb, cfg.FeeStatusTable)
	applicationRepo := repository.NewApplicationDynamoRepository(ddb, cfg.ApplicationsTable)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable)
	directoryRepo := repository.NewDirectoryDynamoRepository(ddb, cfg.ScholarshipsTable, cfg.UniversitiesTable)

	client := sidechannel.NewBestEffortClient(cfg.SideChannelTimeout(), cfg.SideChannelMock)
	dispatcher := sidechannel.NewValidatorDispatcher(client, cfg.ValidatorWebhookURL)
	emailWebhook := sidechannel.NewEmailWebhook(client, cfg.EmailWebhookURL)
	publisher := events.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)

	notificationUseCase := usecase.NewNotificationUseCase(profileRepo, applicationRepo, directoryRepo, notificationRepo, emailWebhook)
	reconciliationUseCase := usecase.NewReconciliationUseCase(profileRepo, applicationRepo, notificationUseCase, publisher)
	claimUseCase := usecase.NewPaymentClaimUseCase(claimRepo, dispatcher, cfg.VerdictCallbackURL())
	verdictUseCase := usecase.NewVerdictUseCase(claimRepo, reconciliationUseCase)

	if cfg.AuthJWTSecret == "" && !cfg.AuthAllowHeaderFallback {
		log.Printf("[routes] AUTH_JWT_SECRET not set; payment-claim routes will reject every request")
	}
	if cfg.ValidatorCallbackSecret == "" {
		log.Printf("[routes] VALIDATOR_CALLBACK_SECRET not set; verdict callbacks are unauthenticated")
	}

	router := NewRouter(Dependencies{
		PaymentClaims: handlers.NewPaymentClaimHandler(claimUseCase),
		Verdicts:      handlers.NewVerdictHandler(verdictUseCase),
		Auth: middleware.AuthOptions{
			Secret:              cfg.AuthJWTSecret,
			Issuer:              cfg.AuthJWTIssuer,
			Audience:            cfg.AuthJWTAudience,
			AllowHeaderFallback: cfg.AuthAllowHeaderFallback,
		},
		CallbackSecret: cfg.ValidatorCallbackSecret,
	})
	return router, publisher.Close, nil
}

// Run will start the server
func Run(cfg config.Config) error {
	router, cleanup, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Printf("[routes] listening port=%s", cfg.ServerPort)
	return router.Run(":" + cfg.ServerPort)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics())
}
