package main

import (
	"log"

	"tuition_billing/internal/adapter/http/routes"
	"tuition_billing/internal/infrastructure/config"
	"tuition_billing/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Tuition Billing API
// @version         1.0
// @description     Payment proof verification saga: proof intake, validator verdicts, fee reconciliation and university notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)
	metrics.Init()

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
