package main

import (
	"log"

	_ "fiftymais/docs"
	"fiftymais/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fifty+ API
// @version         1.0
// @description     Quote builder for furniture makers with subscription checkout and account provisioning.
// @termsOfService  http://swagger.io/terms/

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
