// Command tokengen mints a bearer token for the /cep routes.
//
//	TOKEN_SECRET=... go run ./cmd/tokengen -sub billing-service -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	handlers "github.com/sm8ta/cep_cache_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/logger"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("sub", "", "token subject, usually the calling service")
	ttl := flag.String("ttl", "", "token lifetime, defaults to TOKEN_DURATION")
	flag.Parse()

	// tokengen needs only the token settings.
	_ = godotenv.Load()
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		log.Fatal("TOKEN_SECRET is not set")
	}
	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	duration := os.Getenv("TOKEN_DURATION")
	if *ttl != "" {
		duration = *ttl
	}

	tokenService := handlers.NewJWTTokenService(secret, duration, logger.NewLoggerAdapter(os.Getenv("APP_ENV")))
	token, err := tokenService.CreateToken(*subject)
	if err != nil {
		log.Fatalf("Error creating token: %v", err)
	}
	fmt.Println(token)
}
