package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/tendedero-app/tendedero-api/internal/api"
	"github.com/tendedero-app/tendedero-api/internal/logger"
)

func main() {
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run tendedero api: %v", err))
	}
}
