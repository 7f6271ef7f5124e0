package main

import (
	"log"
	"os"

	"github.com/af0b9b/qrlogo/cmd/app"
	"github.com/af0b9b/qrlogo/internal/adapters/config"
	"github.com/af0b9b/qrlogo/pkg/logger"
)

func main() {
	cfg := config.Get()

	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err = a.Run(); err != nil {
		logger.Log.Errorf("Generation failed: %v", err)
		os.Exit(1)
	}
}
