package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"order-up/internal/app"
	"order-up/internal/app/core"
	"order-up/pkg/logger"
)

func main() {
	// .env is optional; absence is the normal case outside dev machines.
	_ = godotenv.Load()

	mylogger, err := logger.New("info")
	if err != nil {
		log.Fatalf("log error: %v", err)
	}
	mylogger = mylogger.With("service", "order-up")

	mylogger.Action("order_up_started").Info("Successfully started")

	if err := app.Execute(context.Background(), mylogger, os.Args[1:]); err != nil {
		if errors.Is(err, core.ErrHelp) {
			return
		}
		mylogger.Action("order_up_failed").Error("Error in order service", err)
		os.Exit(1)
	}

	mylogger.Action("order_up_completed").Info("Successfully completed")
}
