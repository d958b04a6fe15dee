package main

import (
	"log"

	"github.com/linkdock/linkdock/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkdock failed to start: %v", err)
	}
}
