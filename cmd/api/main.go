package main

import (
	"os"

	"github.com/joho/godotenv"
)

// @title           Contact Relay API
// @version         1.0
// @description     Receives contact form submissions from approved sites and relays them by email.
// @host            localhost:8080
// @BasePath        /
func main() {
	// Load .env as early as possible
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
