package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/johnwards/learnseed/internal/cli"
)

func init() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
}

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
