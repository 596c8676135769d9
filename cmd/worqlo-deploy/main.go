package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/worqlo/deploy-tools/internal/cli"
)

func main() {
	// Best effort; configuration comes from the environment either way.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrMissingDatabaseURL) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
