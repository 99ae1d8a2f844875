package main

import (
	"os"

	"github.com/roosce/monday-question/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Best-effort: lets MONDAYQ_API_KEY and friends live in a local .env.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
