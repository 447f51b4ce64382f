package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/adstudio-ai/adstudio/internal/application/commands"
)

// Runs the API server directly, equivalent to `adstudio serve`.
func main() {
	_ = godotenv.Load()

	args := append([]string{os.Args[0], "serve"}, os.Args[1:]...)

	cmd := commands.NewCommandRegistry().RegisterCLI()
	if err := cmd.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}
