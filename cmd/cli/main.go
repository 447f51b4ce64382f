package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/adstudio-ai/adstudio/internal/application/commands"
)

func main() {
	_ = godotenv.Load()

	cmd := commands.NewCommandRegistry().RegisterCLI()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
