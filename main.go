package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"clanbot/cmd"
)

func main() {
	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Check for the one-shot leaderboard subcommand
	if len(os.Args) > 1 && os.Args[1] == "leaderboard" {
		if err := handleLeaderboardCommand(); err != nil {
			log.Fatal("Leaderboard error:", err)
		}
		return
	}

	// Normal bot operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleLeaderboardCommand() error {
	path, err := cmd.RunLeaderboardOnce(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
