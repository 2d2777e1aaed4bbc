package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chikukwa/busbooking/internal/client"
	"github.com/chikukwa/busbooking/internal/console"
)

func main() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("BUSBOOKING_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	baseURL := flag.String("server", defaultURL, "base URL of the booking server")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl := console.NewController(client.New(*baseURL), os.Stdin, os.Stdout)
	if err := ctrl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "busctl: %v\n", err)
		os.Exit(1)
	}
}
