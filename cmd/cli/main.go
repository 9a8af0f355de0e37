package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/gocalendar/internal/client/api"
	"github.com/dtroode/gocalendar/internal/client/cli"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "calendar server base URL")
	tokenFile := flag.String("token-file", cli.DefaultTokenPath(), "file that keeps the session token")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	app, err := cli.NewApp(api.NewClient(*serverURL, nil), cli.NewTokenStore(*tokenFile), os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
