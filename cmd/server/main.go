// Command server runs the contact management API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/contactdesk/backend/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
