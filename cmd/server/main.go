// Command server runs the teamchat HTTP API.
package main

import (
	"context"
	"log"

	"github.com/mhladky/teamchat-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
