package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// eventlog tails the freelancer lifecycle stream. Useful when debugging
// why a downstream dashboard did or did not receive an event.
func main() {
	godotenv.Load()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	sub, err := pktNats.NewSubscriber(natsURL)
	if err != nil {
		color.Red("Failed to connect to NATS: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	err = sub.Subscribe("freelancer.>", "eventlog", func(ctx context.Context, event events.Event) error {
		data, _ := json.Marshal(event.Payload())
		fmt.Printf("%s %s %s\n",
			time.Now().Format(time.RFC3339),
			color.CyanString("%-20s", event.EventType()),
			string(data),
		)
		return nil
	})
	if err != nil {
		color.Red("Failed to subscribe: %v", err)
		os.Exit(1)
	}

	color.Green("Tailing freelancer lifecycle events. Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
