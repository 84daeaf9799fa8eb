// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type HazardReport struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Lat        float64   `json:"location_lat"`
	Lng        float64   `json:"location_lng"`
	TrustScore float64   `json:"trust_score"`
	Status     string    `json:"status"`
}

type ReportEvent struct {
	Event      string       `json:"event"`
	Report     HazardReport `json:"report"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Test event (downtown construction report)
	event := ReportEvent{
		Event: "new_report",
		Report: HazardReport{
			ID:         uuid.New(),
			Type:       "Construction",
			Message:    "Sidewalk closed for repaving",
			Lat:        40.7128,
			Lng:        -74.0060,
			TrustScore: 0.66,
			Status:     "active",
		},
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:reports:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:reports:events\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Report ID: %s\n", event.Report.ID)

	// The relay worker should re-publish the event on the pub/sub channel.
	fmt.Printf("\n⏳ Waiting for relay on reports:updates...\n")

	sub := client.Subscribe(ctx, "reports:updates")
	defer sub.Close()

	timeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for {
		msg, err := sub.ReceiveMessage(timeout)
		if err != nil {
			fmt.Println("❌ Timeout waiting for relayed event")
			return
		}

		var relayed ReportEvent
		if err := json.Unmarshal([]byte(msg.Payload), &relayed); err != nil {
			continue
		}

		if relayed.Report.ID == event.Report.ID {
			fmt.Printf("\n✅ Event relayed!\n")
			prettyJSON, _ := json.MarshalIndent(relayed, "", "  ")
			fmt.Printf("%s\n", prettyJSON)
			return
		}
	}
}
