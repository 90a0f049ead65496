//go:build ignore

// Publishes one import request and waits for the worker's done event.
//
//	go run scripts/publish_import.go -operator-code ANWE -operator-slug arriva-north-west
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

const (
	requestStream = "stream:routes:import"
	doneStream    = "stream:routes:import:done"
)

type importRequestEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	OperatorCode string    `json:"operator_code"`
	OperatorSlug string    `json:"operator_slug"`
	RequestedAt  time.Time `json:"requested_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	operatorCode := flag.String("operator-code", "", "bustimes operator code")
	operatorSlug := flag.String("operator-slug", "", "local operator slug")
	wait := flag.Duration("wait", 60*time.Second, "how long to wait for the done event")
	flag.Parse()

	if *operatorCode == "" || *operatorSlug == "" {
		log.Fatal("-operator-code and -operator-slug are required")
	}

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Read the done stream from here on, so older results are ignored.
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, doneStream, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	event := importRequestEvent{
		RequestID:    uuid.New(),
		OperatorCode: *operatorCode,
		OperatorSlug: *operatorSlug,
		RequestedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: requestStream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published import request %s (message %s)\n", event.RequestID, id)
	fmt.Printf("Waiting for %s...\n", doneStream)

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{doneStream, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && err != redis.Nil {
			log.Fatalf("Failed to read %s: %v", doneStream, err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done map[string]interface{}
				if err := json.Unmarshal([]byte(raw), &done); err != nil {
					continue
				}
				if done["request_id"] == event.RequestID.String() {
					pretty, _ := json.MarshalIndent(done, "", "  ")
					fmt.Printf("%s\n", pretty)
					return
				}
			}
		}
	}
	log.Fatalf("Timed out after %s waiting for the done event", *wait)
}
