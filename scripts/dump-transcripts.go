package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Line mirrors the transcript repository's stored shape.
type Line struct {
	At   string `json:"at"`
	Text string `json:"text"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for battle transcripts...")

	var cursor uint64
	found := 0
	for {
		keys, next, err := client.Scan(ctx, cursor, "battle_transcript:*", 100).Result()
		if err != nil {
			log.Fatal("Scan failed:", err)
		}

		for _, key := range keys {
			found++
			fmt.Printf("\n=== %s ===\n", key)

			entries, err := client.LRange(ctx, key, 0, -1).Result()
			if err != nil {
				log.Printf("Failed to read %s: %v", key, err)
				continue
			}

			for _, entry := range entries {
				var line Line
				if err := json.Unmarshal([]byte(entry), &line); err != nil {
					fmt.Printf("  (unparseable) %s\n", entry)
					continue
				}
				fmt.Printf("  [%s] %s\n", line.At, line.Text)
			}

			ttl, err := client.TTL(ctx, key).Result()
			if err == nil {
				fmt.Printf("  expires in %s\n", ttl)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	fmt.Printf("\nDone. %d transcript(s) found.\n", found)
}
