package main

import (
	"log"
	"os"

	"clipstream/internal/database"
)

// Prunes rows whose parent went away outside the FK path: likes that
// reference nothing and playlist entries pointing at deleted videos.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res1 := db.Exec(`DELETE FROM likes WHERE video_id IS NULL AND comment_id IS NULL AND tweet_id IS NULL`)
	if res1.Error != nil {
		log.Fatalf("cleanup likes failed: %v", res1.Error)
	}

	res2 := db.Exec(`DELETE FROM playlist_videos WHERE video_id NOT IN (SELECT id FROM videos)`)
	if res2.Error != nil {
		log.Fatalf("cleanup playlist_videos failed: %v", res2.Error)
	}

	res3 := db.Exec(`UPDATE users SET refresh_token = NULL WHERE refresh_token = ''`)
	if res3.Error != nil {
		log.Fatalf("cleanup sessions failed: %v", res3.Error)
	}

	log.Printf("maintenance completed: likes=%d playlist_videos=%d sessions=%d",
		res1.RowsAffected, res2.RowsAffected, res3.RowsAffected)
}
