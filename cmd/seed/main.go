package main

import (
	"log"
	"os"

	"clipstream/internal/database"
	"clipstream/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clipstream.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Video{},
		&domain.Comment{},
		&domain.Tweet{},
		&domain.Like{},
		&domain.Playlist{},
		&domain.PlaylistVideo{},
		&domain.Subscription{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM playlist_videos")
	db.Exec("DELETE FROM playlists")
	db.Exec("DELETE FROM likes")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM tweets")
	db.Exec("DELETE FROM videos")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	aliceHash, _ := bcrypt.GenerateFromPassword([]byte("alice123"), bcrypt.DefaultCost)
	alice := domain.User{
		Username:     "alice",
		Email:        "alice@clipstream.dev",
		FullName:     "Alice Carter",
		PasswordHash: string(aliceHash),
	}
	if err := db.Create(&alice).Error; err != nil {
		log.Fatal(err)
	}

	bobHash, _ := bcrypt.GenerateFromPassword([]byte("bob123"), bcrypt.DefaultCost)
	bob := domain.User{
		Username:     "bob",
		Email:        "bob@clipstream.dev",
		FullName:     "Bob Reyes",
		PasswordHash: string(bobHash),
	}
	if err := db.Create(&bob).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating videos...")

	videos := []domain.Video{
		{
			OwnerID:     alice.ID,
			Title:       "Morning routine vlog",
			Description: "A quick look at how I start my day.",
			VideoURL:    "https://media.clipstream.dev/videos/seed-1.mp4",
			Duration:    312,
			Views:       148,
			IsPublished: true,
		},
		{
			OwnerID:     alice.ID,
			Title:       "Unlisted draft",
			VideoURL:    "https://media.clipstream.dev/videos/seed-2.mp4",
			Duration:    95,
			IsPublished: false,
		},
		{
			OwnerID:     bob.ID,
			Title:       "Street food tour",
			Description: "Five stalls, one evening.",
			VideoURL:    "https://media.clipstream.dev/videos/seed-3.mp4",
			Duration:    847,
			Views:       2093,
			IsPublished: true,
		},
	}
	for i := range videos {
		if err := db.Create(&videos[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating tweets, comments and likes...")

	tweetRow := domain.Tweet{OwnerID: bob.ID, Content: "New video drops tonight!"}
	if err := db.Create(&tweetRow).Error; err != nil {
		log.Fatal(err)
	}

	commentRow := domain.Comment{
		VideoID: videos[2].ID,
		OwnerID: alice.ID,
		Content: "That second stall looked amazing.",
	}
	if err := db.Create(&commentRow).Error; err != nil {
		log.Fatal(err)
	}

	if err := db.Create(&domain.Like{LikedByID: alice.ID, VideoID: &videos[2].ID}).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.Like{LikedByID: bob.ID, TweetID: &tweetRow.ID}).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating playlist and subscription...")

	watchLater := domain.Playlist{
		ID:      uuid.NewString(),
		OwnerID: alice.ID,
		Name:    "Watch later",
	}
	if err := db.Create(&watchLater).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.PlaylistVideo{PlaylistID: watchLater.ID, VideoID: videos[2].ID}).Error; err != nil {
		log.Fatal(err)
	}

	if err := db.Create(&domain.Subscription{SubscriberID: alice.ID, ChannelID: bob.ID}).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete. Users: alice/alice123, bob/bob123")
}
