package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clipstream/internal/config"
	"clipstream/internal/database"
	"clipstream/internal/middleware"
	"clipstream/internal/modules/auth"
	"clipstream/internal/modules/comment"
	"clipstream/internal/modules/feed"
	"clipstream/internal/modules/like"
	"clipstream/internal/modules/playlist"
	"clipstream/internal/modules/subscription"
	"clipstream/internal/modules/tweet"
	"clipstream/internal/modules/video"
	"clipstream/internal/pkg/media"
	"clipstream/internal/pkg/token"
	"clipstream/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("level=info msg=\"no .env file, using environment\"")
	}

	authCfg, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	var mediaStore media.Store
	if mediaCfg := config.LoadMediaConfig(); mediaCfg.Endpoint != "" {
		mediaStore, err = media.NewS3Store(context.Background(), media.S3Config{
			Endpoint:  mediaCfg.Endpoint,
			Region:    mediaCfg.Region,
			Bucket:    mediaCfg.Bucket,
			AccessKey: mediaCfg.AccessKey,
			SecretKey: mediaCfg.SecretKey,
		})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("level=warn msg=\"S3_ENDPOINT not set, media uploads disabled\"")
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	tokens := token.New(
		authCfg.AccessTokenSecret,
		authCfg.RefreshTokenSecret,
		authCfg.AccessTokenTTL,
		authCfg.RefreshTokenTTL,
	)

	hub := feed.NewHub()
	defer hub.Close()
	notifier := feed.NewNotifier(hub)

	authService := auth.NewService(userRepo, tokens)
	authHandler := auth.NewHandler(authService, mediaStore, authCfg)

	videoService := video.NewService(videoRepo, mediaStore)
	videoHandler := video.NewHandler(videoService)

	tweetService := tweet.NewService(tweetRepo)
	tweetHandler := tweet.NewHandler(tweetService)

	commentService := comment.NewService(commentRepo, videoRepo)
	commentHandler := comment.NewHandler(commentService)

	likeService := like.NewService(likeRepo, videoRepo, notifier)
	likeHandler := like.NewHandler(likeService)

	playlistService := playlist.NewService(playlistRepo, videoRepo)
	playlistHandler := playlist.NewHandler(playlistService)

	subscriptionService := subscription.NewService(subscriptionRepo, userRepo, notifier)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	feedHandler := feed.NewHandler(hub, tokens)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)
			videoHandler.RegisterProtectedRoutes(protected)
			tweetHandler.RegisterProtectedRoutes(protected)
			commentHandler.RegisterProtectedRoutes(protected)
			likeHandler.RegisterProtectedRoutes(protected)
			playlistHandler.RegisterProtectedRoutes(protected)
			subscriptionHandler.RegisterProtectedRoutes(protected)
		}
	}

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
