package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	db "github.com/tszwong/notizen-api/infrastructure/persistence/database"
	"github.com/tszwong/notizen-api/pkg/app"
	"github.com/tszwong/notizen-api/pkg/configs"
	"github.com/tszwong/notizen-api/pkg/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using existing environment")
	}

	database, err := configs.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.SetupDatabase(database.DB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	storageService, err := configs.SetupStorageService()
	if err != nil {
		log.Fatalf("StorageService error: %v", err)
	}

	redisConfig := configs.LoadRedisConfig()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connected to Redis successfully")

	summarizer, err := configs.SetupSummarizer()
	if err != nil {
		log.Fatalf("Summarizer error: %v", err)
	}

	identityProvider, err := configs.SetupIdentityProvider(redisClient)
	if err != nil {
		log.Fatalf("Identity provider error: %v", err)
	}

	container, err := di.NewContainer(database.DB, storageService, redisClient, summarizer, identityProvider)
	if err != nil {
		log.Fatalf("Failed to build DI container: %v", err)
	}

	go container.WebSocketHub.Run(ctx)
	log.Println("WebSocket Hub started successfully")

	// Sessions that were running when the process last stopped get their
	// completion timers back; past-due ones fire immediately.
	if running, err := container.PomodoroRepo.FindRunning(); err != nil {
		log.Printf("Failed to load running pomodoro sessions: %v", err)
	} else if n := container.PomodoroTimer.RearmPending(running); n > 0 {
		log.Printf("Re-armed %d pomodoro timers", n)
	}

	go container.EditorManager.Run(ctx)
	log.Println("Editor session sweeper started successfully")

	app := app.SetupApp(container)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		log.Printf("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-c
	log.Println("Shutting down server...")

	cancel()
	container.PomodoroTimer.StopAll()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Error shutting down server: %v", err)
	}

	if err := database.Close(); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}

	log.Println("Server stopped gracefully")
}
