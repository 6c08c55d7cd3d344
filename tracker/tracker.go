package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tilttracker/pkg/config"
	"tilttracker/pkg/database"
	"tilttracker/pkg/logger"
	"tilttracker/pkg/redis"
	"tilttracker/publisher"
	"tilttracker/riot"
	"tilttracker/riot/assets"
	"tilttracker/scoring"
	"tilttracker/tracker/repositories"
	"tilttracker/tracker/services/watcher"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	trackerLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer trackerLogger.Close()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Couldn't connect to the database: %v", err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(rawDb); err != nil {
		log.Fatal(err)
	}

	// Build the champion tag table before anything can be scored.
	championStore := assets.NewChampionStore()
	if err := championStore.Load(); err != nil {
		log.Fatalf("Couldn't load the champion tags: %v", err)
	}

	engine := scoring.NewEngine(
		scoring.NewClassifier(championStore),
		scoring.ConverterForLaw(config.Tracker.ScoringLaw),
		trackerLogger,
	)

	resultPublisher, err := publisher.CreatePublisher()
	if err != nil {
		log.Fatalf("Couldn't create the publisher: %v", err)
	}

	playerRepo, err := repositories.NewPlayerRepository(db)
	if err != nil {
		log.Fatalf("Couldn't create the player repository: %v", err)
	}
	matchRepo, err := repositories.NewMatchRepository(db)
	if err != nil {
		log.Fatalf("Couldn't create the match repository: %v", err)
	}
	scoreRepo, err := repositories.NewScoreRepository(db)
	if err != nil {
		log.Fatalf("Couldn't create the score repository: %v", err)
	}

	watcherService := watcher.NewWatcherService(
		riot.CreateFetcher(riot.DefaultRoutingRegion),
		engine,
		resultPublisher,
		redis.GetClient(),
		trackerLogger,
		playerRepo,
		matchRepo,
		scoreRepo,
	)

	log.Println("Starting tracker.")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the polling job.
	_, err = s.NewJob(
		gocron.DurationJob(config.Tracker.PollInterval),
		gocron.NewTask(
			func() {
				if err := watcherService.RunOnce(ctx); err != nil {
					trackerLogger.Errorf("Polling run failed: %v", err)
				}
			},
		),
		gocron.WithName("match-polling"),
		gocron.WithTags("polling"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create polling job: %v", err)
	}

	// Register champion cache revalidation job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			func() {
				if err := championStore.Revalidate(); err != nil {
					trackerLogger.Errorf("Champion tag revalidation failed: %v", err)
				}
			},
		),
		gocron.WithName("champion-revalidation"),
		gocron.WithTags("cache"),
	)
	if err != nil {
		log.Fatalf("Failed to create cache job: %v", err)
	}

	// Ship the logs daily when a bucket is configured.
	if config.Bucket.LogBucket != "" {
		_, err = s.NewJob(
			gocron.DailyJob(
				1,
				gocron.NewAtTimes(
					gocron.NewAtTime(5, 0, 0),
				),
			),
			gocron.NewTask(
				func() {
					objectKey := fmt.Sprintf("tracker/%s.log", time.Now().UTC().Format("2006-01-02"))
					if err := trackerLogger.UploadToS3Bucket(objectKey); err != nil {
						trackerLogger.Errorf("Log upload failed: %v", err)
					}
				},
			),
			gocron.WithName("log-upload"),
			gocron.WithTags("logging"),
		)
		if err != nil {
			log.Fatalf("Failed to create log upload job: %v", err)
		}
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down tracker...")
	stop()
}
