package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// Discord configuration struct.
type DiscordConfiguration struct {
	WebhookURL string
}

// Bucket configuration for the S3 log uploads.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Single rate limit window for the Riot API.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot API rate limits. Defaults match the development key limits.
type LimitsConfiguration struct {
	Lower  LimitWindow
	Higher LimitWindow
}

// Tracker configuration for the polling loop and the scoring law.
type TrackerConfiguration struct {
	PollInterval   time.Duration
	MatchesPerPoll int
	ScoringLaw     string
}

var (
	ApiKey   string
	Bucket   BucketConfiguration
	Database DatabaseConfiguration
	Discord  DiscordConfiguration
	Limits   LimitsConfiguration
	Redis    RedisConfiguration
	Tracker  TrackerConfiguration
)

// Load the variables.
func LoadEnv() error {
	ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = os.Getenv("DATABASE_NAME")
	Database.MigrationsPath = getEnvOrDefault("MIGRATIONS_PATH", "migrations")

	// Load the Discord configuration.
	Discord.WebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")

	// Load the bucket configuration for the log uploads.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	// Riot development key limits: 20 requests each 1s, 100 requests each 2min.
	Limits.Lower = LimitWindow{
		Count:         getEnvIntOrDefault("RIOT_LIMIT_LOWER_COUNT", 20),
		ResetInterval: getEnvDurationOrDefault("RIOT_LIMIT_LOWER_INTERVAL", time.Second),
	}
	Limits.Higher = LimitWindow{
		Count:         getEnvIntOrDefault("RIOT_LIMIT_HIGHER_COUNT", 100),
		ResetInterval: getEnvDurationOrDefault("RIOT_LIMIT_HIGHER_INTERVAL", 2*time.Minute),
	}

	// Load the tracker configuration.
	Tracker.PollInterval = getEnvDurationOrDefault("TRACKER_POLL_INTERVAL", 5*time.Minute)
	Tracker.MatchesPerPoll = getEnvIntOrDefault("TRACKER_MATCHES_PER_POLL", 10)
	Tracker.ScoringLaw = getEnvOrDefault("SCORING_LAW", "rank")

	return validate()
}

// validate verifies that every required variable was provided.
func validate() error {
	if ApiKey == "" {
		return errors.New("RIOT_API_KEY must be set")
	}

	if Database.URL == "" {
		return errors.New("DATABASE_URL must be set")
	}

	if Tracker.ScoringLaw != "rank" && Tracker.ScoringLaw != "multiplier" {
		return errors.New("SCORING_LAW must be either 'rank' or 'multiplier'")
	}

	return nil
}

// Return the variable value if set, else the default.
func getEnvOrDefault(key string, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// Return the variable parsed as int if set and valid, else the default.
func getEnvIntOrDefault(key string, def int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return def
}

// Return the variable parsed as duration if set and valid, else the default.
func getEnvDurationOrDefault(key string, def time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return def
}
