package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Data locations
	DataDir     string // question set JSON files
	ProgressDir string // per-player progress blobs

	// Leaderboard
	LeaderboardDB  string // local sqlite file
	LeaderboardURL string // optional Postgres DSN for a shared board

	// Spaced repetition
	RepeatGap int // questions between a miss and its repeat
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DataDir:         getenvDefault("DATA_DIR", "data"),
		ProgressDir:     getenvDefault("PROGRESS_DIR", "progress"),
		LeaderboardDB:   getenvDefault("LEADERBOARD_DB", "leaderboard.db"),
		LeaderboardURL:  os.Getenv("LEADERBOARD_URL"),
		RepeatGap:       getenvInt("REPEAT_GAP", 7),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}
