package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DefaultPublishPort is the TCP port on which the orchestration master
// accepts minion connections.
const DefaultPublishPort = 4505

// Config holds the agent configuration.
type Config struct {
	// Master is the hostname or IPv4 address of the orchestration master.
	Master string
	// PublishPort is the master's publish port.
	PublishPort int
	// CheckInterval is how often the connectivity check and report push run.
	CheckInterval time.Duration
	// EventURL receives connectivity events; empty disables event delivery.
	EventURL string
	// ReportURL receives status reports; empty disables report pushes.
	ReportURL string
	// APIKey is sent as X-API-Key on every request.
	APIKey string
}

// Load reads configuration from a .env file if present, falling back to
// plain environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	port, err := strconv.Atoi(os.Getenv("PUBLISH_PORT"))
	if err != nil || port < 1 {
		port = DefaultPublishPort
	}

	interval, err := strconv.Atoi(os.Getenv("CHECK_INTERVAL_SECONDS"))
	if err != nil || interval < 1 {
		interval = 60
	}

	return &Config{
		Master:        getEnv("MASTER", ""),
		PublishPort:   port,
		CheckInterval: time.Duration(interval) * time.Second,
		EventURL:      getEnv("EVENT_URL", ""),
		ReportURL:     getEnv("REPORT_URL", ""),
		APIKey:        getEnv("API_KEY", ""),
	}
}

// getEnv reads an env var with a fallback.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
