package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort     string
	GinMode        string
	AllowedOrigins []string

	// Slack webhook; notifications are only logged when the URL is empty.
	SlackWebhookURL      string
	SlackDefaultChannel  string
	SlackAnnounceChannel string
	SlackTimeout         time.Duration
	SlackQueueSize       int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tasks_user"),
		DBPassword: getEnv("DB_PASSWORD", "tasks_pass"),
		DBName:     getEnv("DB_NAME", "tasks_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ServerPort:     getEnv("SERVER_PORT", "5000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: getEnvList("ALLOW_ORIGINS", []string{"*"}),

		SlackWebhookURL:      getEnv("SLACK_WEBHOOK_URL", ""),
		SlackDefaultChannel:  getEnv("SLACK_DEFAULT_CHANNEL", "#tasks-manager"),
		SlackAnnounceChannel: getEnv("SLACK_ANNOUNCE_CHANNEL", "#social"),
		SlackTimeout:         getEnvDuration("SLACK_TIMEOUT", 5*time.Second),
		SlackQueueSize:       getEnvInt("SLACK_QUEUE_SIZE", 100),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using %s", key, value, defaultVal)
		return defaultVal
	}
	return d
}
