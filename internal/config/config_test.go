package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("SERVER_PORT", "5000")
	t.Setenv("SLACK_DEFAULT_CHANNEL", "#tasks-manager")

	// Act
	cfg := Load()

	// Assert
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "#tasks-manager", cfg.SlackDefaultChannel)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOW_ORIGINS", " http://a.test, ,http://b.test ")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvList("ALLOW_ORIGINS", []string{"*"}))

	t.Setenv("ALLOW_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getEnvList("ALLOW_ORIGINS", []string{"*"}))
}

func TestGetEnvIntAndDuration(t *testing.T) {
	t.Setenv("SLACK_QUEUE_SIZE", "12")
	t.Setenv("SLACK_TIMEOUT", "250ms")
	assert.Equal(t, 12, getEnvInt("SLACK_QUEUE_SIZE", 100))
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("SLACK_TIMEOUT", time.Second))

	t.Setenv("SLACK_QUEUE_SIZE", "-3")
	t.Setenv("SLACK_TIMEOUT", "soon")
	assert.Equal(t, 100, getEnvInt("SLACK_QUEUE_SIZE", 100))
	assert.Equal(t, time.Second, getEnvDuration("SLACK_TIMEOUT", time.Second))
}
