package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Presence timing. A participant must heartbeat at least every
// InactivityThreshold or the next sweep evicts it.
const (
	SweepInterval       = 15 * time.Second
	InactivityThreshold = 10 * time.Second
)

// Status notice bodies, kept verbatim for client compatibility.
const (
	JoinNotice  = "entra na sala..."
	LeaveNotice = "sai da sala..."
)

// TimeLayout is the wall-clock format stored on every message.
const TimeLayout = "15:04:05"

// Config holds the process environment. DATABASE_URL is the Mongo
// connection string; everything else has a usable default.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"batepapo"`
	Port         int    `envconfig:"PORT" default:"5000"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
