package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Config captures everything the contacts service reads from its environment.
//
// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	GinLogging bool
	LogLevel   string
}

// FromEnv builds a Config from the system's environment variables. It fails if
// PORT is set to something that is not a number.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     os.Getenv("DBHOST"),
		DBUser:     os.Getenv("DBUSER"),
		DBPassword: os.Getenv("DBPWD"),
		DBName:     getenv("DBNAME", "test"),
		GinLogging: !strings.EqualFold(os.Getenv("GIN_LOGGING"), "off"),
		LogLevel:   strings.ToLower(getenv("LOG_LEVEL", "info")),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("could not parse PORT env variable: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// DSN returns the MySQL data source name for the configured database.
func (c Config) DSN() string {
	dsnConfig := mysql.NewConfig()
	dsnConfig.User = c.DBUser
	dsnConfig.Passwd = c.DBPassword
	dsnConfig.Net = "tcp"
	dsnConfig.Addr = c.DBHost
	dsnConfig.DBName = c.DBName
	dsnConfig.ParseTime = true
	return dsnConfig.FormatDSN()
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
