package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // host:port of the Redis cache
	RedisPassword   string // Password for Redis, empty when none
	CacheTTLSeconds int    // Lifetime of cached mazes
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
}

// Addr returns the REST listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// MongoURI returns the connection string of the maze database.
func (c Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// LoadEnvs loads a .env file when present and reads the server
// configuration from the environment. Every missing or malformed variable
// is reported in the returned error.
func LoadEnvs(files ...string) (Config, error) {
	// Missing .env files are fine; the variables may come from the shell.
	_ = godotenv.Load(files...)

	r := &envReader{}
	cfg := Config{
		HostIP:          r.withDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        r.mustInt("REST_PORT"),
		DBHost:          r.must("DB_HOST"),
		DBPort:          r.mustInt("DB_PORT"),
		DBUser:          r.must("DB_USER"),
		DBPassword:      r.must("DB_PASS"),
		DBName:          r.must("DB_NAME"),
		RedisAddr:       r.withDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   r.withDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds: r.intWithDefault("CACHE_TTL_SECONDS", 3600),
		GinMode:         r.withDefault("GIN_MODE", "release"),
		JWTSecret:       r.must("JWT_SECRET"),
		JWTIssuer:       r.must("JWT_ISSUER"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envReader looks variables up and collects every failure.
type envReader struct {
	errs []error
}

// must retrieves the value of an environment variable or records an error if not set.
func (r *envReader) must(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		r.errs = append(r.errs, fmt.Errorf("environment variable %s is not set", key))
	}
	return value
}

// mustInt retrieves an environment variable as an integer.
func (r *envReader) mustInt(key string) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		r.errs = append(r.errs, fmt.Errorf("environment variable %s is not set", key))
		return 0
	}
	return r.atoi(key, value)
}

// withDefault retrieves the value of an environment variable or returns a default value if not set.
func (r *envReader) withDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func (r *envReader) intWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return r.atoi(key, value)
}

func (r *envReader) atoi(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
	}
	return n
}
